// Package audit ships committed bridge operation log entries to ClickHouse.
package audit

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-bridge/pkg/batcher"
	"go.uber.org/zap"
)

const (
	defaultInsertAttempts = 3
	insertBackoff         = 500 * time.Millisecond
	catchUpPage           = 1000
)

// Config tunes an Exporter. Zero fields select defaults.
type Config struct {
	Batch          batcher.Config
	InsertAttempts int
}

// Exporter is a bridge.AuditSink that batches entries into the repository.
type Exporter struct {
	repo     Repository
	metrics  Metrics
	logger   *zap.Logger
	batcher  *batcher.Batcher[model.OperationLogEntry]
	attempts int
	sleep    func(context.Context, time.Duration) error

	// exported is the highest sequence known to be stored before Start returned.
	exported atomic.Uint64
}

func NewExporter(repo Repository, metrics Metrics, logger *zap.Logger, cfg Config) (*Exporter, error) {
	if repo == nil {
		return nil, errors.New("audit repository is required")
	}
	if metrics == nil {
		return nil, errors.New("audit metrics is required")
	}
	attempts := cfg.InsertAttempts
	if attempts <= 0 {
		attempts = defaultInsertAttempts
	}

	e := &Exporter{
		repo:     repo,
		metrics:  metrics,
		logger:   logger.Named("audit"),
		attempts: attempts,
		sleep:    clock.SleepWithContext,
	}
	e.batcher = batcher.New(e.logger, e.insert, cfg.Batch)
	return e, nil
}

// Start exports retained entries that the repository has not seen yet, then starts
// the background batcher. The source sequence is moved past the stored one first, so
// entries at or below it are always already exported and are skipped later.
// Start must run before the source commits new operations.
func (e *Exporter) Start(ctx context.Context, source LogSource) error {
	stored, err := e.repo.MaxOperationSeq(ctx)
	if err != nil {
		return fmt.Errorf("read exported sequence: %w", err)
	}
	if source.AdvanceLogSeq(stored) {
		e.logger.Warn("operation log behind exported sequence, advanced", zap.Uint64("exported", stored))
	}

	after := stored
	for {
		page := source.OperationLog(after, catchUpPage)
		if len(page) == 0 {
			break
		}
		if err := e.insert(ctx, page); err != nil {
			return fmt.Errorf("export retained entries after %d: %w", after, err)
		}
		after = page[len(page)-1].Seq
	}
	e.exported.Store(after)

	if after > stored {
		e.logger.Info("exported retained operation log", zap.Uint64("from", stored+1), zap.Uint64("to", after))
	}
	e.batcher.Start(ctx)
	return nil
}

// Stop flushes queued entries and stops the batcher.
func (e *Exporter) Stop() {
	e.batcher.Stop()
}

// Publish queues entries for export.
func (e *Exporter) Publish(ctx context.Context, entries []model.OperationLogEntry) error {
	floor := e.exported.Load()
	skipped := 0
	for _, entry := range entries {
		if entry.Seq <= floor {
			skipped++
			continue
		}
		if err := e.batcher.Add(ctx, entry); err != nil {
			return fmt.Errorf("queue operation %d: %w", entry.Seq, err)
		}
	}
	if skipped > 0 {
		e.metrics.ObserveSkipped(skipped)
	}
	return nil
}

func (e *Exporter) insert(ctx context.Context, entries []model.OperationLogEntry) error {
	started := time.Now()
	var err error
	for attempt := 1; attempt <= e.attempts; attempt++ {
		if err = e.repo.InsertOperations(ctx, entries); err == nil {
			break
		}
		if attempt == e.attempts {
			break
		}
		e.logger.Warn("insert operations failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("entries", len(entries)),
			zap.Error(err),
		)
		if sleepErr := e.sleep(ctx, insertBackoff*time.Duration(attempt)); sleepErr != nil {
			err = errors.Join(err, sleepErr)
			break
		}
	}
	e.metrics.ObserveExport(err, len(entries), started)
	return err
}
