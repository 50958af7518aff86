// Package relayer follows a source-chain node and drives pending claims through the
// bridge: it submits and verifies headers, builds inclusion proofs from full blocks and
// finalizes claims once they are buried deep enough.
package relayer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/clock"
	"go.uber.org/zap"
)

const (
	defaultInterval     = 10 * time.Second
	defaultIdleInterval = time.Minute
	defaultWorkers      = 8
	defaultBatchSize    = 500
)

// Config tunes a Relayer. Zero durations and counts select defaults.
type Config struct {
	// Principal is the operator identity the relayer acts as.
	Principal model.Principal
	// StartHeight is the first header synced into an empty bridge. Zero starts at the tip.
	StartHeight uint64
	Interval     time.Duration
	IdleInterval time.Duration
	Workers      int
	// BatchSize bounds the headers fetched per cycle.
	BatchSize uint64
	// RejectMissing rejects claims whose transaction is absent from the claimed block.
	RejectMissing bool
	// BlockSignal, when set, ends a wait as soon as the node announces a new block.
	BlockSignal <-chan struct{}
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = defaultInterval
	}
	if c.IdleInterval <= 0 {
		c.IdleInterval = defaultIdleInterval
	}
	if c.Workers <= 0 {
		c.Workers = defaultWorkers
	}
	if c.BatchSize == 0 {
		c.BatchSize = defaultBatchSize
	}
	return c
}

// Relayer is the bridge's link to the source chain.
type Relayer struct {
	bridge  Bridge
	source  Source
	metrics Metrics
	logger  *zap.Logger
	cfg     Config
	sleep   func(context.Context, time.Duration) error
}

func New(bridge Bridge, source Source, metrics Metrics, logger *zap.Logger, cfg Config) (*Relayer, error) {
	if bridge == nil {
		return nil, errors.New("relayer bridge is required")
	}
	if source == nil {
		return nil, errors.New("relayer source is required")
	}
	if metrics == nil {
		return nil, errors.New("relayer metrics is required")
	}
	if cfg.Principal == model.Anonymous {
		return nil, errors.New("relayer principal is required")
	}

	return &Relayer{
		bridge:  bridge,
		source:  source,
		metrics: metrics,
		logger:  logger.Named("relayer").With(zap.String("principal", string(cfg.Principal))),
		cfg:     cfg.withDefaults(),
		sleep:   clock.SleepWithContext,
	}, nil
}

// Run repeats Cycle until ctx is canceled. Failed cycles are logged and retried.
func (r *Relayer) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		progressed, err := r.Cycle(ctx)
		wait := r.cfg.Interval
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Warn("relay cycle failed, backing off", zap.Error(err), zap.Duration("sleep", wait))
		case !progressed:
			wait = r.cfg.IdleInterval
			r.logger.Debug("nothing to relay; sleeping", zap.Duration("sleep", wait))
		}
		if err := r.wait(ctx, wait); err != nil {
			return err
		}
	}
}

func (r *Relayer) wait(ctx context.Context, d time.Duration) error {
	if r.cfg.BlockSignal == nil {
		return r.sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.cfg.BlockSignal:
		return nil
	case <-timer.C:
		return nil
	}
}

// Cycle syncs headers up to the source tip and then advances every pending claim.
// It reports whether any header was synced or any claim finalized.
func (r *Relayer) Cycle(ctx context.Context) (bool, error) {
	tip, err := r.source.LatestHeight(ctx)
	if err != nil {
		return false, fmt.Errorf("latest height: %w", err)
	}
	r.metrics.ObserveTip(tip)

	started := time.Now()
	synced, err := r.syncHeaders(ctx, tip)
	r.metrics.ObserveSyncHeaders(err, synced, started)
	if err != nil {
		return synced > 0, fmt.Errorf("sync headers: %w", err)
	}

	started = time.Now()
	finalized, err := r.processClaims(ctx, tip)
	r.metrics.ObserveProcessClaims(err, finalized, started)
	if err != nil {
		return synced > 0 || finalized > 0, fmt.Errorf("process claims: %w", err)
	}
	return synced > 0 || finalized > 0, nil
}
