// Package bridge implements the cross-chain verification core: header chain, inclusion
// proofs, the pending to verified claim pipeline, the deposit ledger and the
// operation log, all guarded by one critical section per Bridge.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultLogRetention = 10_000

// Config wires a Bridge. Indexer is required; Audit and Metrics are optional.
type Config struct {
	Network model.Network
	Policy  model.Policy
	Indexer Indexer
	Audit   AuditSink
	Metrics Metrics
	Logger  *zap.Logger
	// LogRetention bounds the in-memory operation log. Zero selects the default.
	LogRetention int
}

// Bridge owns all bridge state. Every exported mutation runs to completion under mu.
type Bridge struct {
	mu sync.Mutex
	st *state

	network      model.Network
	powLimit     *big.Int
	logRetention int

	indexer Indexer
	audit   AuditSink
	metrics Metrics
	logger  *zap.Logger
	now     func() time.Time
	newID   func() uuid.UUID
}

// New builds a Bridge with empty state and the given policy.
func New(cfg Config) (*Bridge, error) {
	if cfg.Indexer == nil {
		return nil, errors.New("bridge indexer is required")
	}
	params, err := cfg.Network.Params()
	if err != nil {
		return nil, fmt.Errorf("bridge network: %w", err)
	}
	if err := validatePolicy(cfg.Policy); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}
	retention := cfg.LogRetention
	if retention <= 0 {
		retention = defaultLogRetention
	}

	policy := cfg.Policy
	policy.Operators = policy.WithOperator(model.Anonymous, false)

	return &Bridge{
		st:           newState(policy),
		network:      cfg.Network,
		powLimit:     params.PowLimit,
		logRetention: retention,
		indexer:      cfg.Indexer,
		audit:        cfg.Audit,
		metrics:      metrics,
		logger:       logger.Named("bridge").With(zap.String("network", string(cfg.Network))),
		now:          time.Now,
		newID:        uuid.New,
	}, nil
}

// Network returns the source-chain network whose headers the bridge accepts.
func (b *Bridge) Network() model.Network {
	return b.network
}

func validatePolicy(p model.Policy) error {
	switch {
	case p.Owner == model.Anonymous:
		return bridgeerr.ErrInvalidInput.WithCause(errors.New("policy owner is required"))
	case p.MinConfirmations == 0:
		return bridgeerr.ErrInvalidInput.WithCause(errors.New("min confirmations must be positive"))
	case p.MaxConfirmations < p.MinConfirmations:
		return bridgeerr.ErrInvalidInput.WithCause(
			fmt.Errorf("max confirmations %d below min %d", p.MaxConfirmations, p.MinConfirmations))
	case p.MinDepositAmount <= 0:
		return bridgeerr.ErrInvalidInput.WithCause(errors.New("min deposit amount must be positive"))
	}
	return nil
}

// op collects the log entries and log fields of one operation while mu is held.
type op struct {
	b       *Bridge
	at      time.Time
	entries []model.OperationLogEntry
	fields  []zap.Field
}

func (o *op) record(e model.OperationLogEntry) {
	st := o.b.st
	e.Seq = st.nextLogSeq
	st.nextLogSeq++
	e.ID = o.b.newID()
	e.At = o.at
	st.appendLog(e, o.b.logRetention)
	o.entries = append(o.entries, e)
}

func (o *op) with(fields ...zap.Field) {
	o.fields = append(o.fields, fields...)
}

// apply runs fn as one atomic operation, then reports metrics and publishes audit
// entries after the lock is released. fn must validate before it mutates.
func (b *Bridge) apply(ctx context.Context, name string, fn func(o *op) error) error {
	started := time.Now()

	o, err := b.locked(fn)

	b.metrics.Observe(name, err, started)
	if err != nil {
		b.logger.Debug("operation rejected",
			append(o.fields, zap.String("operation", name), zap.String("code", bridgeerr.CodeOf(err)), zap.Error(err))...)
		return err
	}
	b.logger.Info("operation applied", append(o.fields, zap.String("operation", name))...)
	b.publish(ctx, o.entries)
	return nil
}

// locked runs fn under mu. The lock is released even when fn panics.
func (b *Bridge) locked(fn func(o *op) error) (*op, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	o := &op{b: b, at: b.now().UTC()}
	return o, fn(o)
}

func (b *Bridge) publish(ctx context.Context, entries []model.OperationLogEntry) {
	if b.audit == nil || len(entries) == 0 {
		return
	}
	if err := b.audit.Publish(ctx, entries); err != nil {
		b.logger.Warn("publish audit entries failed", zap.Int("entries", len(entries)), zap.Error(err))
	}
}

func (b *Bridge) requireOwner(caller model.Principal) error {
	if caller == model.Anonymous || caller != b.st.policy.Owner {
		return bridgeerr.ErrUnauthorized.WithCause(fmt.Errorf("%q is not the owner", caller))
	}
	return nil
}

func (b *Bridge) requireOperator(caller model.Principal) error {
	if !b.st.policy.IsOperator(caller) {
		return bridgeerr.ErrUnauthorized.WithCause(fmt.Errorf("%q is not an operator", caller))
	}
	return nil
}

type nopMetrics struct{}

func (nopMetrics) Observe(string, error, time.Time) {}
