package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/clock"
	"go.uber.org/zap"
)

const defaultInterval = time.Minute

// Keeper restores bridge state on startup and saves it periodically and on shutdown.
type Keeper struct {
	path     string
	interval time.Duration
	state    State
	logger   *zap.Logger

	savedSeq uint64
	saved    bool
}

func NewKeeper(path string, interval time.Duration, state State, logger *zap.Logger) (*Keeper, error) {
	if path == "" {
		return nil, errors.New("snapshot path is required")
	}
	if state == nil {
		return nil, errors.New("state is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Keeper{
		path:     path,
		interval: interval,
		state:    state,
		logger:   logger.Named("snapshot").With(zap.String("path", path)),
	}, nil
}

// Restore loads the snapshot file into the state. It reports false when no file exists.
func (k *Keeper) Restore() (bool, error) {
	snap, ok, err := Load(k.path)
	if err != nil || !ok {
		return false, err
	}
	if err := k.state.Restore(snap); err != nil {
		return false, fmt.Errorf("restore snapshot: %w", err)
	}
	k.savedSeq, k.saved = k.state.LastSeq(), true
	k.logger.Info("state restored",
		zap.Uint64("last_seq", k.savedSeq),
		zap.Int("headers", len(snap.Headers)),
		zap.Int("verified", len(snap.Verified)),
		zap.Int("deposits", len(snap.Deposits)),
	)
	return true, nil
}

// Save writes the current state unless nothing was logged since the last save.
func (k *Keeper) Save() error {
	seq := k.state.LastSeq()
	if k.saved && seq == k.savedSeq {
		return nil
	}
	snap := k.state.Snapshot()
	if err := Save(k.path, snap); err != nil {
		return err
	}
	k.savedSeq, k.saved = seq, true
	k.logger.Debug("state saved", zap.Uint64("last_seq", k.savedSeq))
	return nil
}

// Run saves on every interval until ctx is done, then saves once more.
func (k *Keeper) Run(ctx context.Context) error {
	err := clock.Every(ctx, k.interval, func(context.Context) {
		if err := k.Save(); err != nil {
			k.logger.Error("save snapshot", zap.Error(err))
		}
	})
	if saveErr := k.Save(); saveErr != nil {
		return fmt.Errorf("final snapshot: %w", saveErr)
	}
	k.logger.Info("final snapshot written")
	return err
}
