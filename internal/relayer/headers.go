package relayer

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/goodnatureofminers/blockinsight7000-bridge/pkg/workerpool"
	"go.uber.org/zap"
)

// syncHeaders relays the next batch of headers above the bridge watermark.
func (r *Relayer) syncHeaders(ctx context.Context, tip uint64) (int, error) {
	from := r.bridge.HighestHeight() + 1
	if from == 1 {
		from = r.cfg.StartHeight
		if from == 0 {
			from = tip
		}
	}
	if from == 0 || from > tip {
		return 0, nil
	}
	to := min(tip, from+r.cfg.BatchSize-1)

	heights := make([]uint64, 0, to-from+1)
	for h := from; h <= to; h++ {
		heights = append(heights, h)
	}
	headers, err := workerpool.Map(ctx, r.cfg.Workers, heights, r.source.FetchHeader)
	if err != nil {
		return 0, fmt.Errorf("fetch headers %d..%d: %w", from, to, err)
	}

	for i, h := range headers {
		if err := r.relayHeader(ctx, h); err != nil {
			return i, err
		}
	}
	r.logger.Info("headers relayed", zap.Uint64("from", from), zap.Uint64("to", to), zap.Uint64("tip", tip))
	return len(headers), nil
}

// relayHeader submits h and verifies whatever header the bridge holds at its height.
func (r *Relayer) relayHeader(ctx context.Context, h model.BlockHeader) error {
	err := r.bridge.SubmitHeader(ctx, r.cfg.Principal, h)
	if err != nil && !errors.Is(err, bridgeerr.ErrAlreadyExists) {
		return fmt.Errorf("submit header %d: %w", h.Height, err)
	}
	if stored, ok := r.bridge.Header(h.Height); ok && stored.BlockHash != h.BlockHash {
		r.logger.Warn("bridge holds a different header at height",
			zap.Uint64("height", h.Height),
			zap.Stringer("stored", stored.BlockHash),
			zap.Stringer("source", h.BlockHash),
		)
	}

	err = r.bridge.VerifyHeader(ctx, r.cfg.Principal, h.Height)
	if err != nil && !errors.Is(err, bridgeerr.ErrAlreadyVerified) {
		return fmt.Errorf("verify header %d: %w", h.Height, err)
	}
	return nil
}

// ensureHeader relays a single header below the sync window, e.g. for a claim on an
// old block. It is a no-op when the bridge already holds a verified header there.
func (r *Relayer) ensureHeader(ctx context.Context, height uint64) error {
	if stored, ok := r.bridge.Header(height); ok && stored.Verified {
		return nil
	}
	h, err := r.source.FetchHeader(ctx, height)
	if err != nil {
		return fmt.Errorf("fetch header %d: %w", height, err)
	}
	return r.relayHeader(ctx, h)
}
