package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/verify"
	"go.uber.org/zap"
)

// SubmitHeader stores h unverified and raises the highest known height.
func (b *Bridge) SubmitHeader(ctx context.Context, caller model.Principal, h model.BlockHeader) error {
	return b.apply(ctx, "submit_header", func(o *op) error {
		o.with(zap.Uint64("height", h.Height))
		if _, ok := b.st.headers[h.Height]; ok {
			return fmt.Errorf("header %d: %w", h.Height, bridgeerr.ErrAlreadyExists)
		}
		if h.Height == 0 {
			return bridgeerr.ErrInvalidHeader.WithCause(errors.New("height must be positive"))
		}

		h.Verified = false
		h.SubmittedAt = o.at
		h.VerifiedAt = time.Time{}
		b.st.headers[h.Height] = h
		b.st.highestHeight = max(b.st.highestHeight, h.Height)
		b.st.stats.HeadersSubmitted++
		o.record(model.OperationLogEntry{
			Kind:   model.OpHeaderSubmitted,
			Caller: caller,
			Height: h.Height,
			Detail: h.BlockHash.String(),
		})
		return nil
	})
}

// VerifyHeader checks proof of work and linkage to the stored parent, then marks the
// header verified. Nothing changes when a check fails.
func (b *Bridge) VerifyHeader(ctx context.Context, caller model.Principal, height uint64) error {
	return b.apply(ctx, "verify_header", func(o *op) error {
		o.with(zap.Uint64("height", height))
		h, ok := b.st.headers[height]
		if !ok {
			return fmt.Errorf("header %d: %w", height, bridgeerr.ErrNotFound)
		}
		if h.Verified {
			return fmt.Errorf("header %d: %w", height, bridgeerr.ErrAlreadyVerified)
		}
		if err := verify.CheckProofOfWork(h, b.powLimit); err != nil {
			return fmt.Errorf("verify header %d: %w", height, err)
		}
		if parent, ok := b.st.headers[height-1]; ok {
			if err := verify.CheckContinuity(h, parent); err != nil {
				return fmt.Errorf("verify header %d: %w", height, err)
			}
		}

		h.Verified = true
		h.VerifiedAt = o.at
		b.st.headers[height] = h
		b.st.stats.HeadersVerified++
		o.record(model.OperationLogEntry{
			Kind:   model.OpHeaderVerified,
			Caller: caller,
			Height: height,
			Detail: h.BlockHash.String(),
		})
		return nil
	})
}

// Header returns the stored header at height.
func (b *Bridge) Header(height uint64) (model.BlockHeader, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	h, ok := b.st.headers[height]
	return h, ok
}

// HighestHeight returns the largest submitted height, verified or not.
func (b *Bridge) HighestHeight() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.st.highestHeight
}
