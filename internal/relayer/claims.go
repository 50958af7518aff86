package relayer

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/verify"
	"github.com/goodnatureofminers/blockinsight7000-bridge/pkg/safe"
	"go.uber.org/zap"
)

// errUnprovable marks a claim whose proof cannot be built from the claimed block.
var errUnprovable = errors.New("claim cannot be proven from the claimed block")

// processClaims advances pending claims in submission order. A claim that cannot make
// progress yet is skipped; only source failures abort the pass.
func (r *Relayer) processClaims(ctx context.Context, tip uint64) (int, error) {
	minConfirmations := r.bridge.Policy().MinConfirmations
	finalized := 0

	for _, claim := range r.bridge.PendingClaims() {
		if ctx.Err() != nil {
			return finalized, ctx.Err()
		}
		logger := r.logger.With(zap.Stringer("tx", claim.TransactionHash), zap.Uint64("height", claim.ClaimedHeight))
		if claim.ClaimedHeight > tip || claim.ClaimedHeight > r.bridge.HighestHeight() {
			logger.Debug("claimed height not synced yet", zap.Uint64("tip", tip))
			continue
		}

		if err := r.prove(ctx, claim); err != nil {
			switch {
			case errors.Is(err, errUnprovable):
				r.handleUnprovable(ctx, logger, claim, err)
				continue
			case isBridgeError(err):
				logger.Warn("claim proof not accepted", zap.Error(err))
				continue
			default:
				return finalized, err
			}
		}

		confirmations := safe.ClampUint32(tip - claim.ClaimedHeight + 1)
		if confirmations < minConfirmations {
			logger.Debug("waiting for confirmations",
				zap.Uint32("confirmations", confirmations),
				zap.Uint32("min", minConfirmations),
			)
			continue
		}

		vt, err := r.bridge.FinalizeClaim(ctx, r.cfg.Principal, claim.TransactionHash, confirmations)
		if err != nil {
			if bridgeerr.Retryable(err) || errors.Is(err, bridgeerr.ErrAlreadyVerified) || errors.Is(err, bridgeerr.ErrNotFound) {
				logger.Debug("claim not finalized", zap.Error(err))
			} else {
				logger.Warn("finalize claim failed", zap.Error(err))
			}
			continue
		}
		finalized++
		logger.Info("claim finalized",
			zap.Uint32("confirmations", confirmations),
			zap.Int("indexed", vt.IndexedEffects),
			zap.Int("failed", vt.FailedEffects),
		)
	}
	return finalized, nil
}

// prove makes sure a verified inclusion proof exists for the claim.
func (r *Relayer) prove(ctx context.Context, claim model.PendingClaim) error {
	tx := claim.TransactionHash
	if p, ok := r.bridge.Proof(tx); ok {
		if p.Verified {
			return nil
		}
		return r.verifyProof(ctx, claim)
	}

	if err := r.ensureHeader(ctx, claim.ClaimedHeight); err != nil {
		return err
	}

	txids, err := r.source.FetchTxIDs(ctx, claim.ClaimedHeight)
	if err != nil {
		return fmt.Errorf("fetch block %d transactions: %w", claim.ClaimedHeight, err)
	}
	index := slices.Index(txids, tx)
	if index < 0 {
		return fmt.Errorf("%w: transaction not in block %d", errUnprovable, claim.ClaimedHeight)
	}
	path, err := verify.BuildMerklePath(txids, index)
	if err != nil {
		return fmt.Errorf("%w: %v", errUnprovable, err)
	}
	idx, err := safe.Uint32(index)
	if err != nil {
		return fmt.Errorf("%w: %v", errUnprovable, err)
	}

	if err := r.bridge.SubmitProof(ctx, r.cfg.Principal, tx, claim.ClaimedHeight, path, idx); err != nil &&
		!errors.Is(err, bridgeerr.ErrAlreadyExists) {
		return fmt.Errorf("submit proof: %w", err)
	}
	return r.verifyProof(ctx, claim)
}

func (r *Relayer) verifyProof(ctx context.Context, claim model.PendingClaim) error {
	err := r.bridge.VerifyProof(ctx, r.cfg.Principal, claim.TransactionHash)
	if err != nil && !errors.Is(err, bridgeerr.ErrAlreadyVerified) {
		return fmt.Errorf("verify proof: %w", err)
	}
	return nil
}

func (r *Relayer) handleUnprovable(ctx context.Context, logger *zap.Logger, claim model.PendingClaim, cause error) {
	if !r.cfg.RejectMissing {
		logger.Warn("claim cannot be proven", zap.Error(cause))
		return
	}
	if err := r.bridge.RejectClaim(ctx, r.cfg.Principal, claim.TransactionHash, cause.Error()); err != nil {
		logger.Warn("reject unprovable claim failed", zap.Error(err))
		return
	}
	logger.Info("unprovable claim rejected", zap.Error(cause))
}

func isBridgeError(err error) bool {
	return bridgeerr.KindOf(err) != bridgeerr.KindInternal
}
