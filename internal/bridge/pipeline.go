package bridge

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"go.uber.org/zap"
)

// SubmitClaim registers a pending claim that txHash was mined at claimedHeight and
// should trigger effects once verified.
func (b *Bridge) SubmitClaim(
	ctx context.Context,
	submitter model.Principal,
	txHash chainhash.Hash,
	claimedHeight uint64,
	effects []model.Effect,
) error {
	return b.apply(ctx, "submit_claim", func(o *op) error {
		o.with(zap.Stringer("tx", txHash), zap.Uint64("height", claimedHeight), zap.Int("effects", len(effects)))
		if b.st.policy.Paused {
			return bridgeerr.ErrBridgePaused
		}
		if err := validateClaim(txHash, claimedHeight, effects); err != nil {
			return err
		}
		if _, ok := b.st.pending[txHash]; ok {
			return fmt.Errorf("claim %s is pending: %w", txHash, bridgeerr.ErrDuplicateClaim)
		}
		if _, ok := b.st.verified[txHash]; ok {
			return fmt.Errorf("claim %s is verified: %w", txHash, bridgeerr.ErrDuplicateClaim)
		}

		b.st.pending[txHash] = model.PendingClaim{
			TransactionHash: txHash,
			SubmittedAt:     o.at,
			Submitter:       submitter,
			ClaimedHeight:   claimedHeight,
			ClaimedEffects:  cloneEffects(effects),
		}
		b.st.stats.ClaimsSubmitted++
		o.record(model.OperationLogEntry{
			Kind:            model.OpClaimSubmitted,
			Caller:          submitter,
			TransactionHash: txHash,
			Height:          claimedHeight,
		})
		return nil
	})
}

func validateClaim(txHash chainhash.Hash, claimedHeight uint64, effects []model.Effect) error {
	if model.IsZeroHash(txHash) {
		return bridgeerr.ErrInvalidClaim.WithCause(errors.New("zero transaction hash"))
	}
	if claimedHeight == 0 {
		return bridgeerr.ErrInvalidClaim.WithCause(errors.New("claimed height must be positive"))
	}
	if len(effects) > model.MaxClaimEffects {
		return bridgeerr.ErrTooManyEffects.WithCause(
			fmt.Errorf("%d effects, max %d", len(effects), model.MaxClaimEffects))
	}
	for i, e := range effects {
		switch {
		case e.Type == "":
			return bridgeerr.ErrInvalidClaim.WithCause(fmt.Errorf("effect %d: empty type", i))
		case len(e.Type) > model.MaxEffectTypeLength:
			return bridgeerr.ErrInvalidClaim.WithCause(fmt.Errorf("effect %d: type longer than %d bytes", i, model.MaxEffectTypeLength))
		case len(e.Payload) > model.MaxEffectPayloadSize:
			return bridgeerr.ErrInvalidClaim.WithCause(fmt.Errorf("effect %d: payload of %d bytes exceeds %d", i, len(e.Payload), model.MaxEffectPayloadSize))
		}
	}
	return nil
}

// FinalizeClaim promotes the pending claim for txHash to a verified transaction and
// hands each claimed effect, in order, to the indexer. A failing effect is recorded on
// the returned transaction and in the statistics; it never undoes the promotion.
func (b *Bridge) FinalizeClaim(
	ctx context.Context,
	caller model.Principal,
	txHash chainhash.Hash,
	confirmations uint32,
) (model.VerifiedTransaction, error) {
	var out model.VerifiedTransaction
	err := b.apply(ctx, "finalize_claim", func(o *op) error {
		o.with(zap.Stringer("tx", txHash), zap.Uint32("confirmations", confirmations))
		if err := b.requireOperator(caller); err != nil {
			return err
		}
		if _, ok := b.st.verified[txHash]; ok {
			return fmt.Errorf("claim %s: %w", txHash, bridgeerr.ErrAlreadyVerified)
		}
		claim, ok := b.st.pending[txHash]
		if !ok {
			return fmt.Errorf("claim %s: %w", txHash, bridgeerr.ErrNotFound)
		}
		if need := b.st.policy.MinConfirmations; confirmations < need {
			return bridgeerr.ErrInsufficientConfirmations.WithCause(
				fmt.Errorf("%d confirmations, need %d", confirmations, need))
		}
		proof, err := b.proofReady(txHash)
		if err != nil {
			return err
		}
		if proof.TargetHeight != claim.ClaimedHeight {
			return bridgeerr.ErrHeightMismatch.WithCause(
				fmt.Errorf("proof targets %d, claim names %d", proof.TargetHeight, claim.ClaimedHeight))
		}

		vt := model.VerifiedTransaction{
			TransactionHash: txHash,
			ClaimedHeight:   claim.ClaimedHeight,
			Confirmations:   confirmations,
			VerifiedAt:      o.at,
			EffectCount:     len(claim.ClaimedEffects),
			Status:          model.TxActive,
			Effects:         make([]model.EffectResult, 0, len(claim.ClaimedEffects)),
		}
		b.st.stats.ClaimsFinalized++
		o.record(model.OperationLogEntry{
			Kind:            model.OpClaimFinalized,
			Caller:          caller,
			TransactionHash: txHash,
			Height:          claim.ClaimedHeight,
			Detail:          fmt.Sprintf("confirmations=%d effects=%d", confirmations, vt.EffectCount),
		})

		for i, effect := range claim.ClaimedEffects {
			res := model.EffectResult{Index: i}
			id, err := b.indexEffect(ctx, effect, txHash, claim.ClaimedHeight)
			if err != nil {
				res.Error = err.Error()
				vt.FailedEffects++
				b.st.stats.EffectsFailed++
				b.logger.Warn("index effect failed",
					zap.Stringer("tx", txHash), zap.Int("effect", i), zap.String("type", effect.Type), zap.Error(err))
				o.record(model.OperationLogEntry{
					Kind:            model.OpEffectFailed,
					Caller:          caller,
					TransactionHash: txHash,
					Height:          claim.ClaimedHeight,
					Detail:          fmt.Sprintf("effect %d (%s): %v", i, effect.Type, err),
				})
			} else {
				res.RecordID = id
				vt.IndexedEffects++
				b.st.stats.EffectsIndexed++
			}
			vt.Effects = append(vt.Effects, res)
		}

		delete(b.st.pending, txHash)
		b.st.verified[txHash] = vt
		o.with(zap.Int("indexed", vt.IndexedEffects), zap.Int("failed", vt.FailedEffects))
		out = cloneVerified(vt)
		return nil
	})
	return out, err
}

// indexEffect calls the indexer and turns a panic into that effect's failure.
func (b *Bridge) indexEffect(ctx context.Context, effect model.Effect, txHash chainhash.Hash, height uint64) (id model.RecordID, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("indexer panic: %v", r)
		}
	}()
	return b.indexer.IndexEffect(ctx, effect, txHash, height)
}

// RejectClaim drops a pending claim. The transaction may be claimed again afterwards.
func (b *Bridge) RejectClaim(ctx context.Context, caller model.Principal, txHash chainhash.Hash, reason string) error {
	return b.apply(ctx, "reject_claim", func(o *op) error {
		o.with(zap.Stringer("tx", txHash), zap.String("reason", reason))
		if err := b.requireOperator(caller); err != nil {
			return err
		}
		claim, ok := b.st.pending[txHash]
		if !ok {
			return fmt.Errorf("claim %s: %w", txHash, bridgeerr.ErrNotFound)
		}

		delete(b.st.pending, txHash)
		b.st.stats.ClaimsRejected++
		o.record(model.OperationLogEntry{
			Kind:            model.OpClaimRejected,
			Caller:          caller,
			TransactionHash: txHash,
			Height:          claim.ClaimedHeight,
			Detail:          reason,
		})
		return nil
	})
}

// DeactivateTransaction soft-deletes a verified transaction. Deposits can no longer be
// opened against it, and records produced from its effects are deactivated when the
// indexer supports it.
func (b *Bridge) DeactivateTransaction(ctx context.Context, caller model.Principal, txHash chainhash.Hash) error {
	var records []model.RecordID
	err := b.apply(ctx, "deactivate_transaction", func(o *op) error {
		o.with(zap.Stringer("tx", txHash))
		if err := b.requireOwner(caller); err != nil {
			return err
		}
		vt, ok := b.st.verified[txHash]
		if !ok {
			return fmt.Errorf("transaction %s: %w", txHash, bridgeerr.ErrNotFound)
		}
		if !vt.IsActive() {
			return fmt.Errorf("transaction %s: %w", txHash, bridgeerr.ErrAlreadyDeactivated)
		}

		at := o.at
		vt.Status = model.TxDeactivated
		vt.DeactivatedAt = &at
		b.st.verified[txHash] = vt
		for _, res := range vt.Effects {
			if res.Applied() {
				records = append(records, res.RecordID)
			}
		}
		o.record(model.OperationLogEntry{
			Kind:            model.OpTransactionDeactivated,
			Caller:          caller,
			TransactionHash: txHash,
			Height:          vt.ClaimedHeight,
		})
		return nil
	})
	if err != nil {
		return err
	}

	if d, ok := b.indexer.(RecordDeactivator); ok {
		for _, id := range records {
			if err := d.Deactivate(ctx, id); err != nil {
				b.logger.Warn("deactivate record failed", zap.Stringer("tx", txHash), zap.String("record", string(id)), zap.Error(err))
			}
		}
	}
	return nil
}

// PendingClaim returns the live claim for txHash.
func (b *Bridge) PendingClaim(txHash chainhash.Hash) (model.PendingClaim, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.st.pending[txHash]
	if !ok {
		return model.PendingClaim{}, false
	}
	return cloneClaim(c), true
}

// PendingClaims returns every live claim, oldest first.
func (b *Bridge) PendingClaims() []model.PendingClaim {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]model.PendingClaim, 0, len(b.st.pending))
	for _, c := range b.st.pending {
		out = append(out, cloneClaim(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.Before(out[j].SubmittedAt)
		}
		return hashLess(out[i].TransactionHash, out[j].TransactionHash)
	})
	return out
}

// VerifiedTransaction returns the verified transaction for txHash, active or not.
func (b *Bridge) VerifiedTransaction(txHash chainhash.Hash) (model.VerifiedTransaction, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	vt, ok := b.st.verified[txHash]
	if !ok {
		return model.VerifiedTransaction{}, false
	}
	return cloneVerified(vt), true
}
