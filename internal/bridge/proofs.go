package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/verify"
	"go.uber.org/zap"
)

// SubmitProof stores an unverified inclusion proof for txHash against a verified header.
func (b *Bridge) SubmitProof(
	ctx context.Context,
	caller model.Principal,
	txHash chainhash.Hash,
	targetHeight uint64,
	path []chainhash.Hash,
	index uint32,
) error {
	return b.apply(ctx, "submit_proof", func(o *op) error {
		o.with(zap.Stringer("tx", txHash), zap.Uint64("height", targetHeight))
		if h, ok := b.st.headers[targetHeight]; !ok || !h.Verified {
			return fmt.Errorf("proof target %d: %w", targetHeight, bridgeerr.ErrUnknownHeader)
		}
		if model.IsZeroHash(txHash) {
			return bridgeerr.ErrInvalidProof.WithCause(errors.New("zero transaction hash"))
		}
		if err := verify.CheckPathShape(path, index); err != nil {
			return err
		}
		if _, ok := b.st.proofs[txHash]; ok {
			return fmt.Errorf("proof %s: %w", txHash, bridgeerr.ErrAlreadyExists)
		}

		b.st.proofs[txHash] = model.InclusionProof{
			TransactionHash:  txHash,
			TargetHeight:     targetHeight,
			MerklePath:       append([]chainhash.Hash(nil), path...),
			TransactionIndex: index,
			SubmittedAt:      o.at,
		}
		b.st.stats.ProofsSubmitted++
		o.record(model.OperationLogEntry{
			Kind:            model.OpProofSubmitted,
			Caller:          caller,
			TransactionHash: txHash,
			Height:          targetHeight,
		})
		return nil
	})
}

// VerifyProof recomputes the merkle root from the stored path and marks the proof
// verified only on an exact match with the target header's root.
func (b *Bridge) VerifyProof(ctx context.Context, caller model.Principal, txHash chainhash.Hash) error {
	return b.apply(ctx, "verify_proof", func(o *op) error {
		o.with(zap.Stringer("tx", txHash))
		p, ok := b.st.proofs[txHash]
		if !ok {
			return fmt.Errorf("proof %s: %w", txHash, bridgeerr.ErrNotFound)
		}
		if p.Verified {
			return fmt.Errorf("proof %s: %w", txHash, bridgeerr.ErrAlreadyVerified)
		}
		h, ok := b.st.headers[p.TargetHeight]
		if !ok || !h.Verified {
			return fmt.Errorf("proof target %d: %w", p.TargetHeight, bridgeerr.ErrUnknownHeader)
		}
		if err := verify.CheckInclusion(txHash, p.MerklePath, p.TransactionIndex, h.MerkleRoot); err != nil {
			if errors.Is(err, bridgeerr.ErrProofMismatch) {
				b.st.stats.ProofsMismatched++
			}
			return fmt.Errorf("verify proof %s: %w", txHash, err)
		}

		p.Verified = true
		p.VerifiedAt = o.at
		b.st.proofs[txHash] = p
		b.st.stats.ProofsVerified++
		o.record(model.OperationLogEntry{
			Kind:            model.OpProofVerified,
			Caller:          caller,
			TransactionHash: txHash,
			Height:          p.TargetHeight,
		})
		return nil
	})
}

// Proof returns the stored proof for txHash.
func (b *Bridge) Proof(txHash chainhash.Hash) (model.InclusionProof, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.st.proofs[txHash]
	if !ok {
		return model.InclusionProof{}, false
	}
	return cloneProof(p), true
}

func (b *Bridge) proofReady(txHash chainhash.Hash) (model.InclusionProof, error) {
	p, ok := b.st.proofs[txHash]
	switch {
	case !ok:
		return p, bridgeerr.ErrProofNotReady.WithCause(errors.New("no proof submitted"))
	case !p.Verified:
		return p, bridgeerr.ErrProofNotReady.WithCause(
			fmt.Errorf("proof submitted %s is unverified", p.SubmittedAt.Format(time.RFC3339)))
	}
	return p, nil
}
