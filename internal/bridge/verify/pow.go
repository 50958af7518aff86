// Package verify implements the source-chain checks the bridge runs before trusting a header or proof.
package verify

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
)

// HeaderHash recomputes the double-SHA256 hash of the serialized header fields.
func HeaderHash(h model.BlockHeader) chainhash.Hash {
	wh := h.Wire()
	return wh.BlockHash()
}

// CheckProofOfWork verifies that BlockHash commits to the header fields and meets
// the target encoded in Bits, which must lie in (0, powLimit].
func CheckProofOfWork(h model.BlockHeader, powLimit *big.Int) error {
	if computed := HeaderHash(h); computed != h.BlockHash {
		return bridgeerr.ErrHeaderHashMismatch.WithCause(
			fmt.Errorf("height %d: computed %s", h.Height, computed))
	}

	target := blockchain.CompactToBig(h.Bits)
	if target.Sign() <= 0 {
		return bridgeerr.ErrInvalidTarget.WithCause(fmt.Errorf("bits %08x encode a non-positive target", h.Bits))
	}
	if powLimit != nil && target.Cmp(powLimit) > 0 {
		return bridgeerr.ErrInvalidTarget.WithCause(fmt.Errorf("bits %08x exceed the network limit", h.Bits))
	}

	hash := h.BlockHash
	if blockchain.HashToBig(&hash).Cmp(target) > 0 {
		return bridgeerr.ErrInsufficientWork.WithCause(fmt.Errorf("hash %s above target %064x", h.BlockHash, target))
	}
	return nil
}

// CheckContinuity verifies that h links to its stored parent.
func CheckContinuity(h model.BlockHeader, parent model.BlockHeader) error {
	if parent.Height+1 != h.Height {
		return bridgeerr.ErrChainDiscontinuity.WithCause(
			fmt.Errorf("parent height %d is not below %d", parent.Height, h.Height))
	}
	if h.PreviousBlockHash != parent.BlockHash {
		return bridgeerr.ErrChainDiscontinuity.WithCause(
			fmt.Errorf("height %d links to %s, stored parent is %s", h.Height, h.PreviousBlockHash, parent.BlockHash))
	}
	return nil
}
