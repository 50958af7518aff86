package verify

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
)

// hashPair is the Bitcoin merkle node hash: double SHA-256 of left || right.
func hashPair(left, right chainhash.Hash) chainhash.Hash {
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])
	return chainhash.DoubleHashH(buf[:])
}

// CheckPathShape validates a merkle path before it is stored.
func CheckPathShape(path []chainhash.Hash, index uint32) error {
	if len(path) == 0 {
		return bridgeerr.ErrInvalidProof.WithCause(errors.New("empty merkle path"))
	}
	if len(path) > model.MaxMerklePathLength {
		return bridgeerr.ErrProofTooLong.WithCause(
			fmt.Errorf("path length %d, max %d", len(path), model.MaxMerklePathLength))
	}
	if len(path) < 32 && uint64(index) >= uint64(1)<<len(path) {
		return bridgeerr.ErrInvalidProof.WithCause(
			fmt.Errorf("index %d does not fit a tree of depth %d", index, len(path)))
	}
	return nil
}

// RootFromPath folds leaf with its siblings. Bit i of index selects the side at level i:
// 0 hashes (current, sibling), 1 hashes (sibling, current).
func RootFromPath(leaf chainhash.Hash, path []chainhash.Hash, index uint32) chainhash.Hash {
	cur := leaf
	for _, sibling := range path {
		if index&1 == 0 {
			cur = hashPair(cur, sibling)
		} else {
			cur = hashPair(sibling, cur)
		}
		index >>= 1
	}
	return cur
}

// CheckInclusion recomputes the root and requires an exact match.
func CheckInclusion(leaf chainhash.Hash, path []chainhash.Hash, index uint32, root chainhash.Hash) error {
	if err := CheckPathShape(path, index); err != nil {
		return err
	}
	if got := RootFromPath(leaf, path, index); got != root {
		return bridgeerr.ErrProofMismatch.WithCause(fmt.Errorf("computed root %s, header root %s", got, root))
	}
	return nil
}

// MerkleRoot computes a block's merkle root from its ordered txids, duplicating the
// last node of odd-sized levels.
func MerkleRoot(txids []chainhash.Hash) (chainhash.Hash, error) {
	if len(txids) == 0 {
		return chainhash.Hash{}, errors.New("no transactions")
	}
	level := append([]chainhash.Hash(nil), txids...)
	for len(level) > 1 {
		level = nextLevel(level)
	}
	return level[0], nil
}

// BuildMerklePath returns the sibling path proving txids[index] against MerkleRoot(txids).
func BuildMerklePath(txids []chainhash.Hash, index int) ([]chainhash.Hash, error) {
	if index < 0 || index >= len(txids) {
		return nil, fmt.Errorf("index %d out of range for %d transactions", index, len(txids))
	}
	if len(txids) == 1 {
		return nil, errors.New("single-transaction block has no merkle path")
	}

	level := append([]chainhash.Hash(nil), txids...)
	path := make([]chainhash.Hash, 0, model.MaxMerklePathLength)
	pos := index
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		path = append(path, level[pos^1])
		level = nextLevel(level)
		pos >>= 1
	}
	return path, nil
}

func nextLevel(level []chainhash.Hash) []chainhash.Hash {
	if len(level)%2 == 1 {
		level = append(level, level[len(level)-1])
	}
	next := make([]chainhash.Hash, 0, len(level)/2)
	for i := 0; i < len(level); i += 2 {
		next = append(next, hashPair(level[i], level[i+1]))
	}
	return next
}
