// Package verifytest builds valid source-chain fixtures for tests.
package verifytest

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/verify"
)

const maxNonceTries = 1 << 20

// MineHeader returns a regtest header at height that satisfies proof of work.
func MineHeader(tb testing.TB, height uint64, prev, merkleRoot chainhash.Hash) model.BlockHeader {
	tb.Helper()

	params := &chaincfg.RegressionNetParams
	h := model.BlockHeader{
		Height:            height,
		PreviousBlockHash: prev,
		MerkleRoot:        merkleRoot,
		Version:           4,
		Timestamp:         time.Unix(1_700_000_000+int64(height)*600, 0),
		Bits:              params.PowLimitBits,
	}
	for nonce := uint32(0); nonce < maxNonceTries; nonce++ {
		h.Nonce = nonce
		h.BlockHash = verify.HeaderHash(h)
		if verify.CheckProofOfWork(h, params.PowLimit) == nil {
			return h
		}
	}
	tb.Fatalf("no nonce found for height %d", height)
	return model.BlockHeader{}
}

// MineChain mines count linked headers starting at height from, on top of prev.
func MineChain(tb testing.TB, from uint64, count int, prev chainhash.Hash) []model.BlockHeader {
	tb.Helper()

	out := make([]model.BlockHeader, 0, count)
	for i := 0; i < count; i++ {
		root := chainhash.DoubleHashH([]byte{byte(i), byte(from)})
		h := MineHeader(tb, from+uint64(i), prev, root)
		out = append(out, h)
		prev = h.BlockHash
	}
	return out
}

// TxHash derives a deterministic fake transaction hash from seed.
func TxHash(seed string) chainhash.Hash {
	return chainhash.DoubleHashH([]byte(seed))
}

// Tree returns n deterministic txids, the merkle root over them and the path for index.
func Tree(tb testing.TB, n, index int) (txids []chainhash.Hash, root chainhash.Hash, path []chainhash.Hash) {
	tb.Helper()

	txids = make([]chainhash.Hash, n)
	for i := range txids {
		txids[i] = TxHash(string(rune('a'+i%26)) + string(rune('0'+i/26)))
	}
	root, err := verify.MerkleRoot(txids)
	if err != nil {
		tb.Fatalf("merkle root: %v", err)
	}
	path, err = verify.BuildMerklePath(txids, index)
	if err != nil {
		tb.Fatalf("merkle path: %v", err)
	}
	return txids, root, path
}
