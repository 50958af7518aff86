package relayer

import (
	"context"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/goodnatureofminers/blockinsight7000-bridge/pkg/safe"
)

// BitcoinSource reads headers and block transaction ids from a bitcoind node.
type BitcoinSource struct {
	rpc RPCClient
}

func NewBitcoinSource(rpc RPCClient) *BitcoinSource {
	return &BitcoinSource{rpc: rpc}
}

// LatestHeight returns the height of the node's best block.
func (s *BitcoinSource) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchHeader returns the main-chain header at height.
func (s *BitcoinSource) FetchHeader(ctx context.Context, height uint64) (model.BlockHeader, error) {
	hash, err := s.blockHash(ctx, height)
	if err != nil {
		return model.BlockHeader{}, err
	}
	wh, err := s.rpc.GetBlockHeader(hash)
	if err != nil {
		return model.BlockHeader{}, fmt.Errorf("get block header %s: %w", hash, err)
	}
	h := model.HeaderFromWire(height, *wh)
	if h.BlockHash != *hash {
		return model.BlockHeader{}, fmt.Errorf("node returned header %s for block %s", h.BlockHash, hash)
	}
	return h, nil
}

// FetchTxIDs returns the block's transaction ids in block order.
func (s *BitcoinSource) FetchTxIDs(ctx context.Context, height uint64) ([]chainhash.Hash, error) {
	hash, err := s.blockHash(ctx, height)
	if err != nil {
		return nil, err
	}
	block, err := s.rpc.GetBlockVerbose(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	txids := make([]chainhash.Hash, 0, len(block.Tx))
	for _, id := range block.Tx {
		h, err := model.ParseHash(id)
		if err != nil {
			return nil, fmt.Errorf("block %s txid %q: %w", hash, id, err)
		}
		txids = append(txids, h)
	}
	return txids, nil
}

func (s *BitcoinSource) blockHash(ctx context.Context, height uint64) (*chainhash.Hash, error) {
	if height > math.MaxInt64 {
		return nil, fmt.Errorf("block height %d exceeds rpc limit", height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return hash, nil
}
