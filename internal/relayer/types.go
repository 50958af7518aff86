package relayer

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient is the node RPC surface the bitcoin source reads from.
	RPCClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockHeader(blockHash *chainhash.Hash) (*wire.BlockHeader, error)
		GetBlockVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error)
	}
	Source interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchHeader(ctx context.Context, height uint64) (model.BlockHeader, error)
		FetchTxIDs(ctx context.Context, height uint64) ([]chainhash.Hash, error)
	}
	Bridge interface {
		HighestHeight() uint64
		Header(height uint64) (model.BlockHeader, bool)
		SubmitHeader(ctx context.Context, caller model.Principal, h model.BlockHeader) error
		VerifyHeader(ctx context.Context, caller model.Principal, height uint64) error
		PendingClaims() []model.PendingClaim
		Proof(txHash chainhash.Hash) (model.InclusionProof, bool)
		SubmitProof(ctx context.Context, caller model.Principal, txHash chainhash.Hash, targetHeight uint64, path []chainhash.Hash, index uint32) error
		VerifyProof(ctx context.Context, caller model.Principal, txHash chainhash.Hash) error
		FinalizeClaim(ctx context.Context, caller model.Principal, txHash chainhash.Hash, confirmations uint32) (model.VerifiedTransaction, error)
		RejectClaim(ctx context.Context, caller model.Principal, txHash chainhash.Hash, reason string) error
		Policy() model.Policy
	}
	Metrics interface {
		ObserveSyncHeaders(err error, headers int, started time.Time)
		ObserveProcessClaims(err error, finalized int, started time.Time)
		ObserveTip(height uint64)
	}
)
