package transport

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/records"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Bridge interface {
		SubmitHeader(ctx context.Context, caller model.Principal, h model.BlockHeader) error
		VerifyHeader(ctx context.Context, caller model.Principal, height uint64) error
		Header(height uint64) (model.BlockHeader, bool)
		HighestHeight() uint64
		SubmitProof(ctx context.Context, caller model.Principal, txHash chainhash.Hash, targetHeight uint64, path []chainhash.Hash, index uint32) error
		VerifyProof(ctx context.Context, caller model.Principal, txHash chainhash.Hash) error
		Proof(txHash chainhash.Hash) (model.InclusionProof, bool)
		SubmitClaim(ctx context.Context, submitter model.Principal, txHash chainhash.Hash, claimedHeight uint64, effects []model.Effect) error
		FinalizeClaim(ctx context.Context, caller model.Principal, txHash chainhash.Hash, confirmations uint32) (model.VerifiedTransaction, error)
		RejectClaim(ctx context.Context, caller model.Principal, txHash chainhash.Hash, reason string) error
		DeactivateTransaction(ctx context.Context, caller model.Principal, txHash chainhash.Hash) error
		PendingClaim(txHash chainhash.Hash) (model.PendingClaim, bool)
		PendingClaims() []model.PendingClaim
		VerifiedTransaction(txHash chainhash.Hash) (model.VerifiedTransaction, bool)
		CreateDeposit(ctx context.Context, depositor model.Principal, txHash chainhash.Hash, amount btcutil.Amount) (model.DepositRecord, error)
		ConfirmDeposit(ctx context.Context, caller model.Principal, id uint64) (model.DepositRecord, error)
		Deposit(id uint64) (model.DepositRecord, bool)
		DepositsByTransaction(txHash chainhash.Hash) []model.DepositRecord
		SetPaused(ctx context.Context, caller model.Principal, paused bool) error
		SetMinConfirmations(ctx context.Context, caller model.Principal, n uint32) error
		SetMaxConfirmations(ctx context.Context, caller model.Principal, n uint32) error
		SetMinDepositAmount(ctx context.Context, caller model.Principal, amount btcutil.Amount) error
		SetOperator(ctx context.Context, caller, who model.Principal, enabled bool) error
		TransferOwnership(ctx context.Context, caller, newOwner model.Principal) error
		Policy() model.Policy
		Paused() bool
		Stats() model.Stats
		OperationLog(afterSeq uint64, limit int) []model.OperationLogEntry
		LastSeq() uint64
		Network() model.Network
	}
	// RecordReader serves indexed records. Either record store implements it.
	RecordReader interface {
		GetRecord(ctx context.Context, id model.RecordID) (records.Record, bool, error)
		RecordsBySource(ctx context.Context, sourceTx chainhash.Hash) ([]model.RecordID, error)
	}
	// History serves the exported operation log beyond in-memory retention.
	History interface {
		OperationsByTransaction(ctx context.Context, txHash chainhash.Hash, limit uint64) ([]model.OperationLogEntry, error)
	}
	Metrics interface {
		ObserveRequest(method, route string, code int, started time.Time)
	}
	HealthSetter interface {
		SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
	}
)
