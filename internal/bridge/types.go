package bridge

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Indexer applies a verified claim's effects. A failed effect never rolls back the claim.
	Indexer interface {
		IndexEffect(ctx context.Context, effect model.Effect, sourceTx chainhash.Hash, sourceHeight uint64) (model.RecordID, error)
	}
	// RecordDeactivator is optionally implemented by an Indexer to soft-delete records
	// when their source transaction is deactivated.
	RecordDeactivator interface {
		Deactivate(ctx context.Context, id model.RecordID) error
	}
	// AuditSink receives committed operation log entries outside the critical section.
	AuditSink interface {
		Publish(ctx context.Context, entries []model.OperationLogEntry) error
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
