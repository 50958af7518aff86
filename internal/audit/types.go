package audit

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertOperations(ctx context.Context, entries []model.OperationLogEntry) error
		MaxOperationSeq(ctx context.Context) (uint64, error)
	}
	// LogSource exposes the retained in-memory operation log and its sequence.
	LogSource interface {
		OperationLog(afterSeq uint64, limit int) []model.OperationLogEntry
		AdvanceLogSeq(seq uint64) bool
	}
	Metrics interface {
		ObserveExport(err error, entries int, started time.Time)
		ObserveSkipped(entries int)
	}
)
