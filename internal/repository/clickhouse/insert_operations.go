package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
)

const insertOperationsQuery = `
INSERT INTO bridge_operations (
	network,
	seq,
	id,
	kind,
	caller,
	tx_hash,
	height,
	deposit_id,
	amount,
	detail,
	at
) VALUES`

// InsertOperations stores operation log entries. Rows are keyed by (network, seq).
func (r *Repository) InsertOperations(ctx context.Context, entries []model.OperationLogEntry) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_operations", err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertOperationsQuery)
	if err != nil {
		return fmt.Errorf("prepare operations batch: %w", err)
	}

	for _, e := range entries {
		if err = batch.Append(
			string(r.network),
			e.Seq,
			e.ID,
			string(e.Kind),
			string(e.Caller),
			txHashColumn(e),
			e.Height,
			e.DepositID,
			int64(e.Amount),
			e.Detail,
			e.At,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append operation %d: %w", e.Seq, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert operations: %w", err)
	}
	return nil
}

func txHashColumn(e model.OperationLogEntry) string {
	if model.IsZeroHash(e.TransactionHash) {
		return ""
	}
	return e.TransactionHash.String()
}
