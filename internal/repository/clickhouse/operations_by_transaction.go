package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/google/uuid"
)

const operationsByTransactionQuery = `
SELECT seq, id, kind, caller, height, deposit_id, amount, detail, at
FROM bridge_operations FINAL
WHERE network = ? AND tx_hash = ?
ORDER BY seq
LIMIT ?`

// OperationsByTransaction returns the full stored history of a transaction in sequence order.
func (r *Repository) OperationsByTransaction(ctx context.Context, txHash chainhash.Hash, limit uint64) (entries []model.OperationLogEntry, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("operations_by_transaction", err, start)
	}()

	rows, err := r.conn.Query(ctx, operationsByTransactionQuery, string(r.network), txHash.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("query operations by transaction: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			e      model.OperationLogEntry
			id     uuid.UUID
			kind   string
			caller string
			amount int64
		)
		if err = rows.Scan(&e.Seq, &id, &kind, &caller, &e.Height, &e.DepositID, &amount, &e.Detail, &e.At); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		e.ID = id
		e.Kind = model.OperationKind(kind)
		e.Caller = model.Principal(caller)
		e.Amount = btcutil.Amount(amount)
		e.TransactionHash = txHash
		e.At = e.At.UTC()
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return entries, nil
}
