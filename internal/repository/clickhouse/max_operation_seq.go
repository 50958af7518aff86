package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const maxOperationSeqQuery = `
SELECT coalesce(max(seq), toUInt64(0)) AS max_seq
FROM bridge_operations
WHERE network = ?`

// MaxOperationSeq returns the highest stored sequence number for the repository network.
func (r *Repository) MaxOperationSeq(ctx context.Context) (seq uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_operation_seq", err, start)
	}()

	rows, err := r.conn.Query(ctx, maxOperationSeqQuery, string(r.network))
	if err != nil {
		return 0, fmt.Errorf("query max operation seq: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("max operation seq not found")
	}
	if err = rows.Scan(&seq); err != nil {
		return 0, fmt.Errorf("scan max operation seq: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max operation seq: %w", err)
	}
	return seq, nil
}
