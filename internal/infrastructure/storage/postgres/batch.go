package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// BatchInserter provides bulk insert using the COPY protocol. Significantly
// faster than individual INSERTs for the importer's row volumes.
type BatchInserter struct {
	txManager *TxManager
}

// NewBatchInserter creates a new batch inserter.
func NewBatchInserter(txManager *TxManager) *BatchInserter {
	return &BatchInserter{txManager: txManager}
}

// CopyFromSlice performs a bulk insert from a slice of rows. Each row is []any
// matching columns. Runs on the active transaction if ctx carries one,
// otherwise directly on the pool.
func (b *BatchInserter) CopyFromSlice(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if tx := b.txManager.GetTx(ctx); tx != nil {
		return tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	}
	return b.txManager.pool.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
}
