package duckdb

import (
	"context"
	"database/sql"
)

type txKey struct{}

// WithTransaction carries tx to the record store, which prepares its statements on it.
func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTransaction returns the transaction carried by ctx, nil outside InTransaction.
func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}
