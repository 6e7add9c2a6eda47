package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/patpaw111/web-absn/internal/pkg/database"
)

type txKey struct{}

// ContextWithTx stores a transaction so repositories called inside a
// WithTransaction callback run their queries on it instead of the pool.
func ContextWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// WithTransaction runs fn inside a transaction. The transaction is rolled
// back when fn returns an error or panics, committed otherwise.
func WithTransaction(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(ctx, tx)
			panic(p)
		}
		if err != nil {
			rollback(ctx, tx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		err = fmt.Errorf("commit transaction: %w", err)
	}
	return err
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Error("transaction rollback failed", "error", rbErr)
	}
}

// GetQuerier picks the transaction from the context when present, the pool
// otherwise. Repositories call it on every query.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
