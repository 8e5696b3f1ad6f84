package readstore

import (
	"context"
	"errors"
	"log/slog"

	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
)

type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// snapshot runs fn in a repeatable-read, read-only transaction when db is a
// pool. Inside an existing transaction fn runs on it directly.
func snapshot(ctx context.Context, db sqlc.DBTX, fn func(db sqlc.DBTX) error) error {
	beginner, ok := db.(txBeginner)
	if !ok {
		return fn(db)
	}

	tx, err := beginner.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return err
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
