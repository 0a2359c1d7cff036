package pgsql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/couples_finance_bff/internal/apperrors"
	"github.com/SscSPs/couples_finance_bff/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository holds the pool shared by the mirror repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// withTx runs fn inside a database transaction, committing when fn succeeds
// and rolling back otherwise. op names the operation in errors and logs.
func (r *BaseRepository) withTx(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "mirror "+op+": failed to begin transaction", err)
	}
	defer func() {
		// Rollback after a successful commit reports ErrTxClosed.
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			middleware.GetLoggerFromCtx(ctx).Error("Mirror transaction rollback failed",
				slog.String("op", op),
				slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "mirror "+op+": failed to commit transaction", err)
	}
	return nil
}
