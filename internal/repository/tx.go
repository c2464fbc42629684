package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/cartkit/internal/db"
)

// inTx gives fn a query set bound to one transaction. Repositories built by
// NewCatalogWithTx have no pool and already run inside the caller's
// transaction, which the caller commits or rolls back.
func (r *catalogRepository) inTx(ctx context.Context, fn func(q *db.Queries) error) error {
	if r.pool == nil {
		return fn(r.q)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pool.Begin: %w", err)
	}

	if err := fn(r.q.WithTx(tx)); err != nil {
		return rollback(ctx, tx, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return rollback(ctx, tx, fmt.Errorf("tx.Commit: %w", err))
	}

	return nil
}

// rollback aborts tx and keeps cause as the primary error.
func rollback(ctx context.Context, tx pgx.Tx, cause error) error {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, pgx.ErrTxClosed) {
		return cause
	}

	return errors.Join(cause, fmt.Errorf("tx.Rollback: %w", err))
}
