package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/foodorder-demo/internal/db"
)

// withTx runs fn inside a transaction. A repository built with NewOrderWithTx
// has no pool and is already inside the caller's transaction, so fn runs
// directly on its queries.
func (r *orderRepository) withTx(ctx context.Context, fn func(q *db.Queries) error) (txErr error) {
	if r.pool == nil {
		return fn(r.q)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pool.Begin: %w", err)
	}

	defer func() {
		if txErr == nil {
			return
		}
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
		}
	}()

	if err := fn(r.q.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx.Commit: %w", err)
	}

	return nil
}
