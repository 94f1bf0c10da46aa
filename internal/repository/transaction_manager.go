package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"health-screen/internal/domain"
	"health-screen/internal/logger"
)

type contextKey string

// TransactionContextKey is the context key holding the active *sqlx.Tx.
const TransactionContextKey contextKey = "tx"

func txFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(TransactionContextKey).(*sqlx.Tx)
	return tx, ok
}

// GetExecutor returns the transaction carried by ctx, or db outside one.
func GetExecutor(ctx context.Context, db DBTX) DBTX {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return db
}

// TransactionManagerAdapter implements domain.TransactionManager with sqlx.
type TransactionManagerAdapter struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

// TxOption configures a TransactionManagerAdapter.
type TxOption func(*TransactionManagerAdapter)

// WithIsolation sets the isolation level of every transaction started.
func WithIsolation(level sql.IsolationLevel) TxOption {
	return func(t *TransactionManagerAdapter) {
		t.opts = &sql.TxOptions{Isolation: level}
	}
}

// NewTransactionManagerAdapter creates a transaction manager for db.
func NewTransactionManagerAdapter(db *sqlx.DB, opts ...TxOption) domain.TransactionManager {
	t := &TransactionManagerAdapter{db: db}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithTransaction runs fn with a transaction in its context. It commits when
// fn returns nil and rolls back on error or panic. A call made inside fn
// joins the outer transaction.
func (t *TransactionManagerAdapter) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, t.opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Get().Error("Failed to roll back transaction", zap.Error(rbErr), zap.NamedError("cause", err))
		}
	}()

	if err = fn(context.WithValue(ctx, TransactionContextKey, tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true
	return nil
}
