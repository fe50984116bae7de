// Package txmanager runs callbacks inside serializable transactions over an
// instrumented dbmetrics.DB.
package txmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/barbearia/barbershop-service/pkg/dbmetrics"
)

// TransactionManager opens serializable transactions on a metrics-wrapped DB.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a transaction manager over the wrapped DB.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction. The transaction
// is stored in the context passed to fn, so repositories using
// dbmetrics.GetExecutor join it automatically. fn returning an error rolls
// the transaction back.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}
	return nil
}
