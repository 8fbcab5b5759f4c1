package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/coco-api/internal/application/onboarding"
)

// Ensure TxRunner implements onboarding.TxRunner.
var _ onboarding.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL (read committed).
type TxRunner struct {
	db TxBeginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// NewStores repositorios del flujo de alta sobre q (pool o tx).
func NewStores(q Querier) onboarding.Stores {
	return onboarding.Stores{
		Requests:   NewRequestRepository(q),
		Users:      NewUserRepository(q),
		Companies:  NewCompanyRepository(q),
		Employees:  NewEmployeeRepository(q),
		Coworkings: NewCoworkingRepository(q),
	}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// El Rollback diferido libera la conexión también si fn entra en pánico.
func (r *TxRunner) Run(ctx context.Context, fn func(tx onboarding.Stores) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStores(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
