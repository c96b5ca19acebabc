package persistence

import (
	"context"

	"github.com/jhoicas/kiosquito/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción.
type TxRunner struct {
	db *Database
}

// NewTxRunner construye el runner sobre el handle de base de datos.
func NewTxRunner(db *Database) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// El Rollback diferido cubre también el camino de panic.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	currencyRepo repository.CurrencyRepository,
	saleRepo repository.SaleRepository,
) error) error {
	if err := r.db.Ready(); err != nil {
		return err
	}
	tx, err := r.db.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewProductRepository(tx), NewCurrencyRepository(tx), NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return storageErr("commit transaction", err)
	}
	return nil
}
