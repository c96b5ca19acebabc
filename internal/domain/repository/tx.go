package repository

import "context"

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil; Rollback en cualquier otro camino, incluido un panic.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo ProductRepository,
		currencyRepo CurrencyRepository,
		saleRepo SaleRepository,
	) error) error
}
