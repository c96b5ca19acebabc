package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kiosquito/internal/domain/entity"
)

// SalesAggregate resultado crudo de la agregación de ventas en una ventana.
type SalesAggregate struct {
	Count       int64
	RevenueBase decimal.Decimal
	UnitsSold   int64
}

// SaleRepository define el puerto del libro de ventas (solo inserción y lectura).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) (int64, error)
	// List devuelve ventas de más reciente a más antigua en [from, to); extremos nil = sin límite.
	List(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error)
	// Aggregate cuenta y suma las ventas en [from, to); ceros si no hay filas.
	Aggregate(ctx context.Context, from, to time.Time) (SalesAggregate, error)
}
