package repository

import (
	"context"

	"github.com/jhoicas/kiosquito/internal/domain/entity"
)

// CurrencyRepository define el puerto de persistencia para Currency.
type CurrencyRepository interface {
	Create(ctx context.Context, currency *entity.Currency) (int64, error)
	// GetByID y GetByCode devuelven nil, nil si la moneda no existe.
	GetByID(ctx context.Context, id int64) (*entity.Currency, error)
	GetByCode(ctx context.Context, code string) (*entity.Currency, error)
	// ListActive solo monedas activas, por código.
	ListActive(ctx context.Context) ([]*entity.Currency, error)
	// ListAll todas, con la moneda base primero.
	ListAll(ctx context.Context) ([]*entity.Currency, error)
	Update(ctx context.Context, id int64, patch entity.CurrencyPatch) error
	Delete(ctx context.Context, id int64) error
}
