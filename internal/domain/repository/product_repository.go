package repository

import (
	"context"

	"github.com/jhoicas/kiosquito/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (int64, error)
	// GetByID devuelve nil, nil si el producto no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// List devuelve todos los productos ordenados por nombre; el filtrado es del llamador.
	List(ctx context.Context) ([]*entity.Product, error)
	// Update aplica solo los campos presentes en la máscara. ErrProductNotFound si no existe.
	Update(ctx context.Context, id int64, patch entity.ProductPatch) error
	// DecrementStock resta qty solo si hay stock suficiente; ErrInsufficientStock en otro caso.
	DecrementStock(ctx context.Context, id int64, qty int) error
	Delete(ctx context.Context, id int64) error
	// DeleteByNames borrado físico por coincidencia exacta de nombre; devuelve filas borradas.
	DeleteByNames(ctx context.Context, names []string) (int64, error)
}
