package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Price en moneda base.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"notblank,max=200"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Description string          `json:"description" validate:"max=1000"`
	Category    string          `json:"category" validate:"max=100"`
}

// UpdateProductRequest actualización parcial: solo los campos presentes se escriben.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,notblank,max=200"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}
