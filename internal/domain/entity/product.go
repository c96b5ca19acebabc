package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo local.
// Price está expresado en la moneda base; Stock nunca puede quedar negativo.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Stock       int
	Description string
	Category    string
	CreatedAt   time.Time
}

// ProductPatch máscara de campos para una actualización parcial: solo los campos no nil
// entran en el UPDATE, la omisión nunca se traduce en un NULL.
type ProductPatch struct {
	Name        *string
	Price       *decimal.Decimal
	Stock       *int
	Description *string
	Category    *string
}

// IsEmpty indica si la máscara no contiene ningún campo.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Stock == nil && p.Description == nil && p.Category == nil
}
