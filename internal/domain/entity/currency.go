package entity

import "github.com/shopspring/decimal"

// BaseCurrencyCode es el código de la moneda base; su tasa es siempre 1.
const BaseCurrencyCode = "CUP"

// Currency representa una moneda aceptada en caja.
// ExchangeRate son unidades de moneda base por 1 unidad de esta moneda.
type Currency struct {
	ID           int64
	Code         string
	Name         string
	ExchangeRate decimal.Decimal
	Active       bool
}

// IsBase indica si es la moneda base.
func (c *Currency) IsBase() bool {
	return c.Code == BaseCurrencyCode
}

// CurrencyPatch máscara de campos para actualizar una moneda.
type CurrencyPatch struct {
	Code         *string
	Name         *string
	ExchangeRate *decimal.Decimal
	Active       *bool
}

// IsEmpty indica si la máscara no contiene ningún campo.
func (p CurrencyPatch) IsEmpty() bool {
	return p.Code == nil && p.Name == nil && p.ExchangeRate == nil && p.Active == nil
}
