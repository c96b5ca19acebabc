package dto

import "github.com/shopspring/decimal"

// CreateCurrencyRequest entrada para crear una moneda. El código se normaliza a mayúsculas.
// ExchangeRate son unidades de moneda base por 1 unidad de la moneda.
type CreateCurrencyRequest struct {
	Code         string          `json:"code" validate:"required,alphanum,min=2,max=10"`
	Name         string          `json:"name" validate:"notblank,max=100"`
	ExchangeRate decimal.Decimal `json:"exchange_rate" validate:"gt=0"`
	Active       *bool           `json:"active"` // por defecto true
}

// UpdateCurrencyRequest actualización parcial de una moneda.
type UpdateCurrencyRequest struct {
	Code         *string          `json:"code" validate:"omitempty,alphanum,min=2,max=10"`
	Name         *string          `json:"name" validate:"omitempty,notblank,max=100"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate" validate:"omitempty,gt=0"`
	Active       *bool            `json:"active"`
}

// CurrencyResponse salida de una moneda.
type CurrencyResponse struct {
	ID           int64           `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	Active       bool            `json:"active"`
	IsBase       bool            `json:"is_base"`
}
