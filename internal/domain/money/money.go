// Package money convierte importes entre la moneda base y otras monedas.
// Los importes persistidos siempre están en moneda base; la conversión es solo de lectura.
package money

import "github.com/shopspring/decimal"

// DisplayPlaces decimales usados al mostrar importes convertidos.
const DisplayPlaces = 2

// FromBase convierte un importe en moneda base a una moneda con la tasa dada
// (unidades de base por 1 unidad de la moneda). Tasa no positiva devuelve cero.
func FromBase(amount, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return decimal.Zero
	}
	return amount.DivRound(rate, DisplayPlaces)
}

// ToBase convierte un importe expresado en otra moneda a moneda base.
func ToBase(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}

// LineTotal total de una línea de venta en moneda base.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
