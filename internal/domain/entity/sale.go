package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etiquetas que sustituyen referencias huérfanas al leer ventas.
const (
	DeletedProductLabel  = "Producto eliminado"
	DeletedCurrencyLabel = "Moneda eliminada"
)

// Sale representa una venta registrada. Inmutable una vez creada.
// UnitPrice y TotalBase siempre están en moneda base (TotalBase = UnitPrice × Quantity).
type Sale struct {
	ID         int64
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	CurrencyID int64
	TotalBase  decimal.Decimal
	CreatedAt  time.Time

	// Resueltos en lectura con LEFT JOIN; placeholders si la referencia ya no existe.
	ProductName  string
	CurrencyCode string
	// Tasa actual de la moneda; nil si la moneda fue eliminada.
	CurrencyRate *decimal.Decimal
}

// SalesFilter ventana inclusiva de fechas de calendario; cualquiera de los extremos es opcional.
type SalesFilter struct {
	From *time.Time
	To   *time.Time
}
