package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta. Sin UnitPrice se usa el precio
// vigente del producto; ambos en moneda base.
type RecordSaleRequest struct {
	ProductID  int64            `json:"product_id" validate:"gt=0"`
	CurrencyID int64            `json:"currency_id" validate:"gt=0"`
	Quantity   int              `json:"quantity" validate:"gt=0"`
	UnitPrice  *decimal.Decimal `json:"unit_price" validate:"omitempty,gt=0"`
}

// SalesQuery filtro de fechas de calendario (YYYY-MM-DD), ambos extremos inclusivos y opcionales.
type SalesQuery struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// SaleResponse salida de una venta con sus referencias resueltas.
type SaleResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CurrencyID   int64           `json:"currency_id"`
	CurrencyCode string          `json:"currency_code"`
	TotalBase    decimal.Decimal `json:"total_base"`
	// Total convertido con la tasa actual de la moneda; ausente si la moneda ya no existe.
	TotalInCurrency *decimal.Decimal `json:"total_in_currency,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// SalesSummaryResponse agregados de un periodo.
type SalesSummaryResponse struct {
	Period           string          `json:"period"`
	From             time.Time       `json:"from"`
	To               time.Time       `json:"to"`
	SalesCount       int64           `json:"sales_count"`
	TotalRevenueBase decimal.Decimal `json:"total_revenue_base"`
	TotalUnitsSold   int64           `json:"total_units_sold"`
}
