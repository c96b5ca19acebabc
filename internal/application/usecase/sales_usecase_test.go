package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosquito/internal/application/dto"
	"github.com/jhoicas/kiosquito/internal/domain"
	"github.com/jhoicas/kiosquito/internal/domain/entity"
)

func TestRecordSale_DescuentaStockYResume(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	water := env.createProduct(t, "Agua", "50", 10)
	cup := env.currencyID(t, "CUP")

	saleID, err := env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: water, CurrencyID: cup, Quantity: 3})
	require.NoError(t, err)
	assert.Positive(t, saleID)

	p, err := env.catalog.GetProduct(ctx, water)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock)

	summary, err := env.sales.Summarize(ctx, "day")
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.SalesCount)
	assert.True(t, summary.TotalRevenueBase.Equal(decimal.NewFromInt(150)), summary.TotalRevenueBase.String())
	assert.Equal(t, int64(3), summary.TotalUnitsSold)

	// Más unidades de las disponibles: se rechaza y nada cambia.
	_, err = env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: water, CurrencyID: cup, Quantity: 11})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, err = env.catalog.GetProduct(ctx, water)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock)

	again, err := env.sales.Summarize(ctx, "day")
	require.NoError(t, err)
	assert.Equal(t, summary.SalesCount, again.SalesCount)
	assert.True(t, again.TotalRevenueBase.Equal(summary.TotalRevenueBase))
}

func TestRecordSale_ImportesConDecimales(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	candy := env.createProduct(t, "Caramelo", "0.1", 10)
	cup := env.currencyID(t, "CUP")

	for i := 0; i < 3; i++ {
		_, err := env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: candy, CurrencyID: cup, Quantity: 1})
		require.NoError(t, err)
	}
	_, err := env.sales.RecordSale(ctx, dto.RecordSaleRequest{
		ProductID: candy, CurrencyID: cup, Quantity: 2, UnitPrice: decPtr("0.15"),
	})
	require.NoError(t, err)

	summary, err := env.sales.Summarize(ctx, "day")
	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.SalesCount)
	assert.Equal(t, "0.6", summary.TotalRevenueBase.String())
	assert.Equal(t, int64(5), summary.TotalUnitsSold)

	sales, err := env.sales.ListSales(ctx, entity.SalesFilter{})
	require.NoError(t, err)
	require.Len(t, sales, 4)
	assert.Equal(t, "0.3", sales[0].TotalBase.String())
	assert.Equal(t, "0.15", sales[0].UnitPrice.String())
}

func TestCatalog_PrecioDeGranMagnitud(t *testing.T) {
	env := newTestEnv(t)
	id := env.createProduct(t, "Lote", "12345678901234567.89", 1)

	p, err := env.catalog.GetProduct(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567.89", p.Price.String())
}

func TestRecordSale_ReferenciasYValidacion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	water := env.createProduct(t, "Agua", "50", 5)
	cup := env.currencyID(t, "CUP")

	_, err := env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: water + 50, CurrencyID: cup, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: water, CurrencyID: 9999, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrCurrencyNotFound)

	_, err = env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: water, CurrencyID: cup, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: water, CurrencyID: cup, Quantity: 1, UnitPrice: decPtr("-2")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p, err := env.catalog.GetProduct(ctx, water)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock, "ningún intento fallido descuenta stock")

	sales, err := env.sales.ListSales(ctx, entity.SalesFilter{})
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestRecordSale_PrecioExplicitoYConversion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	soda := env.createProduct(t, "Refresco", "150", 10)
	usd := env.currencyID(t, "USD")

	_, err := env.sales.RecordSale(ctx, dto.RecordSaleRequest{
		ProductID: soda, CurrencyID: usd, Quantity: 2, UnitPrice: decPtr("120"),
	})
	require.NoError(t, err)

	sales, err := env.sales.ListSales(ctx, entity.SalesFilter{})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	s := sales[0]
	assert.Equal(t, "Refresco", s.ProductName)
	assert.Equal(t, "USD", s.CurrencyCode)
	assert.True(t, s.UnitPrice.Equal(decimal.NewFromInt(120)))
	assert.True(t, s.TotalBase.Equal(decimal.NewFromInt(240)))
	require.NotNil(t, s.TotalInCurrency)
	assert.Equal(t, "2", s.TotalInCurrency.String())
}

func TestListSales_HuerfanasConPlaceholders(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cafe := env.createProduct(t, "Café", "40", 3)
	eur, err := env.catalog.CreateCurrency(ctx, dto.CreateCurrencyRequest{Code: "EUR", Name: "Euro", ExchangeRate: decimal.NewFromInt(130)})
	require.NoError(t, err)

	_, err = env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: cafe, CurrencyID: eur, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, env.catalog.DeleteProduct(ctx, cafe))
	require.NoError(t, env.catalog.DeleteCurrency(ctx, eur))

	sales, err := env.sales.ListSales(ctx, entity.SalesFilter{})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, entity.DeletedProductLabel, sales[0].ProductName)
	assert.Equal(t, entity.DeletedCurrencyLabel, sales[0].CurrencyCode)
	assert.Nil(t, sales[0].TotalInCurrency)
	assert.True(t, sales[0].TotalBase.Equal(decimal.NewFromInt(40)))
}

func TestSummarize_Ventanas(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	rice := env.createProduct(t, "Arroz", "10", 100)
	cup := env.currencyID(t, "CUP")
	today := env.now

	record := func(at time.Time, qty int) {
		t.Helper()
		env.now = at
		_, err := env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: rice, CurrencyID: cup, Quantity: qty})
		require.NoError(t, err)
	}
	record(today.AddDate(0, 0, -40), 1) // fuera de todas
	record(today.AddDate(0, 0, -20), 2) // mes
	record(today.AddDate(0, 0, -3), 3)  // semana y mes
	// Medianoche local: extremo inferior inclusivo del día.
	record(entity.StartOfDay(today, havana), 4)
	record(today, 5)
	env.now = today

	cases := []struct {
		period string
		count  int64
		units  int64
	}{
		{"day", 2, 9},
		{"semana", 3, 12},
		{"month", 4, 14},
	}
	for _, tc := range cases {
		t.Run(tc.period, func(t *testing.T) {
			s, err := env.sales.Summarize(ctx, tc.period)
			require.NoError(t, err)
			assert.Equal(t, tc.count, s.SalesCount)
			assert.Equal(t, tc.units, s.TotalUnitsSold)
			assert.True(t, s.TotalRevenueBase.Equal(decimal.NewFromInt(tc.units*10)))
		})
	}

	_, err := env.sales.Summarize(ctx, "year")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummarize_SinVentas(t *testing.T) {
	env := newTestEnv(t)
	s, err := env.sales.Summarize(context.Background(), "month")
	require.NoError(t, err)
	assert.Zero(t, s.SalesCount)
	assert.Zero(t, s.TotalUnitsSold)
	assert.True(t, s.TotalRevenueBase.IsZero())
	assert.Equal(t, "month", s.Period)
	assert.True(t, s.To.Sub(s.From) >= 30*24*time.Hour)
}

func TestListSales_FiltroPorFechas(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	rice := env.createProduct(t, "Arroz", "10", 100)
	cup := env.currencyID(t, "CUP")
	today := env.now

	for _, days := range []int{-2, -1, 0} {
		env.now = today.AddDate(0, 0, days)
		_, err := env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: rice, CurrencyID: cup, Quantity: 1})
		require.NoError(t, err)
	}
	env.now = today

	filter, err := env.sales.ParseSalesQuery(dto.SalesQuery{From: "2026-03-09", To: "2026-03-09"})
	require.NoError(t, err)
	sales, err := env.sales.ListSales(ctx, filter)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "2026-03-09", sales[0].CreatedAt.In(havana).Format(time.DateOnly))

	filter, err = env.sales.ParseSalesQuery(dto.SalesQuery{From: "2026-03-09"})
	require.NoError(t, err)
	sales, err = env.sales.ListSales(ctx, filter)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.True(t, sales[0].CreatedAt.After(sales[1].CreatedAt), "más reciente primero")

	filter, err = env.sales.ParseSalesQuery(dto.SalesQuery{To: "2026-03-08"})
	require.NoError(t, err)
	sales, err = env.sales.ListSales(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	filter, err = env.sales.ParseSalesQuery(dto.SalesQuery{From: "2026-03-10", To: "2026-03-01"})
	require.NoError(t, err)
	_, err = env.sales.ListSales(ctx, filter)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.sales.ParseSalesQuery(dto.SalesQuery{From: "10/03/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
