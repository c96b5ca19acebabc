package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosquito/internal/application/dto"
	"github.com/jhoicas/kiosquito/internal/application/usecase"
	"github.com/jhoicas/kiosquito/internal/domain"
	"github.com/jhoicas/kiosquito/internal/domain/entity"
)

type captureGenerator struct {
	report usecase.SalesReport
}

func (g *captureGenerator) SalesPDF(_ context.Context, r usecase.SalesReport) ([]byte, error) {
	g.report = r
	return []byte("%PDF-fake"), nil
}

func (g *captureGenerator) SalesXLSX(_ context.Context, r usecase.SalesReport) ([]byte, error) {
	g.report = r
	return []byte("PK-fake"), nil
}

func TestReportUseCase_SalesPDF(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	water := env.createProduct(t, "Agua", "50", 10)
	cup := env.currencyID(t, "CUP")
	today := env.now

	env.now = today.AddDate(0, 0, -1)
	_, err := env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: water, CurrencyID: cup, Quantity: 1})
	require.NoError(t, err)
	env.now = today
	_, err = env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: water, CurrencyID: cup, Quantity: 2})
	require.NoError(t, err)

	gen := &captureGenerator{}
	reports := usecase.NewReportUseCase(env.sales, gen, gen, "Kiosquito")

	b, name, err := reports.SalesPDF(ctx, "day")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(b))
	assert.Equal(t, "ventas_day_20260310.pdf", name)

	r := gen.report
	assert.Equal(t, "Kiosquito", r.AppName)
	require.NotNil(t, r.Summary)
	assert.Equal(t, int64(1), r.Summary.SalesCount)
	require.Len(t, r.Sales, 1, "el detalle usa la misma ventana que el resumen")
	assert.Equal(t, 2, r.Sales[0].Quantity)
	assert.True(t, r.From.Equal(entity.StartOfDay(today, havana)))

	_, _, err = reports.SalesPDF(ctx, "trimestre")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportUseCase_SalesXLSX(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	water := env.createProduct(t, "Agua", "50", 10)
	cup := env.currencyID(t, "CUP")
	_, err := env.sales.RecordSale(ctx, dto.RecordSaleRequest{ProductID: water, CurrencyID: cup, Quantity: 1})
	require.NoError(t, err)

	gen := &captureGenerator{}
	reports := usecase.NewReportUseCase(env.sales, gen, gen, "Kiosquito")

	b, name, err := reports.SalesXLSX(ctx, entity.SalesFilter{})
	require.NoError(t, err)
	assert.Equal(t, "PK-fake", string(b))
	assert.Equal(t, "ventas_20260310_140000.xlsx", name)
	assert.Nil(t, gen.report.From)
	assert.Nil(t, gen.report.To)
	assert.Nil(t, gen.report.Summary)
	assert.Len(t, gen.report.Sales, 1)
}
