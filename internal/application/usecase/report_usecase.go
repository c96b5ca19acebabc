package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/kiosquito/internal/application/dto"
	"github.com/jhoicas/kiosquito/internal/domain/entity"
)

// SalesReport datos ya resueltos que reciben los generadores de reportes.
type SalesReport struct {
	AppName     string
	Title       string
	Period      string     // vacío en exportaciones por rango
	From        *time.Time // nil = sin límite
	To          *time.Time // exclusivo
	Summary     *dto.SalesSummaryResponse
	Sales       []dto.SaleResponse
	GeneratedAt time.Time
	Location    *time.Location
}

// SalesPDFGenerator genera el PDF de cierre de caja.
type SalesPDFGenerator interface {
	SalesPDF(ctx context.Context, report SalesReport) ([]byte, error)
}

// SalesXLSXGenerator genera la hoja de cálculo del libro de ventas.
type SalesXLSXGenerator interface {
	SalesXLSX(ctx context.Context, report SalesReport) ([]byte, error)
}

// ReportUseCase exportaciones de ventas (PDF por periodo, XLSX por rango de fechas).
type ReportUseCase struct {
	sales   *SalesUseCase
	pdf     SalesPDFGenerator
	xlsx    SalesXLSXGenerator
	appName string
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(sales *SalesUseCase, pdf SalesPDFGenerator, xlsx SalesXLSXGenerator, appName string) *ReportUseCase {
	return &ReportUseCase{sales: sales, pdf: pdf, xlsx: xlsx, appName: appName}
}

// SalesPDF genera el cierre del periodo: resumen y detalle de las ventas de la misma ventana.
// Devuelve los bytes y un nombre de archivo sugerido.
func (uc *ReportUseCase) SalesPDF(ctx context.Context, period string) ([]byte, string, error) {
	summary, err := uc.sales.Summarize(ctx, period)
	if err != nil {
		return nil, "", err
	}
	lastDay := summary.To.AddDate(0, 0, -1)
	sales, err := uc.sales.ListSales(ctx, entity.SalesFilter{From: &summary.From, To: &lastDay})
	if err != nil {
		return nil, "", err
	}

	now := uc.sales.now().In(uc.sales.loc)
	report := SalesReport{
		AppName:     uc.appName,
		Title:       "Cierre de ventas",
		Period:      summary.Period,
		From:        &summary.From,
		To:          &summary.To,
		Summary:     summary,
		Sales:       sales,
		GeneratedAt: now,
		Location:    uc.sales.loc,
	}
	b, err := uc.pdf.SalesPDF(ctx, report)
	if err != nil {
		return nil, "", err
	}
	return b, fmt.Sprintf("ventas_%s_%s.pdf", summary.Period, now.Format("20060102")), nil
}

// SalesXLSX exporta el libro de ventas filtrado por fechas de calendario inclusivas.
func (uc *ReportUseCase) SalesXLSX(ctx context.Context, filter entity.SalesFilter) ([]byte, string, error) {
	sales, err := uc.sales.ListSales(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	from, to := uc.sales.window(filter)
	now := uc.sales.now().In(uc.sales.loc)
	report := SalesReport{
		AppName:     uc.appName,
		Title:       "Libro de ventas",
		From:        from,
		To:          to,
		Sales:       sales,
		GeneratedAt: now,
		Location:    uc.sales.loc,
	}
	b, err := uc.xlsx.SalesXLSX(ctx, report)
	if err != nil {
		return nil, "", err
	}
	return b, fmt.Sprintf("ventas_%s.xlsx", now.Format("20060102_150405")), nil
}
