// Package report genera las exportaciones de ventas: cierre en PDF (maroto) y libro en XLSX (excelize).
//
// Layout del PDF (A4):
//
//	┌──────────────────────────────────────────────┐
//	│  Nombre del negocio       │  Título + periodo │
//	│  ──────────────────────────────────────────  │
//	│  RESUMEN: ventas | unidades | ingresos CUP    │
//	│  ──────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Cant | P.Unit |    │
//	│         Moneda | Total CUP                    │
//	│  ──────────────────────────────────────────  │
//	│  Generado el ...                              │
//	└──────────────────────────────────────────────┘
package report

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/kiosquito/internal/application/usecase"
	"github.com/jhoicas/kiosquito/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

var _ usecase.SalesPDFGenerator = (*MarotoSalesPDF)(nil)

// MarotoSalesPDF implementa usecase.SalesPDFGenerator con Maroto v2.
type MarotoSalesPDF struct{}

// NewMarotoSalesPDF construye el generador.
func NewMarotoSalesPDF() *MarotoSalesPDF { return &MarotoSalesPDF{} }

// SalesPDF genera el PDF y devuelve sus bytes.
func (g *MarotoSalesPDF) SalesPDF(_ context.Context, r usecase.SalesReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		WithAuthor(r.AppName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if r.Summary != nil {
		m.AddRows(summaryRow(r))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow())
	if len(r.Sales) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin ventas en el periodo", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(tableDetailRows(r)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Generado el "+r.GeneratedAt.Format(dateTimeLayout), props.Text{Size: 7, Color: colorGray, Top: 1}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq) y título + ventana (der).
func headerRow(r usecase.SalesReport) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New(r.AppName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(6).Add(
			text.New(r.Title, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1}),
			text.New(windowLabel(r), props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGray}),
		),
	)
}

func summaryRow(r usecase.SalesReport) core.Row {
	s := r.Summary
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(value, props.Text{Size: 11, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell("VENTAS", fmt.Sprintf("%d", s.SalesCount)),
		cell("UNIDADES", fmt.Sprintf("%d", s.TotalUnitsSold)),
		cell("INGRESOS ("+entity.BaseCurrencyCode+")", s.TotalRevenueBase.StringFixed(2)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("P. Unit.", 2, align.Right),
		h("Moneda", 1, align.Center),
		h("Total "+entity.BaseCurrencyCode, 2, align.Right),
	)
}

// tableDetailRows: una fila por venta.
func tableDetailRows(r usecase.SalesReport) []core.Row {
	rows := make([]core.Row, 0, len(r.Sales))
	for _, s := range r.Sales {
		created := s.CreatedAt
		if r.Location != nil {
			created = created.In(r.Location)
		}
		cell := func(v string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		rows = append(rows, row.New(7).Add(
			cell(created.Format(dateTimeLayout), 2, align.Left),
			cell(s.ProductName, 4, align.Left),
			cell(fmt.Sprintf("%d", s.Quantity), 1, align.Center),
			cell(s.UnitPrice.StringFixed(2), 2, align.Right),
			cell(s.CurrencyCode, 1, align.Center),
			cell(s.TotalBase.StringFixed(2), 2, align.Right),
		))
	}
	return rows
}

// windowLabel describe la ventana [From, To) con fechas inclusivas.
func windowLabel(r usecase.SalesReport) string {
	switch {
	case r.From != nil && r.To != nil:
		return fmt.Sprintf("Del %s al %s", r.From.Format(dateLayout), r.To.AddDate(0, 0, -1).Format(dateLayout))
	case r.From != nil:
		return "Desde el " + r.From.Format(dateLayout)
	case r.To != nil:
		return "Hasta el " + r.To.AddDate(0, 0, -1).Format(dateLayout)
	}
	return "Todas las ventas"
}
