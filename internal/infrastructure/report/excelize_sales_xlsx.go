package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/kiosquito/internal/application/usecase"
	"github.com/jhoicas/kiosquito/internal/domain/entity"
)

// SalesSheet nombre de la hoja del libro de ventas.
const SalesSheet = "Ventas"

var _ usecase.SalesXLSXGenerator = (*ExcelizeSalesXLSX)(nil)

// ExcelizeSalesXLSX implementa usecase.SalesXLSXGenerator con excelize.
type ExcelizeSalesXLSX struct{}

// NewExcelizeSalesXLSX construye el generador.
func NewExcelizeSalesXLSX() *ExcelizeSalesXLSX { return &ExcelizeSalesXLSX{} }

var salesHeader = []any{
	"ID", "Fecha", "Producto", "Cantidad",
	"Precio unitario (" + entity.BaseCurrencyCode + ")", "Moneda",
	"Total (" + entity.BaseCurrencyCode + ")", "Total en moneda",
}

// SalesXLSX una fila por venta y una fila final de totales en moneda base.
func (g *ExcelizeSalesXLSX) SalesXLSX(_ context.Context, r usecase.SalesReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(SalesSheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: borrar hoja por defecto: %w", err)
	}

	header := salesHeader
	if err := f.SetSheetRow(SalesSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetRowStyle(SalesSheet, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	var units int
	total := decimal.Zero
	for i, s := range r.Sales {
		created := s.CreatedAt
		if r.Location != nil {
			created = created.In(r.Location)
		}
		var inCurrency any
		if s.TotalInCurrency != nil {
			inCurrency = s.TotalInCurrency.InexactFloat64()
		}
		values := []any{
			s.ID,
			created.Format(dateTimeLayout),
			s.ProductName,
			s.Quantity,
			s.UnitPrice.InexactFloat64(),
			s.CurrencyCode,
			s.TotalBase.InexactFloat64(),
			inCurrency,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SalesSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
		units += s.Quantity
		total = total.Add(s.TotalBase)
	}

	totalsRow := len(r.Sales) + 2
	cell, err := excelize.CoordinatesToCellName(1, totalsRow)
	if err != nil {
		return nil, err
	}
	totals := []any{"TOTAL", nil, nil, units, nil, nil, total.InexactFloat64(), nil}
	if err := f.SetSheetRow(SalesSheet, cell, &totals); err != nil {
		return nil, fmt.Errorf("xlsx: totales: %w", err)
	}
	if err := f.SetRowStyle(SalesSheet, totalsRow, totalsRow, bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo totales: %w", err)
	}
	if err := f.SetColWidth(SalesSheet, "A", "H", 16); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
