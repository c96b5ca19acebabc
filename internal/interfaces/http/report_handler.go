package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kiosquito/internal/application/dto"
	"github.com/jhoicas/kiosquito/internal/application/usecase"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler descargas de reportes de ventas (protegido).
type ReportHandler struct {
	reports *usecase.ReportUseCase
	sales   *usecase.SalesUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *usecase.ReportUseCase, sales *usecase.SalesUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, sales: sales}
}

// SalesPDF GET /api/reports/sales.pdf?period=day|week|month
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	b, filename, err := h.reports.SalesPDF(c.UserContext(), c.Query("period", "day"))
	if err != nil {
		return err
	}
	return sendAttachment(c, pdfContentType, filename, b)
}

// SalesXLSX GET /api/reports/sales.xlsx?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) SalesXLSX(c *fiber.Ctx) error {
	var q dto.SalesQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	filter, err := h.sales.ParseSalesQuery(q)
	if err != nil {
		return err
	}
	b, filename, err := h.reports.SalesXLSX(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return sendAttachment(c, xlsxContentType, filename, b)
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, b []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(b)
}
