package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kiosquito/internal/application/dto"
	"github.com/jhoicas/kiosquito/internal/application/usecase"
)

// SaleHandler registro y consulta de ventas (protegido).
type SaleHandler struct {
	uc *usecase.SalesUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SalesUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.RecordSale(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// List GET /api/sales?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var q dto.SalesQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	filter, err := h.uc.ParseSalesQuery(q)
	if err != nil {
		return err
	}
	out, err := h.uc.ListSales(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Summary GET /api/sales/summary?period=day|week|month (por defecto day)
func (h *SaleHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summarize(c.UserContext(), c.Query("period", "day"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
