package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kiosquito/internal/application/dto"
	"github.com/jhoicas/kiosquito/internal/application/usecase"
)

// CurrencyHandler maneja las peticiones HTTP de monedas (protegido).
type CurrencyHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCurrencyHandler construye el handler.
func NewCurrencyHandler(uc *usecase.CatalogUseCase) *CurrencyHandler {
	return &CurrencyHandler{uc: uc}
}

// List GET /api/currencies; con ?all=true incluye las inactivas.
func (h *CurrencyHandler) List(c *fiber.Ctx) error {
	var (
		out []dto.CurrencyResponse
		err error
	)
	if c.QueryBool("all", false) {
		out, err = h.uc.ListAllCurrencies(c.UserContext())
	} else {
		out, err = h.uc.ListCurrencies(c.UserContext())
	}
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create POST /api/currencies
func (h *CurrencyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCurrencyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.CreateCurrency(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// GetByID GET /api/currencies/:id
func (h *CurrencyHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetCurrency(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update PATCH /api/currencies/:id
func (h *CurrencyHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateCurrencyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateCurrency(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete DELETE /api/currencies/:id
func (h *CurrencyHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.DeleteCurrency(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
