package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kiosquito/internal/application/dto"
)

// HealthHandler GET /health: 200 con la base lista, 503 mientras no se haya inicializado.
func HealthHandler(ready func() error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ready != nil {
			if err := ready(); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Database: err.Error()})
			}
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Database: "ready"})
	}
}
