package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/kiosquito/internal/application/auth"
	"github.com/jhoicas/kiosquito/internal/application/usecase"
	"github.com/jhoicas/kiosquito/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *usecase.CatalogUseCase
	SalesUC   *usecase.SalesUseCase
	ReportUC  *usecase.ReportUseCase
	Ready     func() error
	JWTSecret string
}

// NewApp crea la aplicación Fiber con el manejador de errores de dominio y recover.
func NewApp(name string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", HealthHandler(deps.Ready))

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Group("/auth").Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	currencies := protected.Group("/currencies")
	currencyHandler := NewCurrencyHandler(deps.CatalogUC)
	currencies.Get("/", currencyHandler.List)
	currencies.Post("/", currencyHandler.Create)
	currencies.Get("/:id", currencyHandler.GetByID)
	currencies.Patch("/:id", currencyHandler.Update)
	currencies.Delete("/:id", currencyHandler.Delete)

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/summary", saleHandler.Summary)

	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.SalesUC)
	reports.Get("/sales.pdf", reportHandler.SalesPDF)
	reports.Get("/sales.xlsx", reportHandler.SalesXLSX)
}
