package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/kiosquito/internal/application/auth"
	"github.com/jhoicas/kiosquito/internal/application/usecase"
	"github.com/jhoicas/kiosquito/internal/infrastructure/persistence"
	"github.com/jhoicas/kiosquito/internal/infrastructure/report"
	httpRouter "github.com/jhoicas/kiosquito/internal/interfaces/http"
	"github.com/jhoicas/kiosquito/pkg/config"
	"github.com/jhoicas/kiosquito/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	db, err := persistence.Open(ctx, cfg.DB, persistence.Options{
		Seed:   cfg.Seed,
		Logger: log.Component("persistence"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer db.Close()

	if err := db.Init(ctx); err != nil {
		log.Fatal().Stack().Err(err).Msg("inicializar base de datos")
	}

	q := db.Querier()
	productRepo := persistence.NewProductRepository(q)
	currencyRepo := persistence.NewCurrencyRepository(q)
	saleRepo := persistence.NewSaleRepository(q)
	userRepo := persistence.NewUserRepository(q)
	txRunner := persistence.NewTxRunner(db)

	loc := cfg.App.Location()
	catalogUC := usecase.NewCatalogUseCase(productRepo, currencyRepo, time.Now)
	salesUC := usecase.NewSalesUseCase(txRunner, saleRepo, loc, time.Now, log.Component("sales"))
	reportUC := usecase.NewReportUseCase(salesUC, report.NewMarotoSalesPDF(), report.NewExcelizeSalesXLSX(), cfg.App.Name)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := httpRouter.NewApp(cfg.App.Name, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		SalesUC:   salesUC,
		ReportUC:  reportUC,
		Ready:     db.Ready,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
