// migrate crea el esquema, siembra los datos iniciales y aplica las migraciones de datos
// pendientes sin levantar el servidor HTTP. Al terminar lista las migraciones registradas.
//
// Uso: go run ./cmd/migrate
// Lee la misma configuración que cmd/api (DB_DRIVER, DB_PATH, DATABASE_URL, SEED_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/kiosquito/internal/infrastructure/persistence"
	"github.com/jhoicas/kiosquito/pkg/config"
	"github.com/jhoicas/kiosquito/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := persistence.Open(ctx, cfg.DB, persistence.Options{
		Seed:   cfg.Seed,
		Logger: log.Component("persistence"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir base de datos: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Inicializar: %v\n", err)
		os.Exit(1)
	}

	applied, err := persistence.NewMigrationRepository(db.Querier()).List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar migraciones: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Base de datos lista (%s). Migraciones aplicadas: %d\n", db.Dialect(), len(applied))
	for _, m := range applied {
		fmt.Printf("  %s  %s\n", m.AppliedAt.Local().Format(time.DateTime), m.ID)
	}
}
