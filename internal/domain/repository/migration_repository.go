package repository

import (
	"context"
	"time"
)

// MigrationRepository registro de migraciones de datos aplicadas, consultado por id.
type MigrationRepository interface {
	IsApplied(ctx context.Context, id string) (bool, error)
	MarkApplied(ctx context.Context, id string, at time.Time) error
	List(ctx context.Context) ([]AppliedMigration, error)
}

// AppliedMigration fila del registro de migraciones.
type AppliedMigration struct {
	ID        string
	AppliedAt time.Time
}
