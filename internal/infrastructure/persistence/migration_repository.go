package persistence

import (
	"context"
	"time"

	"github.com/jhoicas/kiosquito/internal/domain/repository"
)

var _ repository.MigrationRepository = (*MigrationRepo)(nil)

// MigrationRepo registro de migraciones de datos en schema_migrations.
type MigrationRepo struct {
	q Querier
}

// NewMigrationRepository construye el repositorio de migraciones.
func NewMigrationRepository(q Querier) *MigrationRepo {
	return &MigrationRepo{q: q}
}

// IsApplied indica si la migración ya se registró.
func (r *MigrationRepo) IsApplied(ctx context.Context, id string) (bool, error) {
	var applied bool
	query := `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE id = ?)`
	if err := r.q.GetContext(ctx, &applied, r.q.Rebind(query), id); err != nil {
		return false, storageErr("check migration", err)
	}
	return applied, nil
}

// MarkApplied registra la migración como aplicada.
func (r *MigrationRepo) MarkApplied(ctx context.Context, id string, at time.Time) error {
	query := `INSERT INTO schema_migrations (id, applied_at) VALUES (?, ?)`
	if _, err := r.q.ExecContext(ctx, r.q.Rebind(query), id, dbTime(at)); err != nil {
		return storageErr("mark migration", err)
	}
	return nil
}

// List devuelve las migraciones aplicadas en orden de aplicación.
func (r *MigrationRepo) List(ctx context.Context) ([]repository.AppliedMigration, error) {
	var rows []struct {
		ID        string    `db:"id"`
		AppliedAt time.Time `db:"applied_at"`
	}
	query := `SELECT id, applied_at FROM schema_migrations ORDER BY applied_at, id`
	if err := r.q.SelectContext(ctx, &rows, query); err != nil {
		return nil, storageErr("list migrations", err)
	}
	out := make([]repository.AppliedMigration, 0, len(rows))
	for _, row := range rows {
		out = append(out, repository.AppliedMigration{ID: row.ID, AppliedAt: row.AppliedAt})
	}
	return out, nil
}
