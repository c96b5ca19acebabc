package persistence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/kiosquito/internal/domain"
)

// storageErr envuelve un error del motor como ErrStorage con la operación y un stack.
// ErrNotInitialized pasa tal cual.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotInitialized) {
		return err
	}
	return pkgerrors.WithStack(fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err))
}

// isUniqueViolation verifica si un error es una violación de constraint único
// (PostgreSQL 23505 o SQLITE_CONSTRAINT_UNIQUE).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// dbTime normaliza las marcas de tiempo a UTC y segundos, de modo que en SQLite
// (texto) la comparación lexicográfica coincida con la cronológica.
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
