package persistence

import (
	"context"
	"fmt"
)

// schemaStatements DDL idempotente. Las ventas no declaran FOREIGN KEY: un producto o una
// moneda se pueden borrar dejando sus ventas huérfanas, que se leen con placeholders.
func (d dialect) schemaStatements() []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id %s,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at %s NOT NULL
		)`, d.idColumn, d.timestampType),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS products (
			id %s,
			name TEXT NOT NULL,
			price %s NOT NULL,
			stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			created_at %s NOT NULL
		)`, d.idColumn, d.moneyType, d.timestampType),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS currencies (
			id %s,
			code TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			exchange_rate %s NOT NULL DEFAULT '1',
			active BOOLEAN NOT NULL DEFAULT TRUE
		)`, d.idColumn, d.moneyType),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS sales (
			id %s,
			product_id %s NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			unit_price %s NOT NULL,
			currency_id %s NOT NULL,
			total_base %s NOT NULL,
			created_at %s NOT NULL
		)`, d.idColumn, d.refType, d.moneyType, d.refType, d.moneyType, d.timestampType),
		`CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales (created_at)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS schema_migrations (
			id TEXT PRIMARY KEY,
			applied_at %s NOT NULL
		)`, d.timestampType),
	}
}

// ensureSchema crea las tablas que falten. Nunca altera ni borra tablas existentes.
func (d *Database) ensureSchema(ctx context.Context) error {
	for _, stmt := range d.dialect.schemaStatements() {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return storageErr("create schema", err)
		}
	}
	return nil
}
