package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/kiosquito/internal/domain/entity"
)

// legacyCleanupUser fila centinela con la que instalaciones antiguas marcaban la limpieza
// de productos de ejemplo. Si existe, la migración equivalente se da por aplicada.
const legacyCleanupUser = "__cleanup_done__"

// exampleProductNames productos de demostración que se sembraban en versiones anteriores.
var exampleProductNames = []string{
	"Coca Cola 355ml",
	"Agua Mineral 500ml",
	"Papas Fritas",
	"Chocolate",
	"Pan Tostado",
	"Café Instantáneo",
	"Galletas María",
	"Jugo de Naranja",
}

// dataMigration migración de datos de una sola ejecución, registrada por id en schema_migrations.
type dataMigration struct {
	id    string
	apply func(ctx context.Context, d *Database, tx *sqlx.Tx) error
}

var dataMigrations = []dataMigration{
	{id: "20240601_remove_example_products", apply: removeExampleProducts},
}

// seedCurrencies monedas iniciales; solo se insertan si su código no existe.
func (d *Database) seedCurrencies() []entity.Currency {
	base := entity.Currency{
		Code:         entity.BaseCurrencyCode,
		Name:         "Peso Cubano",
		ExchangeRate: decimal.NewFromInt(1),
		Active:       true,
	}
	if !d.opts.Seed.ExampleCurrencies {
		return []entity.Currency{base}
	}
	return []entity.Currency{
		base,
		{Code: "USD", Name: "Dólar Estadounidense", ExchangeRate: decimal.NewFromInt(120), Active: true},
		{Code: "MLC", Name: "Moneda Libremente Convertible", ExchangeRate: decimal.NewFromInt(125), Active: true},
	}
}

// seed inserta el usuario administrador y las monedas iniciales si faltan.
// Nunca sobrescribe filas existentes.
func (d *Database) seed(ctx context.Context) error {
	users := NewUserRepository(d.db)
	currencies := NewCurrencyRepository(d.db)

	if err := d.seedAdmin(ctx, users); err != nil {
		return err
	}
	for _, c := range d.seedCurrencies() {
		existing, err := currencies.GetByCode(ctx, c.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		c := c
		if _, err := currencies.Create(ctx, &c); err != nil {
			return err
		}
		d.log.Info().Str("code", c.Code).Msg("moneda sembrada")
	}
	return nil
}

func (d *Database) seedAdmin(ctx context.Context, users *UserRepo) error {
	username := d.opts.Seed.AdminUsername
	if username == "" {
		return nil
	}
	existing, err := users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(d.opts.Seed.AdminPassword), d.opts.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if _, err := users.Create(ctx, &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    d.opts.Now(),
	}); err != nil {
		return err
	}
	d.log.Info().Str("username", username).Msg("usuario administrador sembrado")
	return nil
}

// runMigrations aplica cada migración de datos pendiente en su propia transacción,
// junto con su registro en schema_migrations.
func (d *Database) runMigrations(ctx context.Context) error {
	for _, m := range dataMigrations {
		m := m
		err := d.withTx(ctx, "migration "+m.id, func(tx *sqlx.Tx) error {
			migrations := NewMigrationRepository(tx)
			applied, err := migrations.IsApplied(ctx, m.id)
			if err != nil {
				return err
			}
			if applied {
				return nil
			}
			if err := m.apply(ctx, d, tx); err != nil {
				return err
			}
			if err := migrations.MarkApplied(ctx, m.id, d.opts.Now()); err != nil {
				return err
			}
			d.log.Info().Str("migration", m.id).Msg("migración de datos aplicada")
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// removeExampleProducts borra los productos de demostración por nombre exacto.
// Con la fila centinela antigua presente la limpieza ya ocurrió: solo se retira la centinela.
func removeExampleProducts(ctx context.Context, d *Database, tx *sqlx.Tx) error {
	users := NewUserRepository(tx)
	legacy, err := users.DeleteByUsername(ctx, legacyCleanupUser)
	if err != nil {
		return err
	}
	if legacy > 0 {
		d.log.Info().Msg("centinela de limpieza antigua encontrada; productos intactos")
		return nil
	}
	n, err := NewProductRepository(tx).DeleteByNames(ctx, exampleProductNames)
	if err != nil {
		return err
	}
	d.log.Info().Int64("deleted", n).Msg("productos de ejemplo eliminados")
	return nil
}
