package usecase_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/kiosquito/internal/application/dto"
	"github.com/jhoicas/kiosquito/internal/application/usecase"
	"github.com/jhoicas/kiosquito/internal/infrastructure/persistence"
	"github.com/jhoicas/kiosquito/pkg/config"
)

// havana zona fija (UTC-4) para que las ventanas de calendario no dependan del host.
var havana = time.FixedZone("CDT", -4*60*60)

type testEnv struct {
	db      *persistence.Database
	catalog *usecase.CatalogUseCase
	sales   *usecase.SalesUseCase
	now     time.Time
}

func (e *testEnv) clock() time.Time { return e.now }

// newTestEnv núcleo completo sobre un SQLite temporal, con reloj controlable.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{now: time.Date(2026, 3, 10, 14, 0, 0, 0, havana)}
	db, err := persistence.Open(context.Background(),
		config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "kiosquito.db")},
		persistence.Options{
			Seed:       config.SeedConfig{AdminUsername: "admin", AdminPassword: "admin123", ExampleCurrencies: true},
			Now:        env.clock,
			BcryptCost: bcrypt.MinCost,
		})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Init(context.Background()))

	q := db.Querier()
	env.db = db
	env.catalog = usecase.NewCatalogUseCase(
		persistence.NewProductRepository(q), persistence.NewCurrencyRepository(q), env.clock)
	env.sales = usecase.NewSalesUseCase(
		persistence.NewTxRunner(db), persistence.NewSaleRepository(q), havana, env.clock, nil)
	return env
}

func (e *testEnv) createProduct(t *testing.T, name, price string, stock int) int64 {
	t.Helper()
	id, err := e.catalog.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name: name, Price: decimal.RequireFromString(price), Stock: stock,
	})
	require.NoError(t, err)
	return id
}

func (e *testEnv) currencyID(t *testing.T, code string) int64 {
	t.Helper()
	all, err := e.catalog.ListAllCurrencies(context.Background())
	require.NoError(t, err)
	for _, c := range all {
		if c.Code == code {
			return c.ID
		}
	}
	t.Fatalf("moneda %s no encontrada", code)
	return 0
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }
