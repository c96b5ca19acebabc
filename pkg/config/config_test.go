package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kiosquito/pkg/config"
)

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "kiosquito.db", cfg.DB.Path)
	assert.Equal(t, "admin", cfg.Seed.AdminUsername)
	assert.Equal(t, "admin123", cfg.Seed.AdminPassword)
	assert.True(t, cfg.Seed.ExampleCurrencies)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_PATH", "/tmp/pos.db")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SEED_EXAMPLE_CURRENCIES", "false")
	t.Setenv("APP_TIMEZONE", "America/Havana")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/pos.db", cfg.DB.Path)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Seed.ExampleCurrencies)

	loc, err := time.LoadLocation("America/Havana")
	require.NoError(t, err)
	assert.Equal(t, loc.String(), cfg.App.Location().String())
}

func TestLoad_DriverInvalido(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "mysql")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "pos", Password: "p@ss", DBName: "kiosquito", SSLMode: "disable"}
	assert.Equal(t, "postgres://pos:p%40ss@db:5432/kiosquito?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
