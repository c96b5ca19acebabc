// Package persistence es el núcleo de almacenamiento local: abre la base de datos,
// crea el esquema, carga los datos semilla y expone los repositorios.
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/kiosquito/internal/domain"
	"github.com/jhoicas/kiosquito/pkg/config"
	"github.com/jhoicas/kiosquito/pkg/logger"
)

func init() {
	// modernc.org/sqlite se registra como "sqlite", nombre que sqlx no conoce.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Querier es lo mínimo que necesitan los repositorios; lo cumplen *sqlx.DB y *sqlx.Tx.
type Querier interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Rebind(query string) string
	DriverName() string
}

// Options dependencias opcionales de la base de datos.
type Options struct {
	Seed       config.SeedConfig
	Logger     *logger.Logger
	Now        func() time.Time
	BcryptCost int // 0 = bcrypt.DefaultCost
}

// Database es el handle único de almacenamiento del proceso. Se construye una vez en main
// y se inyecta en repositorios y casos de uso; no hay singleton global.
type Database struct {
	db      *sqlx.DB
	dialect dialect
	opts    Options
	log     *logger.Logger

	initMu sync.Mutex
	ready  atomic.Bool
}

// Open abre la base de datos según el driver configurado. No crea el esquema: eso lo hace Init.
func Open(ctx context.Context, cfg config.DBConfig, opts Options) (*Database, error) {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}

	var (
		db  *sqlx.DB
		d   dialect
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite, "":
		db, err = openSQLite(cfg.Path)
		d = sqliteDialect
	case config.DriverPostgres:
		db, err = openPostgres(cfg.ConnectionString())
		d = postgresDialect
	default:
		return nil, fmt.Errorf("driver no soportado: %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return &Database{
		db:      db,
		dialect: d,
		opts:    opts,
		log:     opts.Logger.Component("persistence"),
	}, nil
}

// openSQLite abre el archivo local con WAL y una sola conexión: hay un único escritor.
func openSQLite(path string) (*sqlx.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("DB_PATH vacío")
	}
	dsn := "file:" + path +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

// openPostgres abre PostgreSQL vía pgx/stdlib registrando el codec NUMERIC -> shopspring/decimal.
func openPostgres(dsn string) (*sqlx.DB, error) {
	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	sqlDB := stdlib.OpenDB(*connConfig, stdlib.OptionAfterConnect(func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}))
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)
	return sqlx.NewDb(sqlDB, "pgx"), nil
}

// Init crea el esquema, carga los datos semilla y aplica las migraciones de datos pendientes.
// Es idempotente; hasta que termina con éxito todo repositorio devuelve ErrNotInitialized.
func (d *Database) Init(ctx context.Context) error {
	d.initMu.Lock()
	defer d.initMu.Unlock()
	if d.ready.Load() {
		return nil
	}

	if err := d.ensureSchema(ctx); err != nil {
		d.log.Error().Stack().Err(err).Msg("creación de esquema")
		return err
	}
	if err := d.seed(ctx); err != nil {
		d.log.Error().Stack().Err(err).Msg("carga de datos semilla")
		return err
	}
	if err := d.runMigrations(ctx); err != nil {
		d.log.Error().Stack().Err(err).Msg("migraciones de datos")
		return err
	}

	d.ready.Store(true)
	d.log.Info().Str("dialect", d.dialect.name).Msg("base de datos inicializada")
	return nil
}

// Ready devuelve ErrNotInitialized mientras Init no haya terminado.
func (d *Database) Ready() error {
	if !d.ready.Load() {
		return domain.ErrNotInitialized
	}
	return nil
}

// Querier devuelve un Querier que falla rápido con ErrNotInitialized antes de Init.
func (d *Database) Querier() Querier {
	return gatedQuerier{d: d}
}

// Dialect nombre del dialecto SQL en uso ("sqlite" o "postgres").
func (d *Database) Dialect() string {
	return d.dialect.name
}

// Close cierra el handle.
func (d *Database) Close() error {
	return d.db.Close()
}

// withTx ejecuta fn en una transacción sin pasar por la compuerta de inicialización (uso interno de Init).
func (d *Database) withTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr(op+": begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return storageErr(op+": commit", err)
	}
	return nil
}

type gatedQuerier struct {
	d *Database
}

func (g gatedQuerier) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	if err := g.d.Ready(); err != nil {
		return err
	}
	return g.d.db.GetContext(ctx, dest, query, args...)
}

func (g gatedQuerier) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	if err := g.d.Ready(); err != nil {
		return err
	}
	return g.d.db.SelectContext(ctx, dest, query, args...)
}

func (g gatedQuerier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if err := g.d.Ready(); err != nil {
		return nil, err
	}
	return g.d.db.ExecContext(ctx, query, args...)
}

func (g gatedQuerier) Rebind(query string) string {
	return g.d.db.Rebind(query)
}

func (g gatedQuerier) DriverName() string {
	return g.d.db.DriverName()
}
