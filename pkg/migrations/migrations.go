// Package migrations applies the versioned SQL schema with golang-migrate.
package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	sqlfiles "github.com/akeren/email-collector/migrations"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type migrator interface {
	Up() error
	Version() (version uint, dirty bool, err error)
	Close() (sourceErr error, databaseErr error)
}

var driverFactory = func(db *sql.DB, cfg Config) (database.Driver, error) {
	switch cfg.Driver {
	case DriverPostgres:
		return postgres.WithInstance(db, &postgres.Config{MigrationsTable: cfg.MigrationsTable})
	case DriverSQLite:
		return sqlite3.WithInstance(db, &sqlite3.Config{MigrationsTable: cfg.MigrationsTable})
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

var migratorFactory = func(src source.Driver, driverName string, driver database.Driver) (migrator, error) {
	return migrate.NewWithInstance("iofs", src, driverName, driver)
}

type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type Config struct {
	// Driver is DriverPostgres or DriverSQLite (default).
	Driver string
	// Dir overrides the embedded SQL files. "<Dir>/<Driver>" is used when
	// that subdirectory exists, Dir itself otherwise.
	Dir             string
	MigrationsTable string
	Logger          Logger
}

func (c Config) normalized() Config {
	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	if c.Driver == "" {
		c.Driver = DriverSQLite
	}
	if strings.TrimSpace(c.MigrationsTable) == "" {
		c.MigrationsTable = "schema_migrations"
	}
	c.Dir = strings.TrimSpace(c.Dir)
	return c
}

func (c Config) info(msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.Info(msg, args...)
	}
}

func (c Config) warn(msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.Warn(msg, args...)
	}
}

// Up applies every pending migration. migrate has no context support, so a
// cancelled ctx closes the migrator and returns ctx.Err().
func Up(ctx context.Context, db *sql.DB, cfg Config) error {
	cfg = cfg.normalized()

	m, closeMigrator, err := open(ctx, db, cfg)
	if err != nil {
		return err
	}
	defer closeMigrator()

	cfg.info("Running SQL migrations", "driver", cfg.Driver, "dir", sourceLabel(cfg), "table", cfg.MigrationsTable)

	done := make(chan error, 1)
	go func() { done <- m.Up() }()

	select {
	case <-ctx.Done():
		closeMigrator()
		return ctx.Err()
	case err := <-done:
		if errors.Is(err, migrate.ErrNoChange) {
			cfg.info("No migrations to apply")
			return nil
		}
		if err != nil {
			return fmt.Errorf("migrations: up: %w", err)
		}
	}

	cfg.info("Migrations applied")
	return nil
}

// Status reports the applied schema version. A database with no applied
// migrations reports version 0.
func Status(ctx context.Context, db *sql.DB, cfg Config) (uint, bool, error) {
	cfg = cfg.normalized()

	m, closeMigrator, err := open(ctx, db, cfg)
	if err != nil {
		return 0, false, err
	}
	defer closeMigrator()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migrations: version: %w", err)
	}
	return version, dirty, nil
}

func open(ctx context.Context, db *sql.DB, cfg Config) (migrator, func(), error) {
	if db == nil {
		return nil, nil, errors.New("migrations: db is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	src, err := sourceFor(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("migrations: source: %w", err)
	}

	driver, err := driverFactory(db, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("migrations: %s driver: %w", cfg.Driver, err)
	}

	m, err := migratorFactory(src, cfg.Driver, driver)
	if err != nil {
		return nil, nil, fmt.Errorf("migrations: init: %w", err)
	}

	var once sync.Once
	closeMigrator := func() {
		once.Do(func() {
			srcErr, dbErr := m.Close()
			if srcErr != nil {
				cfg.warn("Migrations source close error", "error", srcErr)
			}
			if dbErr != nil {
				cfg.warn("Migrations db close error", "error", dbErr)
			}
		})
	}
	return m, closeMigrator, nil
}

func sourceFor(cfg Config) (source.Driver, error) {
	var fsys fs.FS = sqlfiles.FS
	if cfg.Dir != "" {
		fsys = os.DirFS(cfg.Dir)
	}

	dir := "."
	if info, err := fs.Stat(fsys, cfg.Driver); err == nil && info.IsDir() {
		dir = cfg.Driver
	}
	return iofs.New(fsys, dir)
}

func sourceLabel(cfg Config) string {
	if cfg.Dir == "" {
		return "embedded"
	}
	return cfg.Dir
}
