package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/akeren/email-collector/internal/log"
	"github.com/caarlos0/env/v11"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultSQLitePath = "email_collector.db"
)

type DBConfig struct {
	// Driver is DriverSQLite or DriverPostgres; empty reads DB_DRIVER (default sqlite).
	Driver          string
	SQLitePath      string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

// PostgresConfig is read from the environment when DB_DRIVER selects
// Postgres. URL wins over the discrete fields.
type PostgresConfig struct {
	URL      string `env:"APP_DATABASE_URL"`
	Host     string `env:"POSTGRES_HOST"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB_NAME"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"require"`
}

// DatabaseDriverFromEnv returns the normalised DB_DRIVER value.
func DatabaseDriverFromEnv() string {
	driver := strings.ToLower(unquote(GetValueFromEnvironmentVariable("DB_DRIVER", DriverSQLite)))
	switch driver {
	case "postgresql", "pg":
		return DriverPostgres
	case "sqlite3", "":
		return DriverSQLite
	default:
		return driver
	}
}

func NewDatabase(logger *log.Logger, cfg *DBConfig) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &DBConfig{}
	}
	applyDBDefaults(cfg)

	dialector, err := dialectorFor(logger, cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: newGormLogger(logger, cfg.SlowThreshold)})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		logger.Error("Database ping failed", "error", err)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	logger.Info("Database connection established", "driver", cfg.Driver)
	return gdb, nil
}

func dialectorFor(logger *log.Logger, cfg *DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite:
		logger.Info("Using embedded SQLite database", "path", cfg.SQLitePath)
		return sqlite.Open(sqliteDSN(cfg.SQLitePath)), nil
	case DriverPostgres:
		var pg PostgresConfig
		if err := env.Parse(&pg); err != nil {
			return nil, fmt.Errorf("parse postgres env: %w", err)
		}
		dsn, err := pg.DSN()
		if err != nil {
			return nil, err
		}
		logger.Info("Connecting to Postgres", "host", pg.Host, "port", pg.Port, "dbname", pg.DBName, "sslmode", pg.SSLMode)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (expected %q or %q)", cfg.Driver, DriverSQLite, DriverPostgres)
	}
}

// DSN builds a keyword/value connection string. Surrounding quotes left by
// .env files are stripped from every field.
func (pc PostgresConfig) DSN() (string, error) {
	if url := unquote(pc.URL); url != "" {
		return url, nil
	}

	host, user, dbName := unquote(pc.Host), unquote(pc.User), unquote(pc.DBName)

	var missing []string
	if host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if user == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if dbName == "" {
		missing = append(missing, "POSTGRES_DB_NAME")
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("missing required database env vars: %s", strings.Join(missing, ", "))
	}
	if pc.Port <= 0 {
		return "", errors.New("POSTGRES_PORT must be positive")
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, pc.Port, user, unquote(pc.Password), dbName, unquote(pc.SSLMode)), nil
}

func applyDBDefaults(cfg *DBConfig) {
	if cfg.Driver == "" {
		cfg.Driver = DatabaseDriverFromEnv()
	}
	if cfg.ConnMaxLifetime == 0 {
		cfg.ConnMaxLifetime = time.Minute
	}
	if cfg.SlowThreshold == 0 {
		cfg.SlowThreshold = 200 * time.Millisecond
	}

	if cfg.Driver == DriverSQLite {
		if cfg.SQLitePath == "" {
			cfg.SQLitePath = unquote(GetValueFromEnvironmentVariable("SQLITE_PATH", DefaultSQLitePath))
		}
		// SQLite serialises writers; one connection avoids "database is locked".
		cfg.MaxOpenConns = 1
		cfg.MaxIdleConns = 1
		return
	}

	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 10
	}
	if cfg.MaxOpenConns == 0 {
		cfg.MaxOpenConns = 100
	}
}

// newGormLogger routes gorm's warnings and slow queries into the app logger.
func newGormLogger(logger *log.Logger, slow time.Duration) gormlogger.Interface {
	return gormlogger.New(
		slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             slow,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

func sqliteDSN(path string) string {
	if path == "" {
		path = DefaultSQLitePath
	}
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_foreign_keys=on&_busy_timeout=5000"
}

func unquote(v string) string {
	s := strings.TrimSpace(v)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return s
}

func AutoMigrate(logger *log.Logger, db *gorm.DB, models ...any) error {
	if db == nil {
		return errors.New("cannot migrate: db is nil")
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Database migration failed", "error", err)
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	logger.Info("Database schema migrated")
	return nil
}

func CloseDatabase(db *gorm.DB, logger *log.Logger) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get SQL DB instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
		return
	}
	logger.Info("Database closed")
}
