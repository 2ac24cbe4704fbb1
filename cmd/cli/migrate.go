package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/akeren/email-collector/config"
	"github.com/akeren/email-collector/internal/log"
	"github.com/akeren/email-collector/pkg/migrations"
	"github.com/akeren/email-collector/pkg/utils"
)

// runMigrate applies pending migrations, or prints the schema version when
// called as "migrate status". MIGRATIONS_DIR replaces the embedded files.
func runMigrate(logger *log.Logger, args []string, out io.Writer) error {
	dbCfg := &config.DBConfig{}
	db, err := config.NewDatabase(logger, dbCfg)
	if err != nil {
		return fmt.Errorf("connect to database for migration: %w", err)
	}
	defer config.CloseDatabase(db, logger)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get SQL DB instance for migration: %w", err)
	}

	cfg := migrations.Config{
		Driver: dbCfg.Driver,
		Dir:    utils.GetEnvTrimmedOrDefault("MIGRATIONS_DIR", ""),
		Logger: logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if len(args) > 0 && args[0] == "status" {
		version, dirty, err := migrations.Status(ctx, sqlDB, cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "driver=%s version=%d dirty=%t\n", dbCfg.Driver, version, dirty)
		return err
	}

	if err := migrations.Up(ctx, sqlDB, cfg); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	logger.Info("Database migrations completed", "driver", dbCfg.Driver)
	return nil
}
