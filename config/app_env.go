package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/akeren/email-collector/internal/log"
	"github.com/joho/godotenv"
)

const AppEnvKey = "APP_ENV"

// devEnvironments may run gorm AutoMigrate at startup; everything else must
// go through the migrate command.
var devEnvironments = []string{"", "dev", "development", "local", "test", "testing"}

// InitializeEnvFile loads ENV_FILE (default .env) into the process
// environment without overriding variables that are already set.
func InitializeEnvFile(logger *log.Logger) {
	if os.Getenv("SKIP_DOTENV") == "true" {
		logger.Info("Skipping .env file load (SKIP_DOTENV=true)")
		return
	}

	file := GetValueFromEnvironmentVariable("ENV_FILE", ".env")

	err := godotenv.Load(file)
	switch {
	case err == nil:
		logger.Info("Environment loaded from file", "file", file)
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("No env file found", "file", file)
	default:
		logger.Warn("Failed to load env file", "file", file, "error", err)
	}
}

func GetValueFromEnvironmentVariable(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetAppEnv() string {
	return normalizeEnvName(os.Getenv(AppEnvKey))
}

func normalizeEnvName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func ValidateAutoMigrateAllowed(appEnv string) error {
	env := normalizeEnvName(appEnv)
	if slices.Contains(devEnvironments, env) {
		return nil
	}
	return fmt.Errorf("--auto-migrate is not allowed when %s=%q; run the migrate command instead", AppEnvKey, env)
}
