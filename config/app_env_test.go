package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akeren/email-collector/internal/log"
	"github.com/stretchr/testify/assert"
)

func TestValidateAutoMigrateAllowed(t *testing.T) {
	tests := []struct {
		env     string
		allowed bool
	}{
		{env: "", allowed: true},
		{env: "dev", allowed: true},
		{env: "development", allowed: true},
		{env: "  Local  ", allowed: true},
		{env: "TEST", allowed: true},
		{env: "testing", allowed: true},
		{env: "prod", allowed: false},
		{env: " Production ", allowed: false},
		{env: "staging", allowed: false},
		{env: "qa", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			err := ValidateAutoMigrateAllowed(tt.env)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, "--auto-migrate is not allowed")
			}
		})
	}
}

func TestInitializeEnvFile_DoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	assert.NoError(t, os.WriteFile(path, []byte("COLLECTOR_FROM_FILE=file\nCOLLECTOR_PRESET=file\n"), 0o600))

	t.Setenv("ENV_FILE", path)
	t.Setenv("COLLECTOR_PRESET", "process")
	t.Setenv("COLLECTOR_FROM_FILE", "")
	os.Unsetenv("COLLECTOR_FROM_FILE")
	t.Cleanup(func() { os.Unsetenv("COLLECTOR_FROM_FILE") })

	InitializeEnvFile(log.NewLoggerWithJSONOutput())

	assert.Equal(t, "file", os.Getenv("COLLECTOR_FROM_FILE"))
	assert.Equal(t, "process", os.Getenv("COLLECTOR_PRESET"))
}
