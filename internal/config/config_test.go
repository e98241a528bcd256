package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
env: "prod"
storage_path: "storage/transcript.db"
output: "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "storage/transcript.db", cfg.StoragePath)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoadDefaultsFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("STORAGE_PATH", "")
	t.Setenv("OUTPUT", "")
	os.Unsetenv("ENV")
	os.Unsetenv("STORAGE_PATH")
	os.Unsetenv("OUTPUT")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":memory:", cfg.StoragePath)
	assert.Equal(t, "text", cfg.Output)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
output: "text"
`)
	t.Setenv("OUTPUT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown env", `env: "qa"`},
		{"unknown output", `output: "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "does not exist")
}
