package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.BindAddress)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "prompt-techniques.db", cfg.Database.DSN)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.EqualValues(t, 10<<20, cfg.Upload.MaxImageSize)
	assert.EqualValues(t, 640, cfg.Upload.ThumbSize)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  bind_address: "127.0.0.1:9000"
  debug: true
database:
  driver: postgres
  dsn: "host=localhost user=app dbname=app"
upload:
  max_image_size: 1048576
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.BindAddress)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.EqualValues(t, 1048576, cfg.Upload.MaxImageSize)
}

func TestLoadMissingFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  driver: sqlite\n  dsn: file.db\n"), 0o600))
	t.Setenv("DB_DSN", "other.db")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other.db", cfg.Database.DSN)
	assert.Equal(t, "hunter2", cfg.Admin.Password)
}

func TestUnknownDriverRejected(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load("")
	assert.Error(t, err)
}

func TestPostgresRequiresDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "")
	_, err := Load("")
	assert.Error(t, err)
}
