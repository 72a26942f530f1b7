package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_API_TOKEN", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "assets/data", cfg.DataDir)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.True(t, cfg.WatchData)
	assert.Equal(t, 10, cfg.ListPageSize)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10*time.Minute, cfg.JanitorInterval)
	assert.Equal(t, int32(10), cfg.DB.MaxConnections)

	assert.ErrorIs(t, cfg.RequireBot(), ErrMissingEnvironmentVariables)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(
		"data_dir: /srv/book\nlist_page_size: 5\ndatabase:\n  max_connections: 3\n",
	), 0o644))

	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/book")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DEFAULT_LANGUAGE", "fr")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/srv/book", cfg.DataDir)
	assert.Equal(t, 5, cfg.ListPageSize)
	assert.Equal(t, "fr", cfg.DefaultLanguage)
	assert.Equal(t, int32(3), cfg.DB.MaxConnections)
	assert.NoError(t, cfg.RequireBot())
}

func TestLoadRejectsBadPageSize(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LIST_PAGE_SIZE", "0")

	_, err := Load()
	assert.Error(t, err)
}
