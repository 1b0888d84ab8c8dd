package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "Railway.app", cfg.App.Server)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 10*time.Second, cfg.Scraper.Timeout)
	assert.Equal(t, 10, cfg.Scraper.MaxItems)
	require.Len(t, cfg.Scraper.Sources, 5)
	assert.Equal(t, "bpsc", cfg.Scraper.Sources[0].Key)
	assert.Equal(t, "job", cfg.Scraper.Sources[0].Category)
}

func TestLoad_PortFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Addr())
}

func TestLoad_PrefixedEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UPDATES_DATABASE_DRIVER", "postgres")
	t.Setenv("UPDATES_REDIS_ADDR", "localhost:6379")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_FileAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	file := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
app:
  port: "4000"
  server: test-box
scraper:
  timeout: 2s
  sources:
    - key: local
      name: Local
      url: http://localhost/feed
      category: hot
      kind: feed
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("UPDATES_APP_DEBUG=true\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("UPDATES_APP_DEBUG") })

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.Addr())
	assert.Equal(t, "test-box", cfg.App.Server)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 2*time.Second, cfg.Scraper.Timeout)
	require.Len(t, cfg.Scraper.Sources, 1)
	assert.Equal(t, "feed", cfg.Scraper.Sources[0].Kind)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestOpenDB_MemorySQLite(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)

	db, err := OpenDB(cfg, lgr.NoOp)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestOpenDB_UnknownDriver(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Driver = "oracle"
	_, err := OpenDB(cfg, lgr.NoOp)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestOpenRedis_Disabled(t *testing.T) {
	client, err := OpenRedis(t.Context(), &Config{})
	assert.NoError(t, err)
	assert.Nil(t, client)
}
