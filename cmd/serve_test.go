package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bdpublic/updates-api/config"
	"github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestVersionCmd(t *testing.T) {
	buf := bytes.Buffer{}
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "updates-api dev (commit: none, built: unknown)\n", buf.String())
}

func TestNewServer(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "3999")
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Scraper.Sources = nil

	srv, cleanup, err := newServer(context.Background(), cfg, lgr.NoOp)
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, ":3999", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/all", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 8, body.Count)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/add", strings.NewReader(`{"title":"T","url":"http://x"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewServer_BadRedis(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Redis.Addr = "127.0.0.1:1"

	_, _, err = newServer(context.Background(), cfg, lgr.NoOp)
	assert.ErrorContains(t, err, "connect to redis")
}

type closingPool struct {
	gorm.ConnPool
	closed bool
}

func (p *closingPool) Close() error {
	p.closed = true
	return nil
}

func TestReleaseDB(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = ":memory:"
	db, err := config.OpenDB(cfg, lgr.NoOp)
	require.NoError(t, err)
	require.NoError(t, releaseDB(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())

	pool := &closingPool{}
	other := &gorm.DB{Config: &gorm.Config{ConnPool: pool}}
	_, err = other.DB()
	require.Error(t, err)
	require.NoError(t, releaseDB(other))
	assert.True(t, pool.closed)
}
