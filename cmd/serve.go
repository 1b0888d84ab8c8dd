package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bdpublic/updates-api/config"
	"github.com/bdpublic/updates-api/metrics"
	"github.com/bdpublic/updates-api/router"
	"github.com/bdpublic/updates-api/scraper"
	"github.com/bdpublic/updates-api/store"
	"github.com/bdpublic/updates-api/utils"
	"github.com/bdpublic/updates-api/views"
	"github.com/gin-gonic/gin"
	"github.com/go-pkgz/lgr"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	l := utils.NewLogger(cfg.App.Debug, os.Stdout)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, cleanup, err := newServer(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer cleanup()

	errCh := make(chan error, 1)
	go func() {
		l.Logf("INFO server listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	l.Logf("INFO shutdown server ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	l.Logf("INFO server exiting")
	return nil
}

// newServer opens storage, initializes the update store and builds the HTTP
// server. cleanup releases the database and redis connections.
func newServer(ctx context.Context, cfg *config.Config, l lgr.L) (*http.Server, func(), error) {
	db, err := config.OpenDB(cfg, l)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := releaseDB(db); err != nil {
			l.Logf("WARN close database, %v", err)
		}
	}

	updates := store.NewUpdateStore(db)
	if err := updates.Init(ctx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("init store: %w", err)
	}
	l.Logf("INFO database initialized (%s)", cfg.Database.Driver)

	rdb, err := config.OpenRedis(ctx, cfg)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	cleanup := func() {
		if rdb != nil {
			if err := rdb.Close(); err != nil {
				l.Logf("WARN close redis, %v", err)
			}
		}
		closeDB()
	}
	if rdb == nil {
		l.Logf("INFO redis not configured, view counting disabled")
	}

	gin.SetMode(gin.ReleaseMode)
	if cfg.App.Debug {
		gin.SetMode(gin.DebugMode)
	}

	m := metrics.New()
	r := router.InitRouter(router.Deps{
		Store: updates,
		Views: views.New(rdb),
		Scraper: scraper.New(updates, cfg.Scraper.Sources, scraper.Options{
			Timeout:  cfg.Scraper.Timeout,
			MaxItems: cfg.Scraper.MaxItems,
			Logger:   l,
		}),
		Metrics: m,
		Logger:  l,
		Server:  cfg.App.Server,
		Author:  cfg.App.Author,
	})

	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}, cleanup, nil
}

// releaseDB closes the connection pool behind db, whatever its concrete type.
func releaseDB(db *gorm.DB) error {
	if sqlDB, err := db.DB(); err == nil {
		return sqlDB.Close()
	}
	if closer, ok := db.ConnPool.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
