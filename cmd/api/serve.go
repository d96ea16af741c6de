// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taibuivan/melodia/internal/api"
	"github.com/taibuivan/melodia/internal/core/artist"
	"github.com/taibuivan/melodia/internal/platform/constants"
	"github.com/taibuivan/melodia/internal/platform/middleware"
	redisstore "github.com/taibuivan/melodia/internal/platform/redis"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

// serve runs the startup sequence:
//
//  1. Initialize structured logger and load configuration.
//  2. Connect to the database (pgxpool or GORM/SQLite).
//  3. Connect to Redis, when a cache is configured.
//  4. Run database migrations (idempotent).
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	// ── 1. Logger & Configuration ─────────────────────────────────────────
	log, cfg := bootstrap()

	// Root context for startup. Use a deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(parent, constants.StartupTimeout)
	defer startupCancel()

	// ── 2. Database ───────────────────────────────────────────────────────
	store, err := openStore(startupCtx, cfg, log)
	must(log, err, "connect to database")
	defer store.close()

	health := api.HealthDependencies{
		DatabaseName:  store.driver,
		CheckDatabase: store.ping,
	}

	// ── 3. Redis ──────────────────────────────────────────────────────────
	artists := store.artists
	if cfg.CacheEnabled() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		cache := redisstore.NewCache(rdb, constants.RedisPrefixCatalog)
		artists = artist.NewCachedRepository(artists, cache, cfg.CacheTTL, log)
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 4. Migrations ─────────────────────────────────────────────────────
	if cfg.AutoMigrate {
		must(log, store.migrate(), "run migrations")
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(health, log)

	artistService := artist.NewService(artists, store.albums, store.tracks, log)
	artistHandler := artist.NewHandler(artistService)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(parent)
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, middleware.NewMetrics(), api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Artist:    artistHandler,
	})

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
		return err
	}

	// Give in-flight requests enough time to complete.
	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		return err
	}

	log.Info("server stopped cleanly")
	return nil
}
