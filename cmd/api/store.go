// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"log/slog"

	"github.com/taibuivan/melodia/internal/core/album"
	"github.com/taibuivan/melodia/internal/core/artist"
	"github.com/taibuivan/melodia/internal/core/track"
	"github.com/taibuivan/melodia/internal/platform/config"
	"github.com/taibuivan/melodia/internal/platform/constants"
	"github.com/taibuivan/melodia/internal/platform/migration"
	pgstore "github.com/taibuivan/melodia/internal/platform/postgres"
	"github.com/taibuivan/melodia/internal/platform/sqlite"
)

// catalogStore bundles the repositories of one database backend with its
// lifecycle hooks.
type catalogStore struct {
	driver  string
	artists artist.Repository
	albums  album.Repository
	tracks  track.Repository
	ping    func(ctx context.Context) error
	migrate func() error
	close   func()
}

// openStore connects to the database selected by DATABASE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*catalogStore, error) {
	if cfg.DatabaseDriver == constants.DriverSQLite {
		db, err := sqlite.Open(cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}

		return &catalogStore{
			driver:  constants.DriverSQLite,
			artists: artist.NewGormRepository(db),
			albums:  album.NewGormRepository(db),
			tracks:  track.NewGormRepository(db),
			ping:    func(ctx context.Context) error { return sqlite.Ping(ctx, db) },
			migrate: func() error { return sqlite.Migrate(db) },
			close: func() {
				log.Info("closing sqlite database")
				if err := sqlite.Close(db); err != nil {
					log.Error("sqlite close error", slog.Any("error", err))
				}
			},
		}, nil
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}

	return &catalogStore{
		driver:  constants.DriverPostgres,
		artists: artist.NewPostgresRepository(pool),
		albums:  album.NewPostgresRepository(pool),
		tracks:  track.NewPostgresRepository(pool),
		ping:    func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		migrate: func() error { return migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log) },
		close: func() {
			log.Info("closing postgres pool")
			pool.Close()
		},
	}, nil
}
