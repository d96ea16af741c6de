// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sqlite provides the embedded SQLite backend, accessed through GORM.
//
// # Architecture
//
// This package is part of the Infrastructure layer. It is the lightweight
// alternative to the PostgreSQL pool for local development and for
// repository tests, where an in-memory database (":memory:") is enough.
// The schema is derived from the GORM models in the schema package.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/taibuivan/melodia/internal/platform/database/schema"
)

const (
	// slowQueryThreshold is the latency above which GORM logs a query at WARN.
	slowQueryThreshold = 200 * time.Millisecond
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
)

// Open opens (or creates) the SQLite database at path.
//
// SQLite serializes writers, and an in-memory database only exists on the
// connection that created it, so the pool is pinned to a single connection.
func Open(path string, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.New(&gormWriter{logger: logger}, gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open %q: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to access pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite: failed to enable foreign keys: %w", err)
	}

	logger.Info("sqlite database opened", slog.String("path", path))
	return db, nil
}

// Migrate creates or updates the catalogue tables from the GORM models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(schema.Models()...); err != nil {
		return fmt.Errorf("sqlite: auto-migrate failed: %w", err)
	}
	return nil
}

// Ping verifies that the database is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormWriter adapts GORM's logger output to slog.
type gormWriter struct {
	logger *slog.Logger
}

// Printf implements gormlogger.Writer.
func (w *gormWriter) Printf(format string, args ...any) {
	w.logger.Warn("gorm", slog.String("message", fmt.Sprintf(format, args...)))
}
