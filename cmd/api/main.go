// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Melodia catalogue HTTP API.
//
// # Commands
//
//	api serve     start the HTTP server (default)
//	api migrate   apply pending schema migrations and exit
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/melodia/internal/platform/config"
	"github.com/taibuivan/melodia/internal/platform/constants"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:           "api",
		Short:         "Melodia catalogue API",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve, newMigrateCommand())
	return root
}

// bootstrap initializes the structured logger and loads configuration.
//
// The logger is created first so that configuration errors are structured JSON.
func bootstrap() (*slog.Logger, *config.Config) {
	log := newLogger(slog.LevelInfo)
	log.Info("[Melodia] service_initializing")

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("database_driver", cfg.DatabaseDriver),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
	)
	return log, cfg
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
