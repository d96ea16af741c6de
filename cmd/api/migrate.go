// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/melodia/internal/platform/constants"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, cfg := bootstrap()

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.StartupTimeout)
			defer cancel()

			store, err := openStore(ctx, cfg, log)
			must(log, err, "connect to database")
			defer store.close()

			must(log, store.migrate(), "run migrations")
			log.Info("migrations_applied", slog.String("driver", store.driver))
			return nil
		},
	}
}
