package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jwalitptl/clinic-desk/internal/config"
	"github.com/jwalitptl/clinic-desk/internal/repository/sqldb"
	"github.com/jwalitptl/clinic-desk/pkg/logger"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			logger.Setup(logger.Config{Debug: cfg.Server.Debug})

			db, err := sqldb.NewDB(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := sqldb.EnsureSchema(ctx, db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			log.Info().Str("driver", cfg.Database.Driver).Msg("schema is up to date")
			return nil
		},
	}
}
