package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cordial-dev/cordial/internal/config"
	"github.com/cordial-dev/cordial/internal/services"
)

func newBootstrapCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Drop, recreate and migrate the PostgreSQL database named by DB_NAME",
		Long: `Drop, recreate and migrate the PostgreSQL database named by DB_NAME.

Every row in that database is lost. Use it for development only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db := opts.cfg.Database
			db.WithOptions(
				config.WithEngine(config.EnginePostgres),
				config.WithBootstrap(config.BootstrapDevelopment),
			)

			profile, err := config.ProfileFromEnvironment()
			if err != nil {
				return err
			}

			dir, err := services.NewPostgresDirectory(cmd.Context(), db, profile)
			if err != nil {
				return err
			}
			defer dir.Close()

			color.Green("database %s is ready", profile.Database)
			return nil
		},
	}
}
