package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cordial-dev/cordial/internal/config"
	"github.com/cordial-dev/cordial/internal/services"
	"github.com/cordial-dev/cordial/pkg/improv"
)

func newSeedCommand(opts *rootOptions) *cobra.Command {
	var (
		count   int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an existing directory with made-up guests",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := opts.cfg.Database
			db.WithOptions(config.WithBootstrap(config.BootstrapExisting))

			dir, err := services.NewDirectory(cmd.Context(), db)
			if err != nil {
				return err
			}
			defer dir.Close()

			created, err := services.NewSeeder(dir.Guests(), improv.New(true), workers).Seed(cmd.Context(), count)
			for _, g := range created {
				color.Cyan("%s  %s", g.ID, g.Name)
			}
			if err != nil {
				color.Red("created %d guests, seeding failed", len(created))
				return err
			}
			color.Green("created %d guests", len(created))
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Number of guests to create")
	cmd.Flags().IntVar(&workers, "workers", 4, "Number of concurrent inserts")
	return cmd
}
