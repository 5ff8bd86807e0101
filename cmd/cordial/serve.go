package main

import (
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/cordial-dev/cordial/api/v1"
	"github.com/cordial-dev/cordial/internal/handlers"
	"github.com/cordial-dev/cordial/internal/server"
	"github.com/cordial-dev/cordial/internal/services"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Bootstrap the database and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := opts.cfg
			log := zap.S().Named("cmd")
			log.Infow("starting cordial", "config", cfg.DebugMap())

			dir, err := services.NewDirectory(ctx, cfg.Database)
			if err != nil {
				log.Errorw("failed to build directory", "error", err)
				return err
			}
			defer dir.Close()

			metrics := server.NewMetrics()
			if err := metrics.RegisterPool(dir.Pool().DB()); err != nil {
				return err
			}

			h := handlers.New(dir.Guests(), dir.Pool(), allowOrigin(cfg.Server.AllowedOrigins))
			srv := server.NewServer(cfg, metrics, func(router gin.IRouter) {
				v1.RegisterHandlersWithOptions(router, h, v1.GinServerOptions{ErrorHandler: h.RespondError})
			})

			return srv.Start(ctx)
		},
	}
}

// allowOrigin picks the header value sent when the CORS middleware did not set one.
func allowOrigin(origins []string) string {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return "*"
	}
	return origins[0]
}
