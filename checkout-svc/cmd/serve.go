package cmd

import (
	"context"

	httpapi "overcooked-checkout/checkout-svc/internal/api/http"
	"overcooked-checkout/checkout-svc/internal/service"
	"overcooked-checkout/config"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the checkout HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := config.NewLogger(cfg.LogLevel, config.ServiceCheckout)

		deps, open, err := buildDependencies(cfg, log)
		if err != nil {
			return err
		}
		defer open.Close()

		registry := service.NewSessionRegistry(deps, cfg.SessionTTL)
		sweepCtx, stopSweep := context.WithCancel(context.Background())
		defer stopSweep()
		go registry.RunSweeper(sweepCtx, cfg.SessionSweepInterval)

		handler := httpapi.NewHandler(registry, log)
		return httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler), log)
	},
}

func init() {
	serveCmd.Flags().String("http_addr", "", "listen address")
	serveCmd.Flags().Duration("session_ttl", 0, "close checkout sessions idle this long")
	serveCmd.Flags().Bool("hours_strict_window", false, "require the current time to fall inside today's window")
	v.BindPFlags(serveCmd.Flags())
}
