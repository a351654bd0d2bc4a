package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/app"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if servePort != "" {
			cfg.Server.Port = servePort
		}

		a, err := app.InitializeApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		return app.NewServer(a.Router, cfg.Server).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
