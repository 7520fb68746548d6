package main

import (
	"log/slog"

	"github.com/additivelabs/additive-atlas/internal/config"
	"github.com/additivelabs/additive-atlas/internal/fetch"
	"github.com/additivelabs/additive-atlas/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the report as JSON for the chart frontend",
		Long: `Start an HTTP server exposing the aggregates at /api/report, with
/healthz and Prometheus /metrics. The pipeline re-runs on every report
request, so edits to the source documents show up on the next page load.

Examples:
  atlas serve --addr :8080
  atlas serve --addr :8080 --static ./public`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("static", "", "directory of static frontend assets to serve at /")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.static", cmd.Flags().Lookup("static"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	base := config.ExpandPath(viper.GetString("data.base"))
	addr := viper.GetString("server.addr")
	staticDir := config.ExpandPath(viper.GetString("server.static"))

	slog.Info("🧪 Starting report server...", "addr", addr, "base", base)

	srv := server.New(addr, fetch.NewClient(base), staticDir)
	return srv.Run(cmd.Context())
}
