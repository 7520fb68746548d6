package main

import (
	"fmt"
	"log/slog"

	"github.com/additivelabs/additive-atlas/internal/analysis"
	"github.com/additivelabs/additive-atlas/internal/cli"
	"github.com/additivelabs/additive-atlas/internal/config"
	"github.com/additivelabs/additive-atlas/internal/fetch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Build and display the US/EU regulation comparison report",
		Long: `Fetch the three source documents, run the comparison pipeline, and
render the aggregates as terminal tables.

Examples:
  # Read documents from the default local data directory
  atlas report

  # Read documents from a remote base URL
  atlas report --base https://example.org/data/processed`,
		RunE: runReport,
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	base := config.ExpandPath(viper.GetString("data.base"))

	slog.Info("🧪 Building regulation report...", "base", base)

	report, err := analysis.Load(cmd.Context(), fetch.NewClient(base))
	if err != nil {
		return err
	}

	fmt.Print(cli.RenderReport(report))
	return nil
}
