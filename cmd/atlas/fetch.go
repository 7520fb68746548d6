package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/additivelabs/additive-atlas/internal/config"
	"github.com/additivelabs/additive-atlas/internal/fetch"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the source documents into a local data directory",
		Long: `Download the three source documents from the configured base URL so
report and serve can run against a local copy.

Examples:
  atlas fetch --base https://example.org/data/processed --out data/processed`,
		RunE: runFetch,
	}

	cmd.Flags().StringP("out", "o", "data/processed", "output directory")
	_ = viper.BindPFlag("data.out", cmd.Flags().Lookup("out"))

	return cmd
}

func runFetch(cmd *cobra.Command, _ []string) error {
	base := config.ExpandPath(viper.GetString("data.base"))
	out := config.ExpandPath(viper.GetString("data.out"))

	slog.Info("🧪 Downloading source documents...", "base", base, "out", out)

	client := fetch.NewClient(base)
	paths := []string{fetch.ComparisonPath, fetch.HighRiskPath, fetch.IndirectPath}

	for _, rel := range paths {
		if err := downloadDocument(cmd, client, rel, out); err != nil {
			return fmt.Errorf("download %s: %w", rel, err)
		}
	}

	slog.Info("✅ Documents downloaded", "count", len(paths), "dir", out)
	return nil
}

func downloadDocument(cmd *cobra.Command, client *fetch.Client, rel, out string) error {
	body, size, err := client.Open(cmd.Context(), rel)
	if err != nil {
		return err
	}
	defer body.Close()

	dest := filepath.Join(out, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}

	bar := progressbar.DefaultBytes(size, filepath.Base(rel))
	if _, err := io.Copy(io.MultiWriter(f, bar), body); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
