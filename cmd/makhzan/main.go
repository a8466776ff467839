// Package main provides the makhzan binary entry point.
// Makhzan is a terminal inventory manager with persistent product
// records, filtering, sorting, and bilingual display.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hazemk/makhzan/internal/app"
	"github.com/hazemk/makhzan/internal/config"
	"github.com/hazemk/makhzan/internal/storage"
)

const (
	version = "0.1.0"
	appName = "makhzan"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Terminal inventory manager",
		Long: `Makhzan is a terminal inventory manager. Products live in a local
data directory and survive restarts; the list view supports debounced
search, category filtering, sortable columns, and pagination, in
English or Arabic and with a light or dark theme.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default ~/.config/makhzan/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "data directory override")
	cmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/makhzan/prefs.toml)")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "theme override (Slate, Paper)")
	cmd.Flags().StringVar(&opts.Language, "lang", "", "language override (en, ar)")

	cmd.AddCommand(resetCmd(&opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, version)
		},
	})

	return cmd
}

func resetCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove all persisted records",
		Long: `Reset deletes every Makhzan record file from the data directory.
The next start reseeds the product collection with the bundled sample
data. Preferences and the log file are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if opts.DataDir != "" {
				cfg.DataDir = opts.DataDir
			}

			store, err := storage.New(cfg.DataDir, slog.New(slog.NewTextHandler(os.Stderr, nil)))
			if err != nil {
				return fmt.Errorf("open data dir: %w", err)
			}
			store.Clear()
			fmt.Printf("cleared records in %s\n", store.Dir())
			return nil
		},
	}
}
