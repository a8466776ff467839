package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazemk/makhzan/internal/config"
	"github.com/hazemk/makhzan/internal/i18n"
	"github.com/hazemk/makhzan/internal/inventory"
	"github.com/hazemk/makhzan/internal/prefs"
	"github.com/hazemk/makhzan/internal/storage"
	"github.com/hazemk/makhzan/internal/ui"
)

// Options configure the Makhzan application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/makhzan/config.toml
	PrefsPath  string // empty uses default ~/.config/makhzan/prefs.toml
	DataDir    string // overrides the configured data directory
	Theme      string // overrides the preferred theme
	Language   string // overrides the preferred language
}

// Run boots the Makhzan TUI until the program exits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)
	if opts.Theme != "" {
		userPrefs.Theme = opts.Theme
	}
	if opts.Language != "" {
		userPrefs.Language = opts.Language
	}
	lang := i18n.ParseLanguage(userPrefs.Language)

	catalog, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}

	adapter, err := storage.New(cfg.DataDir, logger)
	if err != nil {
		return fmt.Errorf("open data dir: %w", err)
	}

	store := inventory.New(adapter, inventory.Options{
		ItemsPerPage: cfg.ItemsPerPage,
		Collation:    lang.Tag(),
	})

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	model := ui.New(ui.Options{
		Store:         store,
		Catalog:       catalog,
		Language:      lang,
		ThemeName:     userPrefs.Theme,
		PrefsPath:     prefsPath,
		LowStock:      cfg.LowStock,
		CriticalStock: cfg.CriticalStock,
	})

	program := tea.NewProgram(model, tea.WithContext(ctx))

	stopWatcher, err := watchDataDir(adapter.Dir(), logger, func() {
		store.Reload()
		program.Send(ui.ReloadMsg{})
	})
	if err != nil {
		// The watcher is best effort; the app works without live reload.
		logger.Warn("data dir watch unavailable", "error", err)
	} else {
		defer stopWatcher()
	}

	logger.Info("starting", "data_dir", cfg.DataDir, "language", string(lang), "theme", userPrefs.Theme)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// openLogger opens the application log file. The TUI owns the terminal,
// so diagnostics never go to stderr while it runs.
func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, nil))
	return logger, func() { _ = file.Close() }, nil
}
