package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields Makhzan reads from its config file.
type Config struct {
	// DataDir holds the persisted product and view-state records.
	DataDir string

	// ItemsPerPage is the page size for a fresh view state. A persisted
	// view state keeps whatever page size it was saved with.
	ItemsPerPage int

	// LowStock and CriticalStock are display thresholds: quantities at or
	// below them get the warning/danger decoration in the list. They never
	// affect the data model.
	LowStock      int
	CriticalStock int
}

const (
	defaultConfigPath    = "~/.config/makhzan/config.toml"
	defaultDataDir       = "~/.local/share/makhzan"
	defaultItemsPerPage  = 10
	defaultLowStock      = 10
	defaultCriticalStock = 5
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config file, falling back to defaults when
// it is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ItemsPerPage:  defaultItemsPerPage,
		LowStock:      defaultLowStock,
		CriticalStock: defaultCriticalStock,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.DataDir = mustExpand(defaultDataDir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir       string `toml:"data_dir"`
		ItemsPerPage  int    `toml:"items_per_page"`
		LowStock      int    `toml:"low_stock"`
		CriticalStock int    `toml:"critical_stock"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.DataDir = strings.TrimSpace(raw.DataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir
	}
	cfg.DataDir = mustExpand(cfg.DataDir)

	if raw.ItemsPerPage > 0 {
		cfg.ItemsPerPage = raw.ItemsPerPage
	}
	if raw.LowStock > 0 {
		cfg.LowStock = raw.LowStock
	}
	if raw.CriticalStock > 0 {
		cfg.CriticalStock = raw.CriticalStock
	}

	return cfg, nil
}

// LogPath returns the application log file inside the data directory.
// The TUI owns stdout/stderr, so diagnostics go to a file instead.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return filepath.Join(mustExpand(defaultDataDir), "makhzan.log")
	}
	return filepath.Join(c.DataDir, "makhzan.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
