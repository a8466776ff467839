// Package config handles loading and parsing Makhzan's configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/makhzan/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/makhzan/config.toml
//   - Data directory: ~/.local/share/makhzan
//   - Items per page: 10
//   - Low stock threshold: 10
//   - Critical stock threshold: 5
//   - Application log: <data_dir>/makhzan.log
//
// # TOML Format
//
// Example config.toml:
//
//	data_dir = "~/inventory"
//	items_per_page = 25
//	low_stock = 10
//	critical_stock = 5
//
// All fields are optional. Tilde expansion is performed automatically.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors
// (except os.ErrNotExist, which triggers defaults), and TOML parsing
// errors. A missing config file is NOT an error — Makhzan works
// out-of-the-box without one.
//
// The package is read-only and stateless: configuration is loaded once at
// startup and returned as an immutable Config struct.
package config
