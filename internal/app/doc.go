// Package app provides the orchestration layer for the Makhzan
// application.
//
// # Overview
//
// This package wires together configuration, persistence, the inventory
// store, and the UI to create the complete Makhzan TUI experience. It
// serves as the composition root where all dependencies are initialized
// and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/makhzan/config.toml
//  2. Open the application log file inside the data directory
//  3. Load user preferences (theme, language) and the locale catalog
//  4. Open the storage adapter over the data directory
//  5. Build the inventory store, seeding it on first run
//  6. Start the data directory watcher for live reload
//  7. Start the TUI and block until the user exits
//
// # Components
//
//   - app.go: Main Run function and logger setup
//   - watcher.go: fsnotify watcher that reloads the store when record
//     files change on disk
//
// # Error Handling
//
// Fatal errors (returned from Run): invalid configuration, unreadable
// locale catalog, and a data directory that cannot be created. Watcher
// setup failure is recoverable: the app runs without live reload and
// logs a warning. Persistence write failures are logged by the storage
// layer and never interrupt the UI.
package app
