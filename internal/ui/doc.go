// Package ui implements the Makhzan terminal interface with Bubble Tea.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Root Model, message routing, and list-mode key handling
//   - list.go: Product table with header and footer bars
//   - search.go: Debounced search input
//   - form.go: Create/edit form with field validation
//   - confirm.go: Delete confirmation modal
//   - help.go: Key binding overlay
//   - theme.go: Color themes and stock-level styling
//   - keys.go: Key bindings
//
// # Interaction Modes
//
// The Model runs in one of five modes: list, search, form, confirm, and
// help. List mode is the default; every other mode returns to it on
// completion or escape.
//
// # State Ownership
//
// All inventory data lives in inventory.Store. The Model holds only
// presentation state: the active mode, the highlighted row, in-flight
// input widgets, and the transient status line. Rendering always reads a
// fresh View from the store, so an external reload only needs a
// ReloadMsg to show up on screen.
//
// # Search Debounce
//
// Keystrokes in search mode schedule a tea.Tick carrying a sequence
// number. Only the newest sequence is honored when the tick fires, and a
// value matching the store's current keyword is dropped. Enter commits
// immediately and invalidates any pending tick.
//
// # Localization
//
// All visible text goes through i18n.Catalog. When the active language
// is right-to-left, full-width lines are right-aligned.
package ui
