package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the created-at
	// column is dropped from the product table.
	LayoutCompactWidth = 90

	// LayoutWideWidth is the minimum width to render full-width labels
	// in the footer.
	LayoutWideWidth = 120
)

// Timing constants.
const (
	// SearchDebounce is the quiet period before a search keystroke burst
	// is forwarded to the store. Trailing edge wins; intermediate values
	// are discarded.
	SearchDebounce = 300 * time.Millisecond

	// StatusTTL is how long a transient status message stays in the
	// footer before it is cleared.
	StatusTTL = 4 * time.Second
)
