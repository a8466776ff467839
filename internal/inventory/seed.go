package inventory

import (
	_ "embed"
	"encoding/json"
)

//go:embed seed.json
var seedData []byte

// SeedProducts returns the bundled starter dataset, used only when no
// persisted collection exists yet.
func SeedProducts() []Product {
	var products []Product
	// The embedded dataset is fixed at build time; a decode failure is a
	// programming error, and an empty collection is the safe fallback.
	if err := json.Unmarshal(seedData, &products); err != nil {
		return nil
	}
	return products
}
