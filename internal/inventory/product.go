package inventory

import "time"

// Product is a single inventory record. The ID is assigned by the store
// and never changes; every other field is replaceable through Update.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

// FormData is the writable projection of a Product used for create and
// update. ID and CreatedAt are owned by the store.
type FormData struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// SortField selects which Product field ordering applies to.
type SortField string

// Sortable fields.
const (
	SortByName      SortField = "name"
	SortByCategory  SortField = "category"
	SortByPrice     SortField = "price"
	SortByQuantity  SortField = "quantity"
	SortByCreatedAt SortField = "createdAt"
)

// SortFields lists every sortable field in display order.
func SortFields() []SortField {
	return []SortField{SortByName, SortByCategory, SortByPrice, SortByQuantity, SortByCreatedAt}
}

// SortDirection is ascending or descending.
type SortDirection string

// Sort directions.
const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortConfig pairs a sort field with a direction.
type SortConfig struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// UIState is the current search/filter/sort/pagination configuration.
// It persists across sessions alongside the product collection.
type UIState struct {
	SearchKeyword    string     `json:"searchKeyword"`
	SelectedCategory string     `json:"selectedCategory"`
	SortConfig       SortConfig `json:"sortConfig"`
	CurrentPage      int        `json:"currentPage"`
	ItemsPerPage     int        `json:"itemsPerPage"`
}

// DefaultItemsPerPage is the page size used when none is configured.
const DefaultItemsPerPage = 10

// DefaultUIState returns the out-of-the-box view configuration: no
// filters, newest first, page one.
func DefaultUIState() UIState {
	return UIState{
		SortConfig:   SortConfig{Field: SortByCreatedAt, Direction: Descending},
		CurrentPage:  1,
		ItemsPerPage: DefaultItemsPerPage,
	}
}
