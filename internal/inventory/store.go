package inventory

import (
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hazemk/makhzan/internal/storage"
)

// Adapter is the slice of the persistence layer the store depends on.
type Adapter interface {
	Get(key string, dest any) bool
	Set(key string, value any)
}

// Options tune store construction.
type Options struct {
	// ItemsPerPage overrides the default page size for a fresh UIState.
	// A persisted UIState keeps its own value.
	ItemsPerPage int

	// Collation picks the locale used for name/category ordering.
	// The zero tag falls back to undetermined-locale ordering.
	Collation language.Tag

	// Now stubs the clock in tests. Nil uses time.Now.
	Now func() time.Time
}

// Store owns the product collection and the UI state. It is the only
// mutation surface; every mutation persists a snapshot through the
// adapter before returning. Reads hand out defensive copies.
//
// A RWMutex guards the state: the UI runs single-threaded, but the data
// directory watcher reloads from its own goroutine.
type Store struct {
	mu       sync.RWMutex
	adapter  Adapter
	products []Product
	ui       UIState
	coll     *collate.Collator
	now      func() time.Time
}

// New loads persisted state through the adapter, seeding the product
// collection from the bundled dataset when nothing usable is stored.
func New(adapter Adapter, opts Options) *Store {
	s := &Store{
		adapter: adapter,
		now:     opts.Now,
		coll:    collate.New(opts.Collation, collate.IgnoreCase),
	}
	if s.now == nil {
		s.now = time.Now
	}

	var stored []Product
	if adapter.Get(storage.KeyProducts, &stored) && len(stored) > 0 {
		s.products = stored
	} else {
		s.products = SeedProducts()
		adapter.Set(storage.KeyProducts, s.products)
	}

	// Unmarshalling over the defaults gives a shallow merge: fields an
	// older persisted shape does not carry keep their default values.
	ui := DefaultUIState()
	if opts.ItemsPerPage > 0 {
		ui.ItemsPerPage = opts.ItemsPerPage
	}
	adapter.Get(storage.KeyUIState, &ui)
	if ui.ItemsPerPage <= 0 {
		ui.ItemsPerPage = DefaultItemsPerPage
	}
	if ui.CurrentPage < 1 {
		ui.CurrentPage = 1
	}
	s.ui = ui

	return s
}

// SetCollation swaps the collation locale for subsequent sorts.
func (s *Store) SetCollation(tag language.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coll = collate.New(tag, collate.IgnoreCase)
}

// Products returns a copy of the full collection in insertion order.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.products)
}

// UIState returns the current view configuration.
func (s *Store) UIState() UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ui
}

// View recomputes the derived read model from the current state.
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewLocked()
}

func (s *Store) viewLocked() View {
	filtered := FilterProducts(s.products, s.ui.SearchKeyword, s.ui.SelectedCategory)
	sorted := SortProducts(filtered, s.ui.SortConfig, s.coll)
	return View{
		Categories: DistinctCategories(s.products),
		Filtered:   sorted,
		Page:       Paginate(sorted, s.ui.CurrentPage, s.ui.ItemsPerPage),
		TotalItems: len(sorted),
		TotalPages: TotalPages(len(sorted), s.ui.ItemsPerPage),
	}
}

// GetByID looks a product up by identity.
func (s *Store) GetByID(id int64) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Create appends a new product with the next free ID and the current
// time, persists the collection, and returns the record.
func (s *Store) Create(data FormData) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:        s.nextIDLocked(),
		Name:      data.Name,
		Category:  data.Category,
		Quantity:  data.Quantity,
		Price:     data.Price,
		CreatedAt: s.now(),
	}
	s.products = append(s.products, p)
	s.adapter.Set(storage.KeyProducts, s.products)
	return p
}

// Update replaces every FormData field on the product with the given ID,
// preserving ID and CreatedAt. An unknown ID is a no-op returning false.
func (s *Store) Update(id int64, data FormData) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		s.products[i].Name = data.Name
		s.products[i].Category = data.Category
		s.products[i].Quantity = data.Quantity
		s.products[i].Price = data.Price
		s.adapter.Set(storage.KeyProducts, s.products)
		return s.products[i], true
	}
	return Product{}, false
}

// Delete removes the product with the given ID and reports whether a
// removal happened. The current page is re-clamped against the shrunken
// collection so the view never points past the last page.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		s.products = append(s.products[:i], s.products[i+1:]...)
		s.adapter.Set(storage.KeyProducts, s.products)

		if pages := s.viewLocked().TotalPages; s.ui.CurrentPage > pages {
			s.ui.CurrentPage = pages
			s.adapter.Set(storage.KeyUIState, s.ui)
		}
		return true
	}
	return false
}

// SetSearchKeyword replaces the search keyword and returns to page one.
func (s *Store) SetSearchKeyword(keyword string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.SearchKeyword = keyword
	s.ui.CurrentPage = 1
	s.adapter.Set(storage.KeyUIState, s.ui)
}

// SetSelectedCategory replaces the category filter and returns to page
// one. The empty string clears the filter.
func (s *Store) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.SelectedCategory = category
	s.ui.CurrentPage = 1
	s.adapter.Set(storage.KeyUIState, s.ui)
}

// SortBy selects a sort field with toggle semantics: re-selecting the
// active field flips the direction, a new field starts ascending.
func (s *Store) SortBy(field SortField) {
	s.mu.Lock()
	defer s.mu.Unlock()

	direction := Ascending
	if s.ui.SortConfig.Field == field {
		direction = s.ui.SortConfig.Direction.Flip()
	}
	s.setSortLocked(field, direction)
}

// SetSortConfig sets the sort field and direction explicitly.
func (s *Store) SetSortConfig(field SortField, direction SortDirection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setSortLocked(field, direction)
}

func (s *Store) setSortLocked(field SortField, direction SortDirection) {
	s.ui.SortConfig = SortConfig{Field: field, Direction: direction}
	s.ui.CurrentPage = 1
	s.adapter.Set(storage.KeyUIState, s.ui)
}

// SetCurrentPage stores the requested page clamped into [1, TotalPages].
func (s *Store) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxPage := s.viewLocked().TotalPages
	s.ui.CurrentPage = max(1, min(page, maxPage))
	s.adapter.Set(storage.KeyUIState, s.ui)
}

// ResetFilters restores the system default UIState, not whatever was
// last persisted.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	perPage := s.ui.ItemsPerPage
	s.ui = DefaultUIState()
	s.ui.ItemsPerPage = perPage
	s.adapter.Set(storage.KeyUIState, s.ui)
}

// Reload re-reads both records from the adapter, keeping the in-memory
// state when a record is absent. Used when another process writes the
// data directory.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored []Product
	if s.adapter.Get(storage.KeyProducts, &stored) {
		s.products = stored
	}
	ui := DefaultUIState()
	ui.ItemsPerPage = s.ui.ItemsPerPage
	if s.adapter.Get(storage.KeyUIState, &ui) {
		if ui.ItemsPerPage <= 0 {
			ui.ItemsPerPage = DefaultItemsPerPage
		}
		if ui.CurrentPage < 1 {
			ui.CurrentPage = 1
		}
		s.ui = ui
	}
}

// nextIDLocked implements the max-existing-ID-plus-one rule: 1 for an
// empty collection, no gap filling after deletes.
func (s *Store) nextIDLocked() int64 {
	var maxID int64
	for _, p := range s.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

func cloneProducts(products []Product) []Product {
	if len(products) == 0 {
		return nil
	}
	out := make([]Product, len(products))
	copy(out, products)
	return out
}
