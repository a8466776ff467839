package ui

import (
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazemk/makhzan/internal/i18n"
	"github.com/hazemk/makhzan/internal/inventory"
)

// nullAdapter persists nothing, so every store starts from the seed set.
type nullAdapter struct{ state map[string]json.RawMessage }

func (a *nullAdapter) Get(key string, dest any) bool {
	raw, ok := a.state[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (a *nullAdapter) Set(key string, value any) {
	if a.state == nil {
		a.state = make(map[string]json.RawMessage)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	a.state[key] = raw
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	catalog, err := i18n.Load()
	if err != nil {
		t.Fatalf("i18n.Load: %v", err)
	}
	store := inventory.New(&nullAdapter{}, inventory.Options{})
	return New(Options{
		Store:    store,
		Catalog:  catalog,
		Language: i18n.English,
	})
}

func TestNextCategoryCycles(t *testing.T) {
	categories := []string{"Alpha", "Beta", "Gamma"}

	if got := nextCategory(categories, ""); got != "Alpha" {
		t.Fatalf("nextCategory from all = %q, want Alpha", got)
	}
	if got := nextCategory(categories, "Alpha"); got != "Beta" {
		t.Fatalf("nextCategory from Alpha = %q, want Beta", got)
	}
	if got := nextCategory(categories, "Gamma"); got != "" {
		t.Fatalf("nextCategory from last = %q, want all (empty)", got)
	}
	if got := nextCategory(categories, "Removed"); got != "" {
		t.Fatalf("nextCategory from unknown = %q, want all (empty)", got)
	}
	if got := nextCategory(nil, "Alpha"); got != "" {
		t.Fatalf("nextCategory with no categories = %q, want empty", got)
	}
}

func TestDebounceExpiryUpdatesKeyword(t *testing.T) {
	m := newTestModel(t)
	m.searchSeq = 3

	next, _ := m.Update(searchDebounceMsg{seq: 3, value: "mouse"})
	m = next.(Model)

	if got := m.store.UIState().SearchKeyword; got != "mouse" {
		t.Fatalf("keyword = %q, want mouse", got)
	}
	if m.selected != 0 {
		t.Fatalf("selected = %d, want 0", m.selected)
	}
}

func TestDebounceStaleSequenceDropped(t *testing.T) {
	m := newTestModel(t)
	m.searchSeq = 5

	next, _ := m.Update(searchDebounceMsg{seq: 4, value: "stale"})
	m = next.(Model)

	if got := m.store.UIState().SearchKeyword; got != "" {
		t.Fatalf("keyword = %q, want unchanged empty", got)
	}
}

func TestDebounceDuplicateValueDropped(t *testing.T) {
	m := newTestModel(t)
	m.store.SetSearchKeyword("mouse")
	m.store.SetCurrentPage(1)
	m.searchSeq = 7

	// The expiry value matches what the store already holds, so the
	// update must not reset the page or touch the store again.
	m.store.SetSortConfig(inventory.SortByName, inventory.Ascending)
	before := m.store.UIState()

	next, _ := m.Update(searchDebounceMsg{seq: 7, value: "mouse"})
	m = next.(Model)

	if got := m.store.UIState(); got != before {
		t.Fatalf("ui state changed: %+v -> %+v", before, got)
	}
}

func TestStatusClearOnlyForLatestSequence(t *testing.T) {
	m := newTestModel(t)
	m.statusText = "saved"
	m.statusSeq = 2

	next, _ := m.Update(statusClearMsg{seq: 1})
	m = next.(Model)
	if m.statusText != "saved" {
		t.Fatalf("stale clear wiped status %q", m.statusText)
	}

	next, _ = m.Update(statusClearMsg{seq: 2})
	m = next.(Model)
	if m.statusText != "" {
		t.Fatalf("status = %q, want cleared", m.statusText)
	}
}

func TestClampSelectedStaysOnPage(t *testing.T) {
	m := newTestModel(t)

	page := m.store.View().Page
	if len(page) == 0 {
		t.Fatal("expected seeded products on the first page")
	}
	last := len(page) - 1

	if got := m.clampSelected(-1); got != 0 {
		t.Fatalf("clampSelected(-1) = %d, want 0", got)
	}
	if got := m.clampSelected(last + 10); got != last {
		t.Fatalf("clampSelected(over) = %d, want %d", got, last)
	}
	if got := m.clampSelected(last); got != last {
		t.Fatalf("clampSelected(last) = %d, want %d", got, last)
	}
}

func TestWindowSizeMarksReady(t *testing.T) {
	m := newTestModel(t)
	if m.ready {
		t.Fatal("model ready before first WindowSizeMsg")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if !m.ready || m.width != 100 || m.height != 30 {
		t.Fatalf("ready=%v width=%d height=%d, want ready 100x30", m.ready, m.width, m.height)
	}
}
