package storage

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestGet_MissingRecord(t *testing.T) {
	s := newTestStore(t)

	var out []string
	if s.Get("products", &out) {
		t.Fatalf("Get on missing record = true, want false")
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	type rec struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	s.Set("products", []rec{{Name: "Mouse", Price: 9.99}})

	var out []rec
	if !s.Get("products", &out) {
		t.Fatalf("Get after Set = false, want true")
	}
	if len(out) != 1 || out[0].Name != "Mouse" || out[0].Price != 9.99 {
		t.Fatalf("Get = %+v, want the stored record", out)
	}
}

func TestGet_CorruptRecordIsAbsent(t *testing.T) {
	s := newTestStore(t)

	if err := os.WriteFile(s.Path("ui_state"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out map[string]any
	if s.Get("ui_state", &out) {
		t.Fatalf("Get on corrupt record = true, want false")
	}
}

func TestClear_OnlyRemovesPrefixedFiles(t *testing.T) {
	s := newTestStore(t)

	s.Set("products", []int{1, 2})
	s.Set("ui_state", map[string]int{"currentPage": 3})

	unrelated := filepath.Join(s.Dir(), "notes.txt")
	if err := os.WriteFile(unrelated, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s.Clear()

	var out []int
	if s.Get("products", &out) {
		t.Fatalf("products survived Clear")
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Fatalf("unrelated file removed by Clear: %v", err)
	}
}

func TestRemove_MissingIsNoop(t *testing.T) {
	s := newTestStore(t)
	s.Remove("products") // must not panic or create anything
	if _, err := os.Stat(s.Path("products")); !os.IsNotExist(err) {
		t.Fatalf("Remove created a record")
	}
}
