package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "Slate" || names[1] != "Paper" {
		t.Fatalf("ThemeNames() = %v, want [Slate Paper]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Slate"); got != "Paper" {
		t.Fatalf("NextTheme(Slate) = %q, want Paper", got)
	}
	if got := NextTheme("Paper"); got != "Slate" {
		t.Fatalf("NextTheme(Paper) = %q, want Slate", got)
	}
	if got := NextTheme("Unknown"); got != "Slate" {
		t.Fatalf("NextTheme(Unknown) = %q, want Slate", got)
	}
}

func TestGetTheme(t *testing.T) {
	slate := GetTheme("Slate")
	if slate.Name != "Slate" || !slate.Dark {
		t.Fatalf("GetTheme(Slate) = %q dark=%v, want Slate dark", slate.Name, slate.Dark)
	}

	paper := GetTheme("Paper")
	if paper.Name != "Paper" || paper.Dark {
		t.Fatalf("GetTheme(Paper) = %q dark=%v, want Paper light", paper.Name, paper.Dark)
	}

	unknown := GetTheme("Unknown")
	if unknown.Name != "Slate" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Slate (fallback)", unknown.Name)
	}
}

func TestClassifyStock(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		want     StockLevel
	}{
		{"zero", 0, StockCritical},
		{"at_critical", 5, StockCritical},
		{"above_critical", 6, StockLow},
		{"at_low", 10, StockLow},
		{"above_low", 11, StockOK},
		{"plenty", 500, StockOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyStock(tc.quantity, 10, 5); got != tc.want {
				t.Fatalf("ClassifyStock(%d, 10, 5) = %v, want %v", tc.quantity, got, tc.want)
			}
		})
	}
}

func TestStockStyleUsesDangerForCritical(t *testing.T) {
	th := GetTheme("Slate")
	styles := th.Styles()

	if got := th.StockStyle(StockCritical).GetForeground(); got != styles.DangerText.GetForeground() {
		t.Fatalf("StockStyle(critical) foreground = %v, want danger", got)
	}
	if got := th.StockStyle(StockLow).GetForeground(); got != styles.WarningText.GetForeground() {
		t.Fatalf("StockStyle(low) foreground = %v, want warning", got)
	}
	if got := th.StockStyle(StockOK).GetForeground(); got != styles.Text.GetForeground() {
		t.Fatalf("StockStyle(ok) foreground = %v, want text", got)
	}
}
