package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"ellipsis", "abcdefgh", 6, "abc..."},
		{"tiny_limit", "abcdefgh", 2, "ab"},
		{"zero_limit", "abc", 0, "abc"},
		{"trims", "  abc  ", 5, "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 5); got != "abcdef" {
		t.Fatalf("padRight long = %q, want unchanged", got)
	}
	if got := padRight("ab", 0); got != "ab" {
		t.Fatalf("padRight zero width = %q, want unchanged", got)
	}
}

func TestPadLeft(t *testing.T) {
	if got := padLeft("12", 5); got != "   12" {
		t.Fatalf("padLeft = %q, want %q", got, "   12")
	}
	if got := padLeft("123456", 5); got != "123456" {
		t.Fatalf("padLeft long = %q, want unchanged", got)
	}
}
