package app

import "testing"

func TestIsRecordFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/data/makhzan_products.json", true},
		{"/data/makhzan_ui_state.json", true},
		{"/data/makhzan_products.json.tmp", false},
		{"/data/makhzan.log", false},
		{"/data/other_products.json", false},
		{"/data/nested/makhzan_products.json", true},
	}
	for _, tc := range cases {
		if got := isRecordFile(tc.path); got != tc.want {
			t.Fatalf("isRecordFile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
