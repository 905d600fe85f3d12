package tindahan

import (
	"testing"
)

func TestQueryBook(t *testing.T) {
	b := newTestBook()
	recordRiceSale(t, b, "2024-01-10", 5, 12, nil)

	testCases := []struct {
		path string
		want any
	}{
		{path: `$.currency`, want: "PHP"},
		{path: `$.items["rice"].name`, want: "Rice"},
		{path: `$.items["rice"].quantities["2024-01"]`, want: float64(45)},
		{path: `$.sales[0].buyer`, want: "Ana"},
		{path: `$.sales[0].total.amount`, want: float64(60)},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := QueryBook(b, tc.path)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("QueryBook(%q) = %v (%T), want %v", tc.path, got, got, tc.want)
			}
		})
	}
}

func TestQueryBook_InvalidPath(t *testing.T) {
	b := newTestBook()
	if _, err := QueryBook(b, `$[`); err == nil {
		t.Error("expected an error for a malformed path")
	}
}
