package tindahan

import (
	"github.com/google/go-cmp/cmp"
)

// cmpOpts makes the value types with unexported fields comparable in tests.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Date) bool { return a == b }),
	cmp.Comparer(func(a, b Month) bool { return a == b }),
}

// php is a shorthand for amounts in the test book's currency.
func php(v float64) Money { return M(v, "PHP") }

// newTestBook seeds a book with the canonical "Rice" scenario: 50 units at
// cost 10.00 added on 2024-01-05.
func newTestBook() *Book {
	b := NewBook("PHP")
	if _, err := b.UpsertItem("Rice", php(10), 50, MustDate("2024-01-05"), SourceAddForm); err != nil {
		panic(err)
	}
	return b
}
