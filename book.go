package tindahan

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// DefaultCurrency is used when a book is created without an explicit currency.
const DefaultCurrency = "PHP"

// Book is the single persisted document holding the whole shop state.
//
// Items are keyed by their normalized name, sales are append-only, and
// Snapshots caches one computed summary per calendar month.
type Book struct {
	Shop      string                    `json:"shop,omitempty"`
	Currency  string                    `json:"currency"`
	Items     map[string]*Item          `json:"items"`
	Sales     []Sale                    `json:"sales"`
	Snapshots map[Month]MonthlySnapshot `json:"monthlySnapshots"`
}

// NewBook creates an empty book. An empty currency falls back to DefaultCurrency.
func NewBook(currency string) *Book {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Book{
		Currency:  currency,
		Items:     make(map[string]*Item),
		Sales:     make([]Sale, 0),
		Snapshots: make(map[Month]MonthlySnapshot),
	}
}

// normalize ensures all containers exist after decoding a sparse or empty
// document, down to the per-item quantity maps.
func (b *Book) normalize() {
	if b.Currency == "" {
		b.Currency = DefaultCurrency
	}
	if b.Items == nil {
		b.Items = make(map[string]*Item)
	}
	for _, it := range b.Items {
		if it.Quantities == nil {
			it.Quantities = make(map[Month]int)
		}
	}
	if b.Sales == nil {
		b.Sales = make([]Sale, 0)
	}
	if b.Snapshots == nil {
		b.Snapshots = make(map[Month]MonthlySnapshot)
	}
}

// Key derives the lookup key of an item name: trimmed and case-folded.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Item returns the item stored under the normalized name, or nil if unknown.
func (b *Book) Item(name string) *Item {
	return b.Items[Key(name)]
}

// money builds a zero-based amount in the book's currency.
func (b *Book) money() Money { return M(0, b.Currency) }

// AllItems iterates over items sorted by their normalized key.
func (b *Book) AllItems() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		keys := slices.Collect(maps.Keys(b.Items))
		slices.Sort(keys)
		for _, key := range keys {
			if !yield(b.Items[key]) {
				return
			}
		}
	}
}

// FindItems returns the items whose display name contains the filter as a
// case-insensitive substring, sorted by key. An empty filter returns all items.
func (b *Book) FindItems(filter string) []*Item {
	filter = strings.ToLower(strings.TrimSpace(filter))
	var items []*Item
	for it := range b.AllItems() {
		if filter == "" || strings.Contains(strings.ToLower(it.Name), filter) {
			items = append(items, it)
		}
	}
	return items
}
