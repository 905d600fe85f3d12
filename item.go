package tindahan

import (
	"strings"

	"github.com/google/uuid"
)

// Source tags recorded in the quantity audit log.
const (
	SourceAddForm = "addForm" // stock added through the add-item flow
	SourceQtyForm = "qtyForm" // stock level set explicitly
	SourceStepper = "stepper" // one-step increment/decrement
	SourceSale    = "sale"    // stock consumed by a recorded sale
)

// PricePoint is one entry of an item's price history.
type PricePoint struct {
	Price Money `json:"price"`
	Date  Date  `json:"date"`
}

func (p PricePoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("price", p.Price)
	w.Append("date", p.Date)
	return w.MarshalJSON()
}

// QtyChange is one immutable entry of an item's stock audit log. It exists for
// traceability only; current stock is always read from Quantities directly.
type QtyChange struct {
	ID     string `json:"id"`
	Month  Month  `json:"month"`
	Date   Date   `json:"date"`
	Delta  int    `json:"delta"`
	Source string `json:"source"`
}

// Item is one inventory item with its price history and per-month stock levels.
type Item struct {
	Name         string        `json:"name"`
	PriceHistory []PricePoint  `json:"priceHistory"`
	Quantities   map[Month]int `json:"quantities"`
	QtyHistory   []QtyChange   `json:"qtyHistory"`
}

// CurrentPrice resolves the latest known price: the price-history entry with
// the maximum date, ties resolved by insertion order (last inserted wins).
// It returns a zero amount when no history exists.
func (it *Item) CurrentPrice() Money {
	var best PricePoint
	found := false
	for _, p := range it.PriceHistory {
		if !found || !p.Date.Before(best.Date) {
			best = p
			found = true
		}
	}
	if !found {
		return Money{}
	}
	return best.Price
}

// Stock returns the current stock level for the month, 0 when absent.
func (it *Item) Stock(m Month) int { return it.Quantities[m] }

// audit appends an immutable stock-change entry. The log is never read back
// to compute stock.
func (it *Item) audit(m Month, on Date, delta int, source string) {
	it.QtyHistory = append(it.QtyHistory, QtyChange{
		ID:     uuid.NewString(),
		Month:  m,
		Date:   on,
		Delta:  delta,
		Source: source,
	})
}

// UpsertItem creates the item or adds stock to an existing one.
//
// On creation the item gets a single price-history entry and its stock for the
// month of 'on' is initialized to qty. On an existing item a price-history
// entry is appended only when the price differs from the currently-resolved
// latest price, and qty is added to the month's stock. Either way an audit
// entry records the delta under the given source tag.
func (b *Book) UpsertItem(name string, price Money, qty int, on Date, source string) (*Item, error) {
	trimmed := trimName(name)
	if trimmed == "" {
		return nil, Validationf("item name is required")
	}
	if price.IsNegative() {
		return nil, Validationf("price must not be negative, got %s", price)
	}
	if qty <= 0 {
		return nil, Validationf("quantity must be a positive integer, got %d", qty)
	}

	month := on.Month()
	it := b.Item(trimmed)
	if it == nil {
		it = &Item{
			Name:         trimmed,
			PriceHistory: []PricePoint{{Price: price, Date: on}},
			Quantities:   map[Month]int{month: qty},
		}
		it.audit(month, on, qty, source)
		b.Items[Key(trimmed)] = it
		return it, nil
	}

	// De-duplicate: repeated adds at the same price must not grow the history.
	if !price.Equal(it.CurrentPrice()) {
		it.PriceHistory = append(it.PriceHistory, PricePoint{Price: price, Date: on})
	}
	it.Quantities[month] += qty
	it.audit(month, on, qty, source)
	return it, nil
}

// UpdatePrice appends a price-history entry for an existing item. Unlike
// UpsertItem it never de-duplicates: an explicit price update is always
// observable in the history, even at an unchanged price.
func (b *Book) UpdatePrice(name string, price Money, on Date) error {
	trimmed := trimName(name)
	if trimmed == "" {
		return Validationf("item name is required")
	}
	if price.IsNegative() {
		return Validationf("price must not be negative, got %s", price)
	}
	it := b.Item(trimmed)
	if it == nil {
		return &NotFoundError{Name: trimmed}
	}
	it.PriceHistory = append(it.PriceHistory, PricePoint{Price: price, Date: on})
	return nil
}

// SetQuantity writes a new stock level for an item and month. The level is
// clamped at zero, and the audit log records the resulting delta (skipped when
// the delta is exactly zero).
func (b *Book) SetQuantity(name string, m Month, qty int, on Date, source string) error {
	it := b.Item(name)
	if it == nil {
		return &NotFoundError{Name: trimName(name)}
	}
	if qty < 0 {
		qty = 0
	}
	delta := qty - it.Stock(m)
	if it.Quantities == nil {
		it.Quantities = make(map[Month]int)
	}
	it.Quantities[m] = qty
	if delta != 0 {
		it.audit(m, on, delta, source)
	}
	return nil
}

// AdjustQuantity shifts an item's stock for a month by delta, typically ±1
// from a stepper control. The current value is clamped at zero before the
// adjustment, and the result never goes negative.
func (b *Book) AdjustQuantity(name string, m Month, delta int, on Date, source string) error {
	it := b.Item(name)
	if it == nil {
		return &NotFoundError{Name: trimName(name)}
	}
	current := it.Stock(m)
	if current < 0 {
		current = 0
	}
	next := current + delta
	if next < 0 {
		next = 0
	}
	return b.SetQuantity(name, m, next, on, source)
}

// DeleteItems removes items and their whole history. Irreversible; past sales
// referencing a deleted item keep their name snapshot and remain unchanged.
func (b *Book) DeleteItems(names ...string) int {
	removed := 0
	for _, name := range names {
		key := Key(name)
		if _, ok := b.Items[key]; ok {
			delete(b.Items, key)
			removed++
		}
	}
	return removed
}

func trimName(name string) string {
	return strings.TrimSpace(name)
}
