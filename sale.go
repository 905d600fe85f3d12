package tindahan

import (
	"sort"

	"github.com/google/uuid"
)

// Sale is one immutable sales transaction. The item field is a snapshot of the
// display name at the time of sale, not a reference: renaming or deleting the
// item later never alters past sales.
type Sale struct {
	ID             string `json:"id"`
	Date           Date   `json:"date"`
	Buyer          string `json:"buyer"`
	Address        string `json:"address"`
	Contact        string `json:"contact"`
	Item           string `json:"item"`
	Price          Money  `json:"price"`
	Qty            int    `json:"qty"`
	Total          Money  `json:"total"`
	Profit         Money  `json:"profit"`
	ProfitIsManual bool   `json:"profitIsManual,omitempty"`
}

func (s Sale) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("date", s.Date)
	w.Append("buyer", s.Buyer)
	w.Append("address", s.Address)
	w.Append("contact", s.Contact)
	w.Append("item", s.Item)
	w.Append("price", s.Price)
	w.Append("qty", s.Qty)
	w.Append("total", s.Total)
	w.Append("profit", s.Profit)
	w.Optional("profitIsManual", s.ProfitIsManual)
	return w.MarshalJSON()
}

// RecordSale appends a sale against an existing item and consumes its stock
// for the month of the sale.
//
// The cost per unit is the item's currently-resolved price at the moment of
// the sale; later price changes never retroactively alter the profit. When
// manualProfitPerUnit is non-nil it overrides the automatic profit, per unit.
// The item's stock is decremented through SetQuantity (clamped at zero) with
// the "sale" audit source.
func (b *Book) RecordSale(on Date, buyer, address, contact, itemName string, price Money, qty int, manualProfitPerUnit *Money) (*Sale, error) {
	if on.IsZero() {
		return nil, Validationf("sale date is required")
	}
	if trimName(buyer) == "" {
		return nil, Validationf("buyer is required")
	}
	if trimName(address) == "" {
		return nil, Validationf("address is required")
	}
	if trimName(contact) == "" {
		return nil, Validationf("contact is required")
	}
	if trimName(itemName) == "" {
		return nil, Validationf("item name is required")
	}
	if price.IsNegative() {
		return nil, Validationf("price must not be negative, got %s", price)
	}
	if qty <= 0 {
		return nil, Validationf("quantity must be a positive integer, got %d", qty)
	}

	it := b.Item(itemName)
	if it == nil {
		return nil, &NotFoundError{Name: trimName(itemName)}
	}

	costPerUnit := it.CurrentPrice()
	total := price.MulInt(qty)
	profit := price.Sub(costPerUnit).MulInt(qty)
	manual := manualProfitPerUnit != nil
	if manual {
		profit = manualProfitPerUnit.MulInt(qty)
	}

	sale := Sale{
		ID:             uuid.NewString(),
		Date:           on,
		Buyer:          trimName(buyer),
		Address:        trimName(address),
		Contact:        trimName(contact),
		Item:           it.Name,
		Price:          price,
		Qty:            qty,
		Total:          total,
		Profit:         profit,
		ProfitIsManual: manual,
	}
	b.Sales = append(b.Sales, sale)

	month := on.Month()
	remaining := it.Stock(month) - qty
	if err := b.SetQuantity(it.Name, month, remaining, on, SourceSale); err != nil {
		return nil, err
	}
	return &b.Sales[len(b.Sales)-1], nil
}

// SalesForMonth returns all sales whose date falls in the month, ordered by
// date ascending. The sort is stable, sales on the same day keep their
// recording order.
func (b *Book) SalesForMonth(m Month) []Sale {
	var sales []Sale
	for _, s := range b.Sales {
		if m.Contains(s.Date) {
			sales = append(sales, s)
		}
	}
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.Before(sales[j].Date)
	})
	return sales
}
