package tindahan

import "time"

// StockLine is one item valuation row of a monthly report: the stock held in
// the month, valued at the item's current price (not the price that was
// current back then).
type StockLine struct {
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
	Price Money  `json:"price"`
	Total Money  `json:"total"`
}

// MonthlyReport combines the stock valuation and the sales of one month.
type MonthlyReport struct {
	Shop        string      `json:"shop,omitempty"`
	Month       Month       `json:"month"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Currency    string      `json:"currency"`
	Stock       []StockLine `json:"stock"`
	Sales       []Sale      `json:"sales"`
	Totals
}

// YearRow is one month's line of a yearly report.
type YearRow struct {
	Month        Month `json:"month"`
	ItemsTotal   Money `json:"itemsTotal"`
	SalesTotal   Money `json:"salesTotal"`
	SalesProfit  Money `json:"salesProfit"`
	SalesCount   int   `json:"salesCount"`
	FromSnapshot bool  `json:"fromSnapshot"`
}

// YearlyReport sums twelve monthly rows.
type YearlyReport struct {
	Shop        string    `json:"shop,omitempty"`
	Year        int       `json:"year"`
	Currency    string    `json:"currency"`
	Rows        []YearRow `json:"rows"`
	ItemsTotal  Money     `json:"itemsTotal"`
	SalesTotal  Money     `json:"salesTotal"`
	SalesProfit Money     `json:"salesProfit"`
	Combined    Money     `json:"combined"` // items + sales revenue
}

// computeMonth derives the report rows and totals for a month from the raw
// ledgers. It never touches the snapshot cache.
func (b *Book) computeMonth(m Month) *MonthlyReport {
	r := &MonthlyReport{
		Shop:        b.Shop,
		Month:       m,
		GeneratedAt: time.Now(),
		Currency:    b.Currency,
		Totals: Totals{
			ItemsTotal:  b.money(),
			SalesTotal:  b.money(),
			SalesProfit: b.money(),
		},
	}
	for it := range b.AllItems() {
		qty := it.Stock(m)
		if qty <= 0 {
			continue
		}
		price := it.CurrentPrice()
		line := StockLine{Name: it.Name, Qty: qty, Price: price, Total: price.MulInt(qty)}
		r.Stock = append(r.Stock, line)
		r.ItemsTotal = r.ItemsTotal.Add(line.Total)
	}
	r.Sales = b.SalesForMonth(m)
	for _, s := range r.Sales {
		r.SalesTotal = r.SalesTotal.Add(s.Total)
		r.SalesProfit = r.SalesProfit.Add(s.Profit)
	}
	r.SalesCount = len(r.Sales)
	return r
}

// MonthlyReport computes the report for a month and overwrites the month's
// snapshot in the cache. Repeated calls with no intervening mutation produce
// identical totals; only the snapshot's generation timestamp moves.
func (b *Book) MonthlyReport(m Month) *MonthlyReport {
	r := b.computeMonth(m)
	b.Snapshots[m] = MonthlySnapshot{
		GeneratedAt: r.GeneratedAt,
		Totals:      r.Totals,
	}
	return r
}

// YearlyReport builds the twelve monthly rows of a year, preferring cached
// snapshots and recomputing live from the raw ledgers for months that were
// never snapshotted. The fallback is read-only: only MonthlyReport ever
// populates the cache.
func (b *Book) YearlyReport(year int) *YearlyReport {
	y := &YearlyReport{
		Shop:        b.Shop,
		Year:        year,
		Currency:    b.Currency,
		ItemsTotal:  b.money(),
		SalesTotal:  b.money(),
		SalesProfit: b.money(),
	}
	for m := range MonthsOf(year) {
		var row YearRow
		if snap, ok := b.Snapshots[m]; ok {
			row = YearRow{
				Month:        m,
				ItemsTotal:   snap.ItemsTotal,
				SalesTotal:   snap.SalesTotal,
				SalesProfit:  snap.SalesProfit,
				SalesCount:   snap.SalesCount,
				FromSnapshot: true,
			}
		} else {
			live := b.computeMonth(m)
			row = YearRow{
				Month:       m,
				ItemsTotal:  live.ItemsTotal,
				SalesTotal:  live.SalesTotal,
				SalesProfit: live.SalesProfit,
				SalesCount:  live.SalesCount,
			}
		}
		y.Rows = append(y.Rows, row)
		y.ItemsTotal = y.ItemsTotal.Add(row.ItemsTotal)
		y.SalesTotal = y.SalesTotal.Add(row.SalesTotal)
		y.SalesProfit = y.SalesProfit.Add(row.SalesProfit)
	}
	y.Combined = y.ItemsTotal.Add(y.SalesTotal)
	return y
}
