package tindahan

import "time"

// Totals bundles the sums shared by a monthly report and its cached snapshot.
type Totals struct {
	ItemsTotal  Money `json:"itemsTotal"`
	SalesTotal  Money `json:"salesTotal"`
	SalesProfit Money `json:"salesProfit"`
	SalesCount  int   `json:"salesCount"`
}

// MonthlySnapshot is a cached, point-in-time-computed summary of one calendar
// month. It is overwritten every time the monthly report is regenerated and
// never deleted. It is a cache, not a ledger: always safe to recompute.
type MonthlySnapshot struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Totals
}

func (s MonthlySnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("generatedAt", s.GeneratedAt.UTC().Format(time.RFC3339))
	w.EmbedFrom(s.Totals)
	return w.MarshalJSON()
}
