package tindahan

import (
	"math"
	"testing"
)

func TestAddItemInput_Apply(t *testing.T) {
	b := NewBook("PHP")
	it, err := AddItemInput{Name: "Rice", Price: 10, Qty: 50, Date: "2024-01-05"}.Apply(b)
	if err != nil {
		t.Fatal(err)
	}
	if !it.CurrentPrice().Equal(php(10)) {
		t.Errorf("CurrentPrice = %v, want %v", it.CurrentPrice(), php(10))
	}
	if got := it.Stock(MustMonth("2024-01")); got != 50 {
		t.Errorf("Stock = %d, want 50", got)
	}
	// The default source is the add form.
	if got := it.QtyHistory[0].Source; got != SourceAddForm {
		t.Errorf("Source = %q, want %q", got, SourceAddForm)
	}
}

func TestAddItemInput_Rejections(t *testing.T) {
	testCases := []struct {
		name string
		in   AddItemInput
	}{
		{name: "missing name", in: AddItemInput{Price: 10, Qty: 1, Date: "2024-01-05"}},
		{name: "negative price", in: AddItemInput{Name: "Rice", Price: -1, Qty: 1, Date: "2024-01-05"}},
		{name: "zero qty", in: AddItemInput{Name: "Rice", Price: 10, Date: "2024-01-05"}},
		{name: "missing date", in: AddItemInput{Name: "Rice", Price: 10, Qty: 1}},
		{name: "bad date", in: AddItemInput{Name: "Rice", Price: 10, Qty: 1, Date: "yesterday"}},
		{name: "nan price", in: AddItemInput{Name: "Rice", Price: math.NaN(), Qty: 1, Date: "2024-01-05"}},
		{name: "inf price", in: AddItemInput{Name: "Rice", Price: math.Inf(1), Qty: 1, Date: "2024-01-05"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBook("PHP")
			if _, err := tc.in.Apply(b); !IsValidation(err) {
				t.Errorf("Apply() error = %v, want a validation error", err)
			}
			if len(b.Items) != 0 {
				t.Error("rejected input must leave the book unchanged")
			}
		})
	}
}

func TestRecordSaleInput_Apply(t *testing.T) {
	b := newTestBook()
	s, err := RecordSaleInput{
		Date: "2024-01-10", Buyer: "Ana", Address: "Main St", Contact: "0917",
		Item: "Rice", Price: 12, Qty: 5,
	}.Apply(b)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Profit.Equal(php(10)) || s.ProfitIsManual {
		t.Errorf("Profit = %v manual=%v, want automatic %v", s.Profit, s.ProfitIsManual, php(10))
	}
}

func TestRecordSaleInput_ManualProfit(t *testing.T) {
	b := newTestBook()
	perUnit := 3.0
	s, err := RecordSaleInput{
		Date: "2024-01-10", Buyer: "Ana", Address: "Main St", Contact: "0917",
		Item: "Rice", Price: 12, Qty: 4, ManualProfitPerUnit: &perUnit,
	}.Apply(b)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Profit.Equal(php(12)) || !s.ProfitIsManual {
		t.Errorf("Profit = %v manual=%v, want manual %v", s.Profit, s.ProfitIsManual, php(12))
	}
}

func TestRecordSaleInput_Rejections(t *testing.T) {
	valid := RecordSaleInput{
		Date: "2024-01-10", Buyer: "Ana", Address: "Main St", Contact: "0917",
		Item: "Rice", Price: 12, Qty: 5,
	}
	testCases := []struct {
		name   string
		mutate func(*RecordSaleInput)
	}{
		{name: "missing buyer", mutate: func(in *RecordSaleInput) { in.Buyer = "" }},
		{name: "missing address", mutate: func(in *RecordSaleInput) { in.Address = "" }},
		{name: "missing contact", mutate: func(in *RecordSaleInput) { in.Contact = "" }},
		{name: "missing item", mutate: func(in *RecordSaleInput) { in.Item = "" }},
		{name: "negative price", mutate: func(in *RecordSaleInput) { in.Price = -1 }},
		{name: "zero qty", mutate: func(in *RecordSaleInput) { in.Qty = 0 }},
		{name: "bad date", mutate: func(in *RecordSaleInput) { in.Date = "not-a-date" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBook()
			in := valid
			tc.mutate(&in)
			if _, err := in.Apply(b); !IsValidation(err) {
				t.Errorf("Apply() error = %v, want a validation error", err)
			}
			if len(b.Sales) != 0 {
				t.Error("rejected input must leave the sales ledger unchanged")
			}
		})
	}
}
