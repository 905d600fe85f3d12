package tindahan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "book.json"), "PHP")
	b, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Items) != 0 || len(b.Sales) != 0 || b.Currency != "PHP" {
		t.Errorf("Load of missing file = %+v, want a fresh empty book", b)
	}
}

func TestFileStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path, "PHP")
	b, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Items) != 0 || len(b.Sales) != 0 {
		t.Errorf("Load of corrupt file = %+v, want a fresh empty book", b)
	}
}

func TestFileStore_SaveLoadRoundtrip(t *testing.T) {
	b := newTestBook()
	recordRiceSale(t, b, "2024-01-10", 5, 12, nil)
	b.MonthlyReport(MustMonth("2024-01"))

	path := filepath.Join(t.TempDir(), "shop", "book.json")
	s := NewFileStore(path, "PHP")
	if err := s.Save(b); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}

	// RFC3339 on disk drops sub-second precision on the snapshot timestamp.
	opts := append(cmp.Options{cmpopts.EquateApproxTime(time.Second)}, cmpOpts...)
	if diff := cmp.Diff(b, got, opts); diff != "" {
		t.Errorf("book changed across save/load (-saved +loaded):\n%s", diff)
	}
}

func TestFileStore_SaveIsDeterministic(t *testing.T) {
	b := newTestBook()
	b.MonthlyReport(MustMonth("2024-01"))

	path := filepath.Join(t.TempDir(), "book.json")
	s := NewFileStore(path, "PHP")
	if err := s.Save(b); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(b); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("saving the same state twice must produce byte-identical files")
	}
}

func TestDecodeBook_NormalizesSparseDocument(t *testing.T) {
	b, err := DecodeBook(strings.NewReader(`{"currency":"PHP"}`))
	if err != nil {
		t.Fatal(err)
	}
	if b.Items == nil || b.Snapshots == nil {
		t.Error("sparse document must decode to a book with usable containers")
	}
}

func TestDecodeBook_NormalizesSparseItem(t *testing.T) {
	// A hand-edited item with neither quantities nor a price history must
	// still accept a restock.
	doc := `{"currency":"PHP","items":{"rice":{"name":"Rice"}}}`
	b, err := DecodeBook(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.UpsertItem("Rice", php(12), 10, MustDate("2024-01-05"), SourceAddForm); err != nil {
		t.Fatal(err)
	}
	it := b.Item("Rice")
	if got := it.Stock(MustMonth("2024-01")); got != 10 {
		t.Errorf("Stock after restock = %d, want 10", got)
	}
	if !it.CurrentPrice().Equal(php(12)) {
		t.Errorf("CurrentPrice = %v, want %v", it.CurrentPrice(), php(12))
	}
}
