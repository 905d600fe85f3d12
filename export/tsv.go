// Package export writes reports to files a shopkeeper can hand around:
// tab-separated text that pastes cleanly into a spreadsheet, and xlsx
// workbooks for the months that need a nicer sheet.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kgarduque/tindahan"
)

// ReceiptFile returns the conventional file name for a month's receipt.
func ReceiptFile(m tindahan.Month) string { return fmt.Sprintf("receipt_%s.txt", m) }

// SalesFile returns the conventional file name for a month's sales export.
func SalesFile(m tindahan.Month) string { return fmt.Sprintf("sales_%s.txt", m) }

// YearlyFile returns the conventional file name for a yearly export.
func YearlyFile(year int) string { return fmt.Sprintf("yearly_%d.txt", year) }

// row writes one tab-separated line.
func row(w io.Writer, cells ...any) error {
	for i, c := range cells {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\t"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, c); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// WriteReceipt writes the month's stock valuation as tab-separated text.
func WriteReceipt(w io.Writer, r *tindahan.MonthlyReport) error {
	if err := row(w, "Receipt", r.Month); err != nil {
		return err
	}
	if err := row(w, "Item", "Qty", "Price", "Value"); err != nil {
		return err
	}
	for _, line := range r.Stock {
		if err := row(w, line.Name, line.Qty, line.Price, line.Total); err != nil {
			return err
		}
	}
	return row(w, "Total", "", "", r.ItemsTotal)
}

// WriteSales writes the month's sales ledger as tab-separated text.
func WriteSales(w io.Writer, r *tindahan.MonthlyReport) error {
	if err := row(w, "Sales", r.Month); err != nil {
		return err
	}
	if err := row(w, "Date", "Buyer", "Address", "Contact", "Item", "Qty", "Price", "Total", "Profit"); err != nil {
		return err
	}
	for _, s := range r.Sales {
		if err := row(w, s.Date, s.Buyer, s.Address, s.Contact, s.Item, s.Qty, s.Price, s.Total, s.Profit.SignedString()); err != nil {
			return err
		}
	}
	return row(w, "Total", "", "", "", "", "", "", r.SalesTotal, r.SalesProfit.SignedString())
}

// WriteYearly writes the twelve monthly rows of a year as tab-separated text.
func WriteYearly(w io.Writer, r *tindahan.YearlyReport) error {
	if err := row(w, "Year", r.Year); err != nil {
		return err
	}
	if err := row(w, "Month", "Stock value", "Sales revenue", "Profit", "Sales"); err != nil {
		return err
	}
	for _, yr := range r.Rows {
		if err := row(w, yr.Month, yr.ItemsTotal, yr.SalesTotal, yr.SalesProfit.SignedString(), yr.SalesCount); err != nil {
			return err
		}
	}
	if err := row(w, "Total", r.ItemsTotal, r.SalesTotal, r.SalesProfit.SignedString(), ""); err != nil {
		return err
	}
	return row(w, "Combined", r.Combined, "", "", "")
}

// writeFile creates path and writes through fn.
func writeFile(path string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create export file %q: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// MonthlyFiles writes the receipt and sales exports for a month into dir and
// returns the paths written.
func MonthlyFiles(dir string, r *tindahan.MonthlyReport) ([]string, error) {
	receipt := filepath.Join(dir, ReceiptFile(r.Month))
	if err := writeFile(receipt, func(w io.Writer) error { return WriteReceipt(w, r) }); err != nil {
		return nil, err
	}
	sales := filepath.Join(dir, SalesFile(r.Month))
	if err := writeFile(sales, func(w io.Writer) error { return WriteSales(w, r) }); err != nil {
		return nil, err
	}
	return []string{receipt, sales}, nil
}

// YearlyFiles writes the yearly export into dir and returns the paths written.
func YearlyFiles(dir string, r *tindahan.YearlyReport) ([]string, error) {
	path := filepath.Join(dir, YearlyFile(r.Year))
	if err := writeFile(path, func(w io.Writer) error { return WriteYearly(w, r) }); err != nil {
		return nil, err
	}
	return []string{path}, nil
}
