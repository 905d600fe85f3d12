package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/kgarduque/tindahan"
)

// WorkbookFile returns the conventional file name for a month's workbook.
func WorkbookFile(m tindahan.Month) string { return fmt.Sprintf("report_%s.xlsx", m) }

// MonthlyWorkbook writes a month's report as an xlsx workbook with a Stock
// sheet and a Sales sheet, and returns the path written.
func MonthlyWorkbook(dir string, r *tindahan.MonthlyReport) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const stock = "Stock"
	if err := f.SetSheetName("Sheet1", stock); err != nil {
		return "", err
	}
	f.SetCellValue(stock, "A1", "Item")
	f.SetCellValue(stock, "B1", "Qty")
	f.SetCellValue(stock, "C1", "Price")
	f.SetCellValue(stock, "D1", "Value")
	for i, line := range r.Stock {
		n := i + 2
		f.SetCellValue(stock, "A"+fmt.Sprint(n), line.Name)
		f.SetCellValue(stock, "B"+fmt.Sprint(n), line.Qty)
		f.SetCellValue(stock, "C"+fmt.Sprint(n), line.Price.InexactFloat64())
		f.SetCellValue(stock, "D"+fmt.Sprint(n), line.Total.InexactFloat64())
	}
	last := len(r.Stock) + 2
	f.SetCellValue(stock, "A"+fmt.Sprint(last), "Total")
	f.SetCellValue(stock, "D"+fmt.Sprint(last), r.ItemsTotal.InexactFloat64())

	const sales = "Sales"
	if _, err := f.NewSheet(sales); err != nil {
		return "", err
	}
	for i, h := range []string{"Date", "Buyer", "Address", "Contact", "Item", "Qty", "Price", "Total", "Profit"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sales, cell, h)
	}
	for i, s := range r.Sales {
		n := i + 2
		f.SetCellValue(sales, "A"+fmt.Sprint(n), s.Date.String())
		f.SetCellValue(sales, "B"+fmt.Sprint(n), s.Buyer)
		f.SetCellValue(sales, "C"+fmt.Sprint(n), s.Address)
		f.SetCellValue(sales, "D"+fmt.Sprint(n), s.Contact)
		f.SetCellValue(sales, "E"+fmt.Sprint(n), s.Item)
		f.SetCellValue(sales, "F"+fmt.Sprint(n), s.Qty)
		f.SetCellValue(sales, "G"+fmt.Sprint(n), s.Price.InexactFloat64())
		f.SetCellValue(sales, "H"+fmt.Sprint(n), s.Total.InexactFloat64())
		f.SetCellValue(sales, "I"+fmt.Sprint(n), s.Profit.InexactFloat64())
	}
	last = len(r.Sales) + 2
	f.SetCellValue(sales, "A"+fmt.Sprint(last), "Total")
	f.SetCellValue(sales, "H"+fmt.Sprint(last), r.SalesTotal.InexactFloat64())
	f.SetCellValue(sales, "I"+fmt.Sprint(last), r.SalesProfit.InexactFloat64())

	path := filepath.Join(dir, WorkbookFile(r.Month))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("could not write workbook %q: %w", path, err)
	}
	return path, nil
}
