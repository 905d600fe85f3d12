package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kgarduque/tindahan"
	"github.com/kgarduque/tindahan/export"
)

type exportCmd struct {
	month string
	year  int
	dir   string
	xlsx  bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write reports to files" }
func (*exportCmd) Usage() string {
	return `tindahan export (-month <month> | -year <year>) [-dir <dir>] [-xlsx]

  Writes a month's receipt and sales ledger as tab-separated files, or a
  year's twelve rows. With -xlsx the month is also written as a workbook.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month to export (YYYY-MM)")
	f.IntVar(&c.year, "year", 0, "Year to export")
	f.StringVar(&c.dir, "dir", ".", "Directory to write into")
	f.BoolVar(&c.xlsx, "xlsx", false, "Also write the month as an xlsx workbook")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.month == "") == (c.year == 0) {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -month or -year is required")
		return subcommands.ExitUsageError
	}

	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var paths []string
	if c.month != "" {
		m, err := tindahan.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		r := b.MonthlyReport(m)
		if err := saveBook(b); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if paths, err = export.MonthlyFiles(c.dir, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.xlsx {
			wb, err := export.MonthlyWorkbook(c.dir, r)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			paths = append(paths, wb)
		}
	} else {
		if paths, err = export.YearlyFiles(c.dir, b.YearlyReport(c.year)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	for _, p := range paths {
		fmt.Printf("Wrote %s\n", p)
	}
	return subcommands.ExitSuccess
}
