package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kgarduque/tindahan"
	"github.com/kgarduque/tindahan/renderer"
)

type monthlyCmd struct {
	month string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display a monthly shop report" }
func (*monthlyCmd) Usage() string {
	return `tindahan monthly [-month <month>]

  Displays the stock valuation and the sales of a month, and saves the
  month's totals as a snapshot for the yearly report.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", tindahan.Today().Month().String(), "Month to report (YYYY-MM)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := tindahan.ParseMonth(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	r := b.MonthlyReport(m)
	// Reporting writes the snapshot, so the book changed.
	if err := saveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderMonthly(r))
	return subcommands.ExitSuccess
}
