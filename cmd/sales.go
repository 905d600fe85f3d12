package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/kgarduque/tindahan"
)

type salesCmd struct {
	month string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales of a month" }
func (*salesCmd) Usage() string {
	return `tindahan sales [-month <month>]

  Lists the sales of a month (current month by default), oldest first.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", tindahan.Today().Month().String(), "Month to list (YYYY-MM)")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	sales := b.SalesForMonth(m)
	if len(sales) == 0 {
		fmt.Printf("No sales in %s.\n", m)
		return subcommands.ExitSuccess
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Sales of %s\n\n", m)
	fmt.Fprintln(&sb, "| Date | Buyer | Item | Qty | Price | Total | Profit |")
	fmt.Fprintln(&sb, "|---|---|---|---:|---:|---:|---:|")
	for _, s := range sales {
		profit := s.Profit.SignedString()
		if s.ProfitIsManual {
			profit += " (manual)"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %d | %s | %s | %s |\n",
			s.Date, s.Buyer, s.Item, s.Qty, s.Price, s.Total, profit)
	}
	printMarkdown(sb.String())
	return subcommands.ExitSuccess
}
