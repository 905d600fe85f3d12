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

type itemsCmd struct {
	filter string
	month  string
}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list items with price and stock" }
func (*itemsCmd) Usage() string {
	return `tindahan items [-filter <substring>] [-month <month>]

  Lists the items of the ledger with their current price and the stock
  of the given month (current month by default).
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter, "filter", "", "Only items whose name contains this (case-insensitive)")
	f.StringVar(&c.month, "month", tindahan.Today().Month().String(), "Month for the stock column (YYYY-MM)")
}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Items (%s)\n\n", m)
	fmt.Fprintln(&sb, "| Item | Price | Stock |")
	fmt.Fprintln(&sb, "|---|---:|---:|")
	n := 0
	for _, it := range b.FindItems(c.filter) {
		fmt.Fprintf(&sb, "| %s | %s | %d |\n", it.Name, it.CurrentPrice(), it.Stock(m))
		n++
	}
	if n == 0 {
		fmt.Println("No items.")
		return subcommands.ExitSuccess
	}
	printMarkdown(sb.String())
	return subcommands.ExitSuccess
}
