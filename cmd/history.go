package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show an item's price history" }
func (*historyCmd) Usage() string {
	return `tindahan history <item>

  Shows the full price history of an item, oldest first.
`
}

func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item name is required")
		return subcommands.ExitUsageError
	}

	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	it := b.Item(f.Arg(0))
	if it == nil {
		fmt.Fprintf(os.Stderr, "Error: item %q not found\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Price history of %s\n\n", it.Name)
	fmt.Fprintln(&sb, "| Date | Price |")
	fmt.Fprintln(&sb, "|---|---:|")
	for _, p := range it.PriceHistory {
		fmt.Fprintf(&sb, "| %s | %s |\n", p.Date, p.Price)
	}
	fmt.Fprintf(&sb, "\nCurrent price: %s\n", it.CurrentPrice())
	printMarkdown(sb.String())
	return subcommands.ExitSuccess
}
