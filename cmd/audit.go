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

// auditCmd shows the append-only stock movement log of an item.
type auditCmd struct {
	month string
}

func (*auditCmd) Name() string     { return "audit" }
func (*auditCmd) Synopsis() string { return "show an item's stock movement log" }
func (*auditCmd) Usage() string {
	return `tindahan audit <item> [-month <month>]

  Shows every recorded stock movement of an item: restocks, manual
  corrections, stepper nudges and sales. The log is append-only and
  purely informational.
`
}

func (c *auditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Only movements of this month (YYYY-MM)")
}

func (c *auditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item name is required")
		return subcommands.ExitUsageError
	}
	var m tindahan.Month
	if c.month != "" {
		var err error
		if m, err = tindahan.ParseMonth(c.month); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
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
	fmt.Fprintf(&sb, "# Stock movements of %s\n\n", it.Name)
	fmt.Fprintln(&sb, "| Date | Month | Delta | Source |")
	fmt.Fprintln(&sb, "|---|---|---:|---|")
	for _, q := range it.QtyHistory {
		if c.month != "" && q.Month != m {
			continue
		}
		fmt.Fprintf(&sb, "| %s | %s | %+d | %s |\n", q.Date, q.Month, q.Delta, q.Source)
	}
	printMarkdown(sb.String())
	return subcommands.ExitSuccess
}
