package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kgarduque/tindahan"
)

type qtyCmd struct {
	name   string
	month  string
	date   string
	set    int
	adjust int
	hasSet bool
}

func (*qtyCmd) Name() string     { return "qty" }
func (*qtyCmd) Synopsis() string { return "set or adjust an item's stock for a month" }
func (*qtyCmd) Usage() string {
	return `tindahan qty -name <item> (-set <qty> | -adjust <delta>) [-month <month>] [-date <date>]

  Sets a month's stock to an absolute value, or nudges it by a delta
  (as the +/- steppers of a counting UI do). Stock never goes below
  zero; out-of-range values clamp instead of failing.
`
}

func (c *qtyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name")
	f.StringVar(&c.month, "month", "", "Month to change (YYYY-MM, defaults to the date's month)")
	f.StringVar(&c.date, "date", tindahan.Today().String(), "Date of the change (YYYY-MM-DD)")
	f.IntVar(&c.set, "set", 0, "Absolute stock value")
	f.IntVar(&c.adjust, "adjust", 0, "Delta to apply to the stock")
}

func (c *qtyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.hasSet = false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "set" {
			c.hasSet = true
		}
	})
	if !c.hasSet && c.adjust == 0 {
		fmt.Fprintln(os.Stderr, "Error: one of -set or -adjust is required")
		return subcommands.ExitUsageError
	}

	on, err := tindahan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	m := on.Month()
	if c.month != "" {
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

	if c.hasSet {
		err = b.SetQuantity(c.name, m, c.set, on, tindahan.SourceQtyForm)
	} else {
		err = b.AdjustQuantity(c.name, m, c.adjust, on, tindahan.SourceStepper)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if tindahan.IsNotFound(err) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	if err := saveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Stock of %q in %s is now %d\n", c.name, m, b.Item(c.name).Stock(m))
	return subcommands.ExitSuccess
}
