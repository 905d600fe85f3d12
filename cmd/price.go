package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/google/subcommands"

	"github.com/kgarduque/tindahan"
)

type priceCmd struct {
	name  string
	price float64
	date  string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "record a new cost price for an item" }
func (*priceCmd) Usage() string {
	return `tindahan price -name <item> -price <price> [-date <date>]

  Appends a price entry to the item's history. Unlike add, the entry is
  recorded even when the price did not change, so confirmations of a
  price stay visible in the history.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name")
	f.Float64Var(&c.price, "price", 0, "Cost price per unit")
	f.StringVar(&c.date, "date", tindahan.Today().String(), "Date of the change (YYYY-MM-DD)")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.price < 0 || math.IsNaN(c.price) || math.IsInf(c.price, 0) {
		fmt.Fprintln(os.Stderr, "Error: price must be a finite non-negative number")
		return subcommands.ExitUsageError
	}
	on, err := tindahan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := b.UpdatePrice(c.name, tindahan.M(c.price, b.Currency), on); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if tindahan.IsNotFound(err) || tindahan.IsValidation(err) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	if err := saveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %q to %s on %s\n", c.name, b.Item(c.name).CurrentPrice(), on)
	return subcommands.ExitSuccess
}
