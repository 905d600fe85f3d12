package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kgarduque/tindahan"
)

type addCmd struct {
	name  string
	price float64
	qty   int
	date  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an item or restock an existing one" }
func (*addCmd) Usage() string {
	return `tindahan add -name <item> -price <price> -qty <qty> [-date <date>]

  Adds a new item to the ledger, or restocks an existing one (matched by
  name, case-insensitively). The quantity is added to the date's month;
  the price is appended to the price history only when it changed.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name")
	f.Float64Var(&c.price, "price", 0, "Cost price per unit")
	f.IntVar(&c.qty, "qty", 0, "Quantity to add")
	f.StringVar(&c.date, "date", tindahan.Today().String(), "Date of the restock (YYYY-MM-DD)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	in := tindahan.AddItemInput{Name: c.name, Price: c.price, Qty: c.qty, Date: c.date}
	it, err := in.Apply(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if tindahan.IsValidation(err) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	if err := saveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	m := tindahan.MustDate(c.date).Month()
	fmt.Printf("Added %q: price %s, stock %d in %s\n", it.Name, it.CurrentPrice(), it.Stock(m), m)
	return subcommands.ExitSuccess
}
