package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kgarduque/tindahan"
)

type sellCmd struct {
	date    string
	buyer   string
	address string
	contact string
	item    string
	price   float64
	qty     int
	profit  float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale" }
func (*sellCmd) Usage() string {
	return `tindahan sell -buyer <name> -address <addr> -contact <contact> -item <item> -price <price> -qty <qty> [-date <date>] [-profit <per-unit>]

  Records a sale. Profit is computed from the item's current cost price
  unless -profit provides a manual per-unit figure. The item's stock for
  the sale's month is decremented, never below zero.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", tindahan.Today().String(), "Date of the sale (YYYY-MM-DD)")
	f.StringVar(&c.buyer, "buyer", "", "Buyer name")
	f.StringVar(&c.address, "address", "", "Buyer address")
	f.StringVar(&c.contact, "contact", "", "Buyer contact")
	f.StringVar(&c.item, "item", "", "Item sold")
	f.Float64Var(&c.price, "price", 0, "Selling price per unit")
	f.IntVar(&c.qty, "qty", 0, "Quantity sold")
	f.Float64Var(&c.profit, "profit", 0, "Manual profit per unit, overriding the computed one")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	in := tindahan.RecordSaleInput{
		Date:    c.date,
		Buyer:   c.buyer,
		Address: c.address,
		Contact: c.contact,
		Item:    c.item,
		Price:   c.price,
		Qty:     c.qty,
	}
	manualSet := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "profit" {
			manualSet = true
		}
	})
	if manualSet {
		in.ManualProfitPerUnit = &c.profit
	}

	s, err := in.Apply(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if tindahan.IsValidation(err) || tindahan.IsNotFound(err) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	if err := saveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Sold %d x %s to %s: total %s, profit %s\n", s.Qty, s.Item, s.Buyer, s.Total, s.Profit.SignedString())
	return subcommands.ExitSuccess
}
