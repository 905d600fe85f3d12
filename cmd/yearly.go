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

type yearlyCmd struct {
	year int
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display a yearly shop report" }
func (*yearlyCmd) Usage() string {
	return `tindahan yearly [-year <year>]

  Displays the twelve monthly rows of a year. Months with a saved
  snapshot reuse it; the others are computed live and marked as such.
  The yearly report never saves snapshots itself.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", tindahan.Today().Year(), "Year to report")
}

func (c *yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderYearly(b.YearlyReport(c.year)))
	return subcommands.ExitSuccess
}
