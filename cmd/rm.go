package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete items from the ledger" }
func (*rmCmd) Usage() string {
	return `tindahan rm <item>...

  Deletes items by name (case-insensitive). Past sales of a deleted item
  stay in the books; only the item and its histories are removed.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one item name is required")
		return subcommands.ExitUsageError
	}

	b, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	removed := b.DeleteItems(f.Args()...)
	if removed == 0 {
		fmt.Fprintln(os.Stderr, "No matching item found, nothing deleted.")
		return subcommands.ExitSuccess
	}
	if err := saveBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %d item(s)\n", removed)
	return subcommands.ExitSuccess
}
