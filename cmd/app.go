// Package cmd implements the CLI application to keep a shop's books.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kgarduque/tindahan"
)

// Commands lists every subcommand of the application. A main package ranges
// over it to register them, and so does the shell completion predictor.
var Commands = []subcommands.Command{
	&addCmd{},
	&priceCmd{},
	&qtyCmd{},
	&rmCmd{},
	&itemsCmd{},
	&historyCmd{},
	&auditCmd{},
	&sellCmd{},
	&salesCmd{},
	&monthlyCmd{},
	&yearlyCmd{},
	&exportCmd{},
	&queryCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	bookFile *string
	currency *string
	shopName *string
	verbose  *bool
)

func init() {
	// A .env file in the working directory seeds the environment before the
	// flag defaults are computed from it.
	godotenv.Load()
	bookFile = flag.String("file", envOr("TINDAHAN_FILE", "book.json"), "Path to the book file (JSON)")
	currency = flag.String("currency", envOr("TINDAHAN_CURRENCY", tindahan.DefaultCurrency), "Currency for a newly created book")
	shopName = flag.String("shop", os.Getenv("TINDAHAN_SHOP"), "Shop name for a newly created book, shown on reports")
	verbose = flag.Bool("v", false, "Verbose logging")
	logrus.SetLevel(logrus.WarnLevel)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func store() *tindahan.FileStore {
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	fs := tindahan.NewFileStore(*bookFile, *currency)
	fs.Shop = *shopName
	return fs
}

// openBook is the central function to load the book file.
func openBook() (*tindahan.Book, error) {
	return store().Load()
}

// saveBook writes the book back to the app book file.
func saveBook(b *tindahan.Book) error {
	return store().Save(b)
}
