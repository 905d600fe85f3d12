package tindahan

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeBook writes the book as one indented JSON document. Map keys are
// emitted sorted, so repeated saves of the same state are byte-identical.
func EncodeBook(w io.Writer, b *Book) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("could not encode book: %w", err)
	}
	return nil
}

// DecodeBook reads a book document and normalizes missing containers, so a
// sparse or hand-edited document still yields a fully usable book.
func DecodeBook(r io.Reader) (*Book, error) {
	var b Book
	dec := json.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("could not decode book: %w", err)
	}
	b.normalize()
	return &b, nil
}
