package tindahan

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// QueryBook evaluates a jsonpath expression against the serialized book
// document, e.g. $.items["rice"].priceHistory[-1:].price.amount.
func QueryBook(b *Book, path string) (any, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("could not serialize book: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("could not reparse book: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return jval, nil
}
