// Package export renders the guideline catalog into documents: a JSON dump of
// every category and a Markdown index suitable as a table of contents.
package export

import (
	"io"

	json "github.com/goccy/go-json"

	guideline "github.com/apidesign/guideline"
)

// categoryDoc is the JSON shape of one category block.
type categoryDoc struct {
	Category string            `json:"category"`
	Entries  []guideline.Entry `json:"entries"`
}

// JSON writes the whole catalog as an indented JSON array, categories in
// declaration order. Output is deterministic across calls.
func JSON(w io.Writer) error {
	docs := make([]categoryDoc, 0)
	for c := range guideline.Categories() {
		d := categoryDoc{Category: c.Name(), Entries: make([]guideline.Entry, 0, c.Len())}
		for e := range c.Entries() {
			d.Entries = append(d.Entries, e)
		}
		docs = append(docs, d)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}
