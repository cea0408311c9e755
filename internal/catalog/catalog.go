// Package catalog holds the embedded guideline data together with the
// decoding and validation machinery behind the public registry. Consumers
// should use the root package; nothing here is part of the public contract.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is the wire form of a single guideline in the catalog document.
type Entry struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Links       []string `yaml:"links"`
}

// Category is the wire form of one category block. Entries may be empty; an
// empty category is a valid, queryable group, distinct from an absent one.
type Category struct {
	Name    string  `yaml:"category"`
	Entries []Entry `yaml:"entries"`
}

type document struct {
	Categories []Category `yaml:"categories"`
}

// idPattern matches the published identifier shape: uppercase words joined by
// hyphens, e.g. "C-CASE" or "C-WORD-ORDER".
var idPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*(-[A-Z0-9]+)+$`)

// Decode parses a catalog document and validates it. Category order and entry
// order within a category follow the document.
func Decode(data []byte) ([]Category, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := validate(doc.Categories); err != nil {
		return nil, err
	}
	return doc.Categories, nil
}

// validate enforces the catalog invariants: category names are unique,
// identifiers are well-formed and unique across the whole document (not just
// per category), and every entry carries a title and description.
func validate(cats []Category) error {
	seenCat := make(map[string]bool, len(cats))
	seenID := make(map[string]string)
	for _, c := range cats {
		if c.Name == "" {
			return fmt.Errorf("catalog: category with empty name")
		}
		if seenCat[c.Name] {
			return fmt.Errorf("catalog: duplicate category %q", c.Name)
		}
		seenCat[c.Name] = true
		for _, e := range c.Entries {
			if !idPattern.MatchString(e.ID) {
				return fmt.Errorf("catalog: malformed identifier %q in category %q", e.ID, c.Name)
			}
			if prev, dup := seenID[e.ID]; dup {
				return fmt.Errorf("catalog: identifier %q declared in both %q and %q", e.ID, prev, c.Name)
			}
			seenID[e.ID] = c.Name
			if e.Title == "" {
				return fmt.Errorf("catalog: entry %q has no title", e.ID)
			}
			if strings.TrimSpace(e.Description) == "" {
				return fmt.Errorf("catalog: entry %q has no description", e.ID)
			}
		}
	}
	return nil
}
