package guideline

import "iter"

// Entry is a single guideline: a stable symbolic identifier plus the human
// guidance attached to it. Identifiers are uppercase-with-hyphen codes such as
// "C-CASE" and are unique across the whole catalog, not just per category, so
// they can be quoted in code comments and external discussions.
type Entry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Links       []string `json:"links,omitempty"`
}

// Category is a named, ordered group of guidelines. A category may hold zero
// guidelines; emptiness is distinct from the category not existing.
type Category struct {
	name    string
	entries []Entry
}

// Name returns the category name, e.g. "naming".
func (c Category) Name() string { return c.name }

// Len reports the number of guidelines in the category.
func (c Category) Len() int { return len(c.entries) }

// Entries yields the category's guidelines in declaration order. The sequence
// is restartable: ranging over it again replays the same entries.
func (c Category) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range c.entries {
			if !yield(e) {
				return
			}
		}
	}
}
