package guideline

import (
	"iter"
	"sync"

	"github.com/apidesign/guideline/internal/catalog"
)

// registry is the compiled lookup structure over the embedded catalog. It is
// built once and never mutated afterwards, which is what makes the public
// surface safe for unsynchronized concurrent reads.
type registry struct {
	categories []Category
	byName     map[string]int
	byID       map[string]Entry
}

var compiled = sync.OnceValue(func() *registry {
	cats := catalog.Compiled()
	r := &registry{
		categories: make([]Category, 0, len(cats)),
		byName:     make(map[string]int, len(cats)),
		byID:       make(map[string]Entry),
	}
	for _, c := range cats {
		entries := make([]Entry, 0, len(c.Entries))
		for _, e := range c.Entries {
			entry := Entry{
				ID:          e.ID,
				Title:       e.Title,
				Category:    c.Name,
				Description: e.Description,
				Links:       e.Links,
			}
			entries = append(entries, entry)
			r.byID[e.ID] = entry
		}
		r.byName[c.Name] = len(r.categories)
		r.categories = append(r.categories, Category{name: c.Name, entries: entries})
	}
	return r
})

// Lookup returns the guideline with the given identifier. Matching is exact;
// a miss reports ok == false rather than an error.
func Lookup(id string) (Entry, bool) {
	e, ok := compiled().byID[id]
	return e, ok
}

// LookupCategory returns the named category. An unknown name reports
// ok == false; a known category that happens to hold no guidelines reports
// ok == true with a zero Len, so the two cases stay distinguishable.
func LookupCategory(name string) (Category, bool) {
	r := compiled()
	i, ok := r.byName[name]
	if !ok {
		return Category{}, false
	}
	return r.categories[i], true
}

// Categories yields every category in declaration order. The order is fixed
// and identical across calls.
func Categories() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		for _, c := range compiled().categories {
			if !yield(c) {
				return
			}
		}
	}
}

// All yields every guideline, walking categories in declaration order and
// entries in declaration order within each category.
func All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, c := range compiled().categories {
			for _, e := range c.entries {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Len reports the total number of guidelines across all categories.
func Len() int { return len(compiled().byID) }
