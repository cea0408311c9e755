package export

import (
	"bufio"
	"fmt"
	"io"

	guideline "github.com/apidesign/guideline"
)

// MarkdownIndex writes a table of contents for the catalog: one section per
// category, one bullet per guideline linking to its first reference URL.
// Categories with no guidelines still get a section, so the index reflects
// the full category list.
func MarkdownIndex(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# API guideline index")
	for c := range guideline.Categories() {
		fmt.Fprintf(bw, "\n## %s\n\n", c.Name())
		if c.Len() == 0 {
			fmt.Fprintln(bw, "_no guidelines in this category_")
			continue
		}
		for e := range c.Entries() {
			if len(e.Links) > 0 {
				fmt.Fprintf(bw, "- [%s](%s): %s\n", e.ID, e.Links[0], e.Title)
			} else {
				fmt.Fprintf(bw, "- %s: %s\n", e.ID, e.Title)
			}
		}
	}
	return bw.Flush()
}
