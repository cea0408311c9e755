package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_EmptyCategoryIsValid(t *testing.T) {
	doc := []byte(`
categories:
  - category: naming
    entries:
      - id: C-CASE
        title: Casing conforms to RFC 430
        description: Use UpperCamelCase for type-level constructs.
        links:
          - https://example.invalid/naming
  - category: predictability
    entries: []
`)
	cats, err := Decode(doc)
	require.NoError(t, err)
	require.Len(t, cats, 2)

	assert.Equal(t, "naming", cats[0].Name)
	assert.Len(t, cats[0].Entries, 1)

	// An empty category decodes and stays addressable; it is not dropped.
	assert.Equal(t, "predictability", cats[1].Name)
	assert.Empty(t, cats[1].Entries)
}

func TestDecode_RejectsDuplicateIdentifier(t *testing.T) {
	doc := []byte(`
categories:
  - category: naming
    entries:
      - id: C-CASE
        title: one
        description: first declaration
  - category: type-safety
    entries:
      - id: C-CASE
        title: two
        description: second declaration
`)
	_, err := Decode(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `identifier "C-CASE"`)
}

func TestDecode_RejectsDuplicateCategory(t *testing.T) {
	doc := []byte(`
categories:
  - category: naming
    entries: []
  - category: naming
    entries: []
`)
	_, err := Decode(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate category "naming"`)
}

func TestDecode_RejectsMalformedIdentifier(t *testing.T) {
	for _, id := range []string{"c-case", "C_CASE", "CCASE", "C-", "C-case"} {
		doc := []byte(`
categories:
  - category: naming
    entries:
      - id: ` + id + `
        title: t
        description: d
`)
		_, err := Decode(doc)
		assert.Error(t, err, "identifier %q should be rejected", id)
	}
}

func TestDecode_RejectsMissingProse(t *testing.T) {
	doc := []byte(`
categories:
  - category: naming
    entries:
      - id: C-CASE
        title: ""
        description: d
`)
	_, err := Decode(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no title")
}

func TestCompiled_EmbeddedCatalog(t *testing.T) {
	var cats []Category
	require.NotPanics(t, func() { cats = Compiled() })
	require.Len(t, cats, 11)
	assert.Equal(t, "naming", cats[0].Name)
	assert.Equal(t, "macros", cats[10].Name)

	total := 0
	for _, c := range cats {
		total += len(c.Entries)
	}
	assert.Equal(t, 54, total)
}
