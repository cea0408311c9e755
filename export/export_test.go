package export_test

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	guideline "github.com/apidesign/guideline"
	"github.com/apidesign/guideline/export"
)

func TestJSON_RoundTripsCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.JSON(&buf))

	var docs []struct {
		Category string            `json:"category"`
		Entries  []guideline.Entry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 11)
	assert.Equal(t, guideline.CategoryNaming, docs[0].Category)

	found := false
	for _, e := range docs[0].Entries {
		if e.ID == guideline.CCase {
			found = true
			assert.Equal(t, guideline.CategoryNaming, e.Category)
			assert.NotEmpty(t, e.Description)
		}
	}
	assert.True(t, found, "C-CASE missing from JSON export")
}

func TestJSON_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, export.JSON(&a))
	require.NoError(t, export.JSON(&b))
	assert.Equal(t, a.String(), b.String())
}

func TestMarkdownIndex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.MarkdownIndex(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# API guideline index"))
	for c := range guideline.Categories() {
		assert.Contains(t, out, "\n## "+c.Name()+"\n")
	}
	assert.Contains(t, out, "[C-BUILDER]")
	assert.Contains(t, out, "Builders enable construction of complex values")
}
