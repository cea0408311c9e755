package catalog

import (
	_ "embed"
	"sync"
)

//go:embed data/guidelines.yaml
var guidelinesYAML []byte

// Compiled returns the embedded catalog, decoded and validated exactly once.
// The document is compiled into the binary, so a decode failure is a defect in
// the shipped data and panics, with the same contract as regexp.MustCompile.
var Compiled = sync.OnceValue(func() []Category {
	cats, err := Decode(guidelinesYAML)
	if err != nil {
		panic(err)
	}
	return cats
})
