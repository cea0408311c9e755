package guideline

// Package guideline provides:
//
// - A fixed catalog of API design guidelines, grouped into topical categories
// - Lookup by stable identifier (Lookup) and by category (LookupCategory)
// - Ordered, restartable enumeration via Categories/All (iter.Seq)
// - Exported identifier and category-name constants forming the versioned public contract
//
// Design policy:
// - Keep only public APIs in the root package; put the embedded data and its decoding under internal/catalog.
// - Place rendering helpers under export/ and the CLI under cmd/guideline.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  e, ok := guideline.Lookup(guideline.CBuilder)
//  if ok {
//      fmt.Println(e.Title)
//  }
//
//  for c := range guideline.Categories() {
//      fmt.Println(c.Name(), c.Len())
//  }
//
// The catalog is built once from embedded data and never mutated, so every
// operation is safe for unrestricted concurrent use. A lookup miss is a normal
// ok == false result, never an error and never a panic.
