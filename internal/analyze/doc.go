// Package analyze finds annotated subview declarations in Go source.
//
// It uses golang.org/x/tools/go/packages at syntax level to walk struct
// declarations whose doc comment carries a "//subview:" line, and extracts
// a schema.RecordSchema for each: type name, type parameters with their
// constraint text, ordered fields with opaque type text, and the raw
// directive texts with source positions.
//
// Extraction is purely syntactic. Field types and constraints are rendered
// back to text and relayed verbatim; nothing downstream interprets them.
package analyze
