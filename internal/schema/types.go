package schema

import "strings"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind tags a generic argument of a source reference.
type Kind int

const (
	// KindBound marks a concrete type expression baked into generated code.
	KindBound Kind = iota
	// KindFree marks a type parameter passed through still generic.
	KindFree
)

// RecordSchema describes one annotated target struct.
type RecordSchema struct {
	// Name is the struct's type name.
	Name string
	// PkgName is the name of the package the struct is declared in.
	PkgName string
	// Dir is the directory of that package, used for output placement.
	Dir string
	// TypeParams are the struct's declared type parameters, in order.
	TypeParams []TypeParam
	// Lifetimes are opaque scope annotations relayed untouched into the
	// artifact. Go declarations carry none; the field exists for front ends
	// of hosts that have them.
	Lifetimes []string
	// Fields are the struct's declared fields, in order.
	Fields []FieldDecl
	// Directive is the struct-level directive line, without its prefix.
	Directive RawDirective
	// Imports maps package qualifiers visible in the declaring file to
	// import paths, for resolving qualified source references.
	Imports map[string]string
}

// TypeParam is one declared type parameter of the target struct.
type TypeParam struct {
	Name string
	// Constraint is the opaque constraint text, copied verbatim.
	Constraint string
}

// FieldDecl is one declared field of the target struct.
type FieldDecl struct {
	Name string
	// Type is the opaque type text, copied verbatim.
	Type string
	// Directive is the field's `subview` struct tag value, possibly empty.
	Directive RawDirective
}

// RawDirective is unparsed directive text plus its source position.
type RawDirective struct {
	Text string
	Pos  string
}

// IsZero reports whether no directive text was supplied.
func (d RawDirective) IsZero() bool {
	return d.Text == "" && d.Pos == ""
}

// MappingDirective holds the parsed per-field options.
type MappingDirective struct {
	// SourceField is the field to read from, or "" for the target's own name.
	SourceField string
	// Unpack overrides the schema-level unpack flag when non-nil.
	Unpack *bool
}

// FieldMapping pairs one target field with its directive.
type FieldMapping struct {
	Target    FieldDecl
	Directive MappingDirective
}

// ConversionSpec is the parsed, still unresolved directive set for one
// schema. It is built once per target struct, consumed by resolution and
// generation, then discarded.
type ConversionSpec struct {
	// FromType is the raw source reference text.
	FromType string
	// Unpack is the schema-level unpack default.
	Unpack bool
	// MakeRefs makes the conversion borrow from the source instead of
	// copying it: the function takes a pointer and every assignment is a
	// pointer into the source value. Struct-level only.
	MakeRefs bool
	// Mappings holds one entry per target field, in declaration order.
	Mappings []FieldMapping
}

// GenericArg is one argument of a source reference, tagged Free or Bound.
type GenericArg struct {
	Kind Kind
	// Name is the target type parameter named by a free argument.
	Name string
	// Expr is the verbatim type expression of a bound argument.
	Expr string
}

// SourceRef is a resolved source reference: a possibly qualified type name
// plus its ordered generic arguments.
type SourceRef struct {
	Name string
	Args []GenericArg
}

// Qualifier returns the package qualifier of the reference, or "".
func (r SourceRef) Qualifier() string {
	if i := strings.LastIndex(r.Name, "."); i >= 0 {
		return r.Name[:i]
	}

	return ""
}

// BaseName returns the reference name without its package qualifier.
func (r SourceRef) BaseName() string {
	if i := strings.LastIndex(r.Name, "."); i >= 0 {
		return r.Name[i+1:]
	}

	return r.Name
}

// Binding is one fully resolved field move: target field, source identity,
// and the effective unpack flag.
type Binding struct {
	TargetField string
	SourceField string
	Unpack      bool
	// Type is the target field's opaque type text, relayed for back ends
	// that need it.
	Type string
}
