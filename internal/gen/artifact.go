package gen

import (
	"sort"
	"strings"

	"subview-generator/internal/common"
	"subview-generator/internal/schema"
)

// RuntimeImportPath is the package generated fallible conversions import
// for the missing-field error type.
const RuntimeImportPath = "subview-generator/subview"

// ArtifactKind distinguishes the two conversion shapes.
type ArtifactKind int

const (
	// Infallible - a pure constructor that always succeeds.
	Infallible ArtifactKind = iota
	// Fallible - a constructor that unwraps optional fields and can fail.
	Fallible
)

// Artifact is the fully resolved description of one conversion, consumed by
// the renderer and discarded after the generation pass.
type Artifact struct {
	Kind ArtifactKind
	// Package is the target struct's package name; generated code lives
	// alongside the target so the constructor reads naturally at call sites.
	Package string
	// Dir is the directory the generated file belongs in.
	Dir string
	// Filename of the generated file.
	Filename string
	// FuncName of the conversion entry point.
	FuncName string
	// TargetName is the target struct's type name.
	TargetName string
	// TypeParams are the target's declared type parameters; all of them
	// stay generic on the emitted function.
	TypeParams []schema.TypeParam
	// Lifetimes are opaque scope annotations relayed from the schema. The
	// Go renderer has no declaration slot for them; they are carried for
	// back ends of hosts that have them.
	Lifetimes []string
	// MakeRefs marks a borrowing conversion: the function takes a pointer
	// to the source and every field holds a pointer into it.
	MakeRefs bool
	// Source is the resolved source reference.
	Source schema.SourceRef
	// Imports needed by the generated file, sorted by path.
	Imports []ImportSpec
	// Bindings are the ordered field moves.
	Bindings []schema.Binding
}

// ImportSpec is one import of the generated file.
type ImportSpec struct {
	// Alias is set when the package name differs from the last path element.
	Alias string
	Path  string
}

// Filename returns the generated file name for a target struct. Two targets
// whose names differ only in case map to the same file; plan rejects that
// before generation.
func Filename(targetName string) string {
	return strings.ToLower(targetName) + "_subview.go"
}

// Build assembles the Artifact for one resolved schema.
func Build(rs *schema.RecordSchema, ref schema.SourceRef, bindings []schema.Binding, makeRefs bool) *Artifact {
	a := &Artifact{
		Kind:       Infallible,
		Package:    rs.PkgName,
		Dir:        rs.Dir,
		Filename:   Filename(rs.Name),
		FuncName:   rs.Name + "From" + ref.BaseName(),
		TargetName: rs.Name,
		TypeParams: rs.TypeParams,
		Lifetimes:  rs.Lifetimes,
		MakeRefs:   makeRefs,
		Source:     ref,
		Bindings:   bindings,
	}

	for _, b := range bindings {
		if b.Unpack {
			a.Kind = Fallible
			break
		}
	}

	imports := make(map[string]ImportSpec)

	addQualifier(imports, ref.Qualifier(), rs.Imports)
	for _, arg := range ref.Args {
		if arg.Kind == schema.KindBound {
			for _, q := range qualifiersIn(arg.Expr) {
				addQualifier(imports, q, rs.Imports)
			}
		}
	}

	if a.Kind == Fallible {
		imports[RuntimeImportPath] = ImportSpec{Path: RuntimeImportPath}
	}

	for _, imp := range imports {
		a.Imports = append(a.Imports, imp)
	}

	sort.Slice(a.Imports, func(i, j int) bool {
		return a.Imports[i].Path < a.Imports[j].Path
	})

	return a
}

// addQualifier records the import behind a package qualifier, aliasing it
// when the qualifier is not the path's last element.
func addQualifier(imports map[string]ImportSpec, qualifier string, known map[string]string) {
	if qualifier == "" {
		return
	}

	path, ok := known[qualifier]
	if !ok {
		// Unknown qualifiers are relayed as-is; the host compiler reports
		// them when it builds the emitted file.
		return
	}

	spec := ImportSpec{Path: path}
	if common.PkgAlias(path) != qualifier {
		spec.Alias = qualifier
	}

	imports[path] = spec
}

// qualifiersIn extracts the package qualifiers of qualified identifiers in
// an opaque type expression, e.g. "map[string]color.RGBA" yields "color".
// The expression itself is never interpreted beyond this lexical scan.
func qualifiersIn(expr string) []string {
	var quals []string

	isIdentByte := func(c byte) bool {
		return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
	}

	for i := 0; i < len(expr); i++ {
		if expr[i] != '.' {
			continue
		}

		j := i
		for j > 0 && isIdentByte(expr[j-1]) {
			j--
		}

		if j < i && !(expr[j] >= '0' && expr[j] <= '9') {
			quals = append(quals, expr[j:i])
		}
	}

	return quals
}
