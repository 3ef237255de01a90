package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"subview-generator/internal/schema"
)

// GeneratedFile is one rendered output file.
type GeneratedFile struct {
	// Dir the file belongs in.
	Dir string
	// Filename within Dir.
	Filename string
	// Content is gofmt-formatted Go source.
	Content []byte
}

// templateData holds everything the conversion template needs.
type templateData struct {
	Package        string
	Imports        []ImportSpec
	FuncName       string
	TypeParamsDecl string
	SourceInst     string
	// SrcParam is the src parameter's type: SourceInst, or a pointer to it
	// for borrowing conversions.
	SrcParam   string
	TargetInst string
	Results    string
	Fallible   bool
	MakeRefs   bool
	Checks     []checkData
	Moves      []moveData
}

// checkData is one emitted nil check of a fallible conversion.
type checkData struct {
	SourceField string
	// Zero is the zero-value expression returned alongside the error.
	Zero string
	// Schema and Field are quoted string literals for the error value.
	Schema string
	Field  string
}

// moveData is one field assignment in the composite literal.
type moveData struct {
	Target string
	Expr   string
}

// Render emits the Go source for one artifact. The returned file content is
// formatted; if formatting fails the unformatted content is returned
// together with the error so callers can dump it for debugging.
func Render(a *Artifact) (GeneratedFile, error) {
	data := buildTemplateData(a)

	var buf bytes.Buffer
	if err := conversionTemplate.Execute(&buf, data); err != nil {
		return GeneratedFile{}, fmt.Errorf("rendering %s: %w", a.FuncName, err)
	}

	file := GeneratedFile{
		Dir:      a.Dir,
		Filename: a.Filename,
		Content:  buf.Bytes(),
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return file, fmt.Errorf("formatting %s: %w", a.FuncName, err)
	}

	file.Content = formatted

	return file, nil
}

func buildTemplateData(a *Artifact) *templateData {
	data := &templateData{
		Package:        a.Package,
		Imports:        a.Imports,
		FuncName:       a.FuncName,
		TypeParamsDecl: typeParamsDecl(a),
		SourceInst:     sourceInst(a),
		TargetInst:     targetInst(a),
		Fallible:       a.Kind == Fallible,
		MakeRefs:       a.MakeRefs,
	}

	data.SrcParam = data.SourceInst
	if data.MakeRefs {
		data.SrcParam = "*" + data.SourceInst
	}

	data.Results = data.TargetInst
	if data.Fallible {
		data.Results = "(" + data.TargetInst + ", error)"
	}

	for _, b := range a.Bindings {
		if b.Unpack {
			data.Checks = append(data.Checks, checkData{
				SourceField: b.SourceField,
				Zero:        data.TargetInst + "{}",
				Schema:      strconv.Quote(a.Source.Name),
				Field:       strconv.Quote(b.TargetField),
			})
		}

		expr := "src." + b.SourceField
		switch {
		case b.Unpack && !a.MakeRefs:
			expr = "*" + expr
		case !b.Unpack && a.MakeRefs:
			// An unpack field already is a pointer into the source; a plain
			// field needs its address taken.
			expr = "&" + expr
		}

		data.Moves = append(data.Moves, moveData{
			Target: b.TargetField,
			Expr:   expr,
		})
	}

	return data
}

// typeParamsDecl renders the generated function's type parameter list with
// the constraints declared on the target, e.g. "[T any, U comparable]".
func typeParamsDecl(a *Artifact) string {
	if len(a.TypeParams) == 0 {
		return ""
	}

	parts := make([]string, 0, len(a.TypeParams))
	for _, tp := range a.TypeParams {
		parts = append(parts, tp.Name+" "+tp.Constraint)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// sourceInst renders the source type instantiation: free arguments stay
// type parameters, bound arguments are baked in verbatim.
func sourceInst(a *Artifact) string {
	if len(a.Source.Args) == 0 {
		return a.Source.Name
	}

	parts := make([]string, 0, len(a.Source.Args))
	for _, arg := range a.Source.Args {
		if arg.Kind == schema.KindFree {
			parts = append(parts, arg.Name)
		} else {
			parts = append(parts, arg.Expr)
		}
	}

	return a.Source.Name + "[" + strings.Join(parts, ", ") + "]"
}

func targetInst(a *Artifact) string {
	if len(a.TypeParams) == 0 {
		return a.TargetName
	}

	names := make([]string, 0, len(a.TypeParams))
	for _, tp := range a.TypeParams {
		names = append(names, tp.Name)
	}

	return a.TargetName + "[" + strings.Join(names, ", ") + "]"
}

var conversionTemplate = template.Must(template.New("conversion").Parse(`// Code generated by subview-generator. DO NOT EDIT.

package {{.Package}}

{{if .Imports}}import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

{{end}}// {{.FuncName}} converts {{.SourceInst}} to {{.TargetInst}}.
{{if .Fallible}}// It fails with *subview.MissingFieldError naming the first required field
// that is unset, in field declaration order.
{{end}}{{if .MakeRefs}}// The result holds pointers into src and must not outlive it.
{{end}}func {{.FuncName}}{{.TypeParamsDecl}}(src {{.SrcParam}}) {{.Results}} {
{{range .Checks}}	if src.{{.SourceField}} == nil {
		return {{.Zero}}, &subview.MissingFieldError{Schema: {{.Schema}}, Field: {{.Field}}}
	}
{{end}}	return {{.TargetInst}}{
{{range .Moves}}		{{.Target}}: {{.Expr}},
{{end}}	}{{if .Fallible}}, nil{{end}}
}
`))
