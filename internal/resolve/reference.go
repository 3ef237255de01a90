package resolve

import (
	"fmt"
	"strings"

	"subview-generator/internal/common"
	"subview-generator/internal/diagnostic"
	"subview-generator/internal/schema"
)

// FreeMarker prefixes a generic argument that stays a type parameter of the
// generated conversion instead of being baked in as a concrete type.
const FreeMarker = '#'

// Reference parses the spec's from_type text and cross-checks its free
// arguments against the target's declared type parameters.
func Reference(spec *schema.ConversionSpec, rs *schema.RecordSchema) (schema.SourceRef, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	pos := rs.Directive.Pos

	ref, err := parseReference(spec.FromType)
	if err != nil {
		diags.AddError(diagnostic.CodeMalformedDirective,
			fmt.Sprintf("from_type %q: %v", spec.FromType, err), rs.Name, "", pos)
		return schema.SourceRef{}, diags
	}

	declared := make(map[string]int, len(rs.TypeParams))
	for _, tp := range rs.TypeParams {
		declared[tp.Name] = 0
	}

	for _, arg := range ref.Args {
		if arg.Kind != schema.KindFree {
			continue
		}

		if _, ok := declared[arg.Name]; !ok {
			diags.AddError(diagnostic.CodeUnknownGenericParameter,
				fmt.Sprintf("free parameter %c%s is not declared on %s", FreeMarker, arg.Name, rs.Name),
				rs.Name, "", pos)
			continue
		}

		declared[arg.Name]++
	}

	// Declaration order keeps diagnostics deterministic.
	for _, tp := range rs.TypeParams {
		switch n := declared[tp.Name]; {
		case n == 0:
			diags.AddError(diagnostic.CodeArityMismatch,
				fmt.Sprintf("type parameter %s of %s does not appear as a free argument", tp.Name, rs.Name),
				rs.Name, "", pos)
		case n > 1:
			diags.AddError(diagnostic.CodeArityMismatch,
				fmt.Sprintf("type parameter %s of %s appears as a free argument %d times", tp.Name, rs.Name, n),
				rs.Name, "", pos)
		}
	}

	if diags.HasErrors() {
		return schema.SourceRef{}, diags
	}

	return ref, diags
}

// parseReference parses "Name" or "Name<Arg, Arg, ...>". The name may carry
// a package qualifier. Bound argument expressions are kept verbatim.
func parseReference(text string) (schema.SourceRef, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return schema.SourceRef{}, fmt.Errorf("empty reference")
	}

	open := strings.IndexByte(text, '<')
	if open < 0 {
		if !common.IsQualifiedIdentifier(text) {
			return schema.SourceRef{}, fmt.Errorf("%q is not a type name", text)
		}

		return schema.SourceRef{Name: text}, nil
	}

	name := strings.TrimSpace(text[:open])
	if !common.IsQualifiedIdentifier(name) {
		return schema.SourceRef{}, fmt.Errorf("%q is not a type name", name)
	}

	if !strings.HasSuffix(text, ">") {
		return schema.SourceRef{}, fmt.Errorf("missing closing > after argument list")
	}

	inner := text[open+1 : len(text)-1]

	rawArgs, err := splitArgs(inner)
	if err != nil {
		return schema.SourceRef{}, err
	}

	ref := schema.SourceRef{Name: name}

	for _, raw := range rawArgs {
		arg, err := parseArg(raw)
		if err != nil {
			return schema.SourceRef{}, err
		}

		ref.Args = append(ref.Args, arg)
	}

	return ref, nil
}

func parseArg(raw string) (schema.GenericArg, error) {
	if raw == "" {
		return schema.GenericArg{}, fmt.Errorf("empty generic argument")
	}

	if raw[0] == FreeMarker {
		name := raw[1:]
		if !common.IsIdentifier(name) {
			return schema.GenericArg{}, fmt.Errorf("free marker %c must be followed by a type parameter name, got %q", FreeMarker, name)
		}

		return schema.GenericArg{Kind: schema.KindFree, Name: name}, nil
	}

	if strings.ContainsRune(raw, FreeMarker) {
		return schema.GenericArg{}, fmt.Errorf("free marker %c may only start an argument, got %q", FreeMarker, raw)
	}

	return schema.GenericArg{Kind: schema.KindBound, Expr: raw}, nil
}

// splitArgs splits a comma-separated argument list at depth zero, ignoring
// commas nested inside <>, [], (), or {}. Each argument is trimmed.
func splitArgs(s string) ([]string, error) {
	var args []string

	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '[', '(', '{':
			depth++
		case '>', ']', ')', '}':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced brackets in argument list %q", s)
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unbalanced brackets in argument list %q", s)
	}

	args = append(args, strings.TrimSpace(s[start:]))

	return args, nil
}
