package directive

import (
	"fmt"
	"strings"
	"unicode"

	"subview-generator/internal/common"
	"subview-generator/internal/diagnostic"
	"subview-generator/internal/schema"
)

// Recognized struct-level keys.
const (
	KeyFromType = "from_type"
	KeyUnpack   = "unpack"
	KeyMakeRefs = "make_refs"
	KeyRename   = "rename_from"
)

// Parse builds an unresolved ConversionSpec from a schema's raw directives.
// The returned diagnostics must be checked before using the spec; a schema
// with any error diagnostic produces no artifact.
func Parse(rs *schema.RecordSchema) (*schema.ConversionSpec, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	spec := &schema.ConversionSpec{}
	parseStructDirective(rs, spec, &diags)

	for _, field := range rs.Fields {
		md := parseFieldDirective(rs, field, &diags)
		spec.Mappings = append(spec.Mappings, schema.FieldMapping{
			Target:    field,
			Directive: md,
		})
	}

	return spec, diags
}

func parseStructDirective(rs *schema.RecordSchema, spec *schema.ConversionSpec, diags *diagnostic.Diagnostics) {
	pos := rs.Directive.Pos

	tokens, err := splitTokens(rs.Directive.Text)
	if err != nil {
		diags.AddError(diagnostic.CodeMalformedDirective, err.Error(), rs.Name, "", pos)
		return
	}

	seen := make(map[string]bool)

	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			diags.AddError(diagnostic.CodeMalformedDirective,
				fmt.Sprintf("expected key=value, got %q", tok), rs.Name, "", pos)
			continue
		}

		if seen[key] {
			diags.AddError(diagnostic.CodeMalformedDirective,
				fmt.Sprintf("duplicate key %q", key), rs.Name, "", pos)
			continue
		}
		seen[key] = true

		value, err := unquote(value)
		if err != nil {
			diags.AddError(diagnostic.CodeMalformedDirective,
				fmt.Sprintf("key %q: %v", key, err), rs.Name, "", pos)
			continue
		}

		switch key {
		case KeyFromType:
			spec.FromType = value
		case KeyUnpack:
			b, err := parseBool(value)
			if err != nil {
				diags.AddError(diagnostic.CodeMalformedDirective,
					fmt.Sprintf("key %q: %v", key, err), rs.Name, "", pos)
				continue
			}

			spec.Unpack = b
		case KeyMakeRefs:
			b, err := parseBool(value)
			if err != nil {
				diags.AddError(diagnostic.CodeMalformedDirective,
					fmt.Sprintf("key %q: %v", key, err), rs.Name, "", pos)
				continue
			}

			spec.MakeRefs = b
		default:
			diags.AddError(diagnostic.CodeMalformedDirective,
				fmt.Sprintf("unknown key %q", key), rs.Name, "", pos)
		}
	}

	if spec.FromType == "" {
		diags.AddError(diagnostic.CodeMissingFromType,
			"required key \"from_type\" is absent", rs.Name, "", pos)
	}
}

func parseFieldDirective(rs *schema.RecordSchema, field schema.FieldDecl, diags *diagnostic.Diagnostics) schema.MappingDirective {
	var md schema.MappingDirective

	if field.Directive.Text == "" {
		return md
	}

	pos := field.Directive.Pos
	seen := make(map[string]bool)

	for _, opt := range strings.Split(field.Directive.Text, ",") {
		opt = strings.TrimSpace(opt)

		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			diags.AddError(diagnostic.CodeMalformedDirective,
				fmt.Sprintf("expected key=value, got %q", opt), rs.Name, field.Name, pos)
			continue
		}

		if seen[key] {
			diags.AddError(diagnostic.CodeConflictingFieldDirective,
				fmt.Sprintf("key %q given more than once", key), rs.Name, field.Name, pos)
			continue
		}
		seen[key] = true

		switch key {
		case KeyRename:
			if !common.IsIdentifier(value) {
				diags.AddError(diagnostic.CodeMalformedDirective,
					fmt.Sprintf("rename_from value %q is not an identifier", value), rs.Name, field.Name, pos)
				continue
			}

			md.SourceField = value
		case KeyUnpack:
			b, err := parseBool(value)
			if err != nil {
				diags.AddError(diagnostic.CodeMalformedDirective,
					fmt.Sprintf("key %q: %v", key, err), rs.Name, field.Name, pos)
				continue
			}

			md.Unpack = &b
		default:
			diags.AddError(diagnostic.CodeMalformedDirective,
				fmt.Sprintf("unknown key %q", key), rs.Name, field.Name, pos)
		}
	}

	return md
}

// splitTokens splits a struct-level directive into whitespace-separated
// tokens, keeping double-quoted spans intact.
func splitTokens(s string) ([]string, error) {
	var tokens []string
	var b strings.Builder

	inQuote := false

	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			b.WriteRune(r)
		case !inQuote && unicode.IsSpace(r):
			if b.Len() > 0 {
				tokens = append(tokens, b.String())
				b.Reset()
			}
		default:
			b.WriteRune(r)
		}
	}

	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}

	if b.Len() > 0 {
		tokens = append(tokens, b.String())
	}

	return tokens, nil
}

// unquote strips a fully double-quoted value. Unquoted values pass through.
func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		if strings.Contains(s, `"`) {
			return "", fmt.Errorf("stray quote in %q", s)
		}

		return s, nil
	}

	if len(s) < 2 || !strings.HasSuffix(s, `"`) {
		return "", fmt.Errorf("unterminated quote in %q", s)
	}

	inner := s[1 : len(s)-1]
	if strings.Contains(inner, `"`) {
		return "", fmt.Errorf("stray quote in %q", s)
	}

	return inner, nil
}

// parseBool accepts exactly "true" or "false". The looser forms that
// strconv.ParseBool allows are rejected to keep directives unambiguous.
func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("expected true or false, got %q", s)
	}
}
