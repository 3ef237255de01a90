package resolve

import "subview-generator/internal/schema"

// Fields binds every target field, in declaration order, to a source field
// identity and an effective unpack flag. The source identity is the
// rename_from value if given, otherwise the target field's own name; the
// unpack flag is the field-level override if present, otherwise the
// schema-level default.
//
// All structural conflicts were rejected during directive parsing, so this
// step cannot fail.
func Fields(spec *schema.ConversionSpec) []schema.Binding {
	bindings := make([]schema.Binding, 0, len(spec.Mappings))

	for _, m := range spec.Mappings {
		source := m.Directive.SourceField
		if source == "" {
			source = m.Target.Name
		}

		unpack := spec.Unpack
		if m.Directive.Unpack != nil {
			unpack = *m.Directive.Unpack
		}

		bindings = append(bindings, schema.Binding{
			TargetField: m.Target.Name,
			SourceField: source,
			Unpack:      unpack,
			Type:        m.Target.Type,
		})
	}

	return bindings
}
