package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subview-generator/internal/diagnostic"
	"subview-generator/internal/schema"
)

func targetWith(params ...schema.TypeParam) *schema.RecordSchema {
	return &schema.RecordSchema{
		Name:       "Foo",
		TypeParams: params,
		Directive:  schema.RawDirective{Pos: "report/types.go:4"},
	}
}

func TestReference_PlainName(t *testing.T) {
	spec := &schema.ConversionSpec{FromType: "Bar"}

	ref, diags := Reference(spec, targetWith())
	require.True(t, diags.IsValid(), "unexpected diagnostics: %v", diags.Error())

	assert.Equal(t, "Bar", ref.Name)
	assert.Empty(t, ref.Args)
	assert.Empty(t, ref.Qualifier())
	assert.Equal(t, "Bar", ref.BaseName())
}

func TestReference_QualifiedName(t *testing.T) {
	spec := &schema.ConversionSpec{FromType: "parser.Document"}

	ref, diags := Reference(spec, targetWith())
	require.True(t, diags.IsValid())

	assert.Equal(t, "parser", ref.Qualifier())
	assert.Equal(t, "Document", ref.BaseName())
}

func TestReference_FreeAndBound(t *testing.T) {
	spec := &schema.ConversionSpec{FromType: "Bar<#T, uint32>"}

	ref, diags := Reference(spec, targetWith(schema.TypeParam{Name: "T", Constraint: "any"}))
	require.True(t, diags.IsValid(), "unexpected diagnostics: %v", diags.Error())

	require.Len(t, ref.Args, 2)
	assert.Equal(t, schema.KindFree, ref.Args[0].Kind)
	assert.Equal(t, "T", ref.Args[0].Name)
	assert.Equal(t, schema.KindBound, ref.Args[1].Kind)
	assert.Equal(t, "uint32", ref.Args[1].Expr)
}

func TestReference_NestedBoundExpression(t *testing.T) {
	spec := &schema.ConversionSpec{FromType: "Bar< map[string][]int , #U >"}

	ref, diags := Reference(spec, targetWith(schema.TypeParam{Name: "U", Constraint: "comparable"}))
	require.True(t, diags.IsValid(), "unexpected diagnostics: %v", diags.Error())

	require.Len(t, ref.Args, 2)
	assert.Equal(t, "map[string][]int", ref.Args[0].Expr)
	assert.Equal(t, "U", ref.Args[1].Name)
}

func TestReference_UnknownFreeParameter(t *testing.T) {
	spec := &schema.ConversionSpec{FromType: "Bar<#T>"}

	_, diags := Reference(spec, targetWith())
	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeUnknownGenericParameter, diags.Errors[0].Code)
}

func TestReference_ArityMismatch(t *testing.T) {
	tests := []struct {
		name     string
		fromType string
	}{
		{"missing declared parameter", "Bar<uint32>"},
		{"no argument list at all", "Bar"},
		{"duplicated free parameter", "Bar<#T, #T>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &schema.ConversionSpec{FromType: tt.fromType}

			_, diags := Reference(spec, targetWith(schema.TypeParam{Name: "T", Constraint: "any"}))
			require.True(t, diags.HasErrors())
			assert.Equal(t, diagnostic.CodeArityMismatch, diags.Errors[0].Code)
			assert.Equal(t, "Foo", diags.Errors[0].Schema)
		})
	}
}

func TestReference_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		fromType string
	}{
		{"empty", ""},
		{"not a name", "123"},
		{"unterminated list", "Bar<#T"},
		{"unbalanced nesting", "Bar<map[string]int>>"},
		{"empty argument", "Bar<#T,>"},
		{"bare free marker", "Bar<#>"},
		{"marker inside expression", "Bar<[]#T>"},
		{"space in name", "B ar<#T>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &schema.ConversionSpec{FromType: tt.fromType}

			_, diags := Reference(spec, targetWith(schema.TypeParam{Name: "T", Constraint: "any"}))
			require.True(t, diags.HasErrors())
			assert.Equal(t, diagnostic.CodeMalformedDirective, diags.Errors[0].Code)
		})
	}
}

func TestFields_DefaultsAndOverrides(t *testing.T) {
	no := false
	yes := true

	spec := &schema.ConversionSpec{
		Unpack: true,
		Mappings: []schema.FieldMapping{
			{Target: schema.FieldDecl{Name: "Body", Type: "string"}, Directive: schema.MappingDirective{Unpack: &no}},
			{Target: schema.FieldDecl{Name: "Title", Type: "string"}},
			{Target: schema.FieldDecl{Name: "Sum", Type: "uint32"}, Directive: schema.MappingDirective{SourceField: "Checksum"}},
			{Target: schema.FieldDecl{Name: "Raw", Type: "[]byte"}, Directive: schema.MappingDirective{SourceField: "Blob", Unpack: &yes}},
		},
	}

	bindings := Fields(spec)
	require.Len(t, bindings, 4)

	assert.Equal(t, schema.Binding{TargetField: "Body", SourceField: "Body", Unpack: false, Type: "string"}, bindings[0])
	assert.Equal(t, schema.Binding{TargetField: "Title", SourceField: "Title", Unpack: true, Type: "string"}, bindings[1])
	assert.Equal(t, schema.Binding{TargetField: "Sum", SourceField: "Checksum", Unpack: true, Type: "uint32"}, bindings[2])
	assert.Equal(t, schema.Binding{TargetField: "Raw", SourceField: "Blob", Unpack: true, Type: "[]byte"}, bindings[3])
}

func TestFields_NoGlobalUnpack(t *testing.T) {
	spec := &schema.ConversionSpec{
		Mappings: []schema.FieldMapping{
			{Target: schema.FieldDecl{Name: "A", Type: "uint32"}},
		},
	}

	bindings := Fields(spec)
	require.Len(t, bindings, 1)
	assert.False(t, bindings[0].Unpack)
}
