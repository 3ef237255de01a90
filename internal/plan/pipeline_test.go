package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subview-generator/internal/diagnostic"
	"subview-generator/internal/gen"
	"subview-generator/internal/schema"
)

func documentTarget() *schema.RecordSchema {
	return &schema.RecordSchema{
		Name:    "Summary",
		PkgName: "report",
		Dir:     "report",
		Imports: map[string]string{"parser": "subview-generator/parser"},
		Directive: schema.RawDirective{
			Text: "from_type=parser.Document unpack=true",
			Pos:  "report/types.go:8",
		},
		Fields: []schema.FieldDecl{
			{Name: "Body", Type: "string", Directive: schema.RawDirective{Text: "unpack=false"}},
			{Name: "Title", Type: "string"},
			{Name: "Sum", Type: "uint32", Directive: schema.RawDirective{Text: "rename_from=Checksum"}},
		},
	}
}

func TestGenerate_Fallible(t *testing.T) {
	res := Generate(documentTarget())

	require.NoError(t, res.Err)
	require.True(t, res.Diags.IsValid(), "unexpected diagnostics: %v", res.Diags.Error())
	require.NotNil(t, res.File)

	assert.Equal(t, gen.Fallible, res.Artifact.Kind)
	assert.Equal(t, "summary_subview.go", res.File.Filename)
	assert.Equal(t, "report", res.File.Dir)

	content := string(res.File.Content)
	assert.Contains(t, content, "func SummaryFromDocument(src parser.Document) (Summary, error)")

	// Checks come out in target declaration order.
	title := strings.Index(content, "if src.Title == nil")
	sum := strings.Index(content, "if src.Checksum == nil")
	require.GreaterOrEqual(t, title, 0)
	require.GreaterOrEqual(t, sum, 0)
	assert.Less(t, title, sum)
}

func TestGenerate_InfallibleWithoutUnpack(t *testing.T) {
	rs := documentTarget()
	rs.Directive.Text = "from_type=parser.Document"
	rs.Fields[0].Directive = schema.RawDirective{}

	res := Generate(rs)

	require.NoError(t, res.Err)
	require.True(t, res.Diags.IsValid())
	assert.Equal(t, gen.Infallible, res.Artifact.Kind)
	assert.Contains(t, string(res.File.Content), ") Summary {")
	assert.NotContains(t, string(res.File.Content), "MissingFieldError")
}

func TestGenerate_MakeRefsTakesSourcePointer(t *testing.T) {
	rs := documentTarget()
	rs.Directive.Text = "from_type=parser.Document unpack=true make_refs=true"

	res := Generate(rs)

	require.NoError(t, res.Err)
	require.True(t, res.Diags.IsValid(), "unexpected diagnostics: %v", res.Diags.Error())
	assert.True(t, res.Artifact.MakeRefs)

	content := string(res.File.Content)
	assert.Contains(t, content, "func SummaryFromDocument(src *parser.Document) (Summary, error)")
	assert.Contains(t, content, "Body:  &src.Body")
	assert.Contains(t, content, "Sum:   src.Checksum")
}

func TestGenerate_NoArtifactOnDirectiveError(t *testing.T) {
	rs := documentTarget()
	rs.Directive.Text = "unpack=true"

	res := Generate(rs)

	require.True(t, res.Diags.HasErrors())
	assert.Equal(t, diagnostic.CodeMissingFromType, res.Diags.Errors[0].Code)
	assert.Nil(t, res.Artifact)
	assert.Nil(t, res.File)
}

func TestGenerate_NoArtifactOnResolveError(t *testing.T) {
	rs := documentTarget()
	rs.Directive.Text = `from_type="parser.Document<#T>"`

	res := Generate(rs)

	require.True(t, res.Diags.HasErrors())
	assert.Equal(t, diagnostic.CodeUnknownGenericParameter, res.Diags.Errors[0].Code)
	assert.Nil(t, res.File)
}

func TestGenerateAll_OutputCollision(t *testing.T) {
	first := documentTarget()

	// Differs only in case, so it lowercases to the same file name.
	second := documentTarget()
	second.Name = "SUMMARY"

	results := GenerateAll([]*schema.RecordSchema{first, second})
	require.Len(t, results, 2)

	require.NotNil(t, results[0].File)

	assert.Nil(t, results[1].File)
	require.True(t, results[1].Diags.HasErrors())
	assert.Equal(t, diagnostic.CodeOutputCollision, results[1].Diags.Errors[0].Code)
	assert.Equal(t, "SUMMARY", results[1].Diags.Errors[0].Schema)
	assert.Contains(t, results[1].Diags.Errors[0].Message, "Summary")
}

func TestGenerateAll_IndependentSchemas(t *testing.T) {
	good := documentTarget()

	broken := documentTarget()
	broken.Name = "Broken"
	broken.Directive.Text = "from_type=Bar bogus=1"

	generic := &schema.RecordSchema{
		Name:       "Received",
		PkgName:    "report",
		Dir:        "report",
		TypeParams: []schema.TypeParam{{Name: "T", Constraint: "any"}},
		Imports:    map[string]string{"parser": "subview-generator/parser"},
		Directive:  schema.RawDirective{Text: `from_type="parser.Envelope<#T, uint32>"`},
		Fields: []schema.FieldDecl{
			{Name: "Payload", Type: "T"},
			{Name: "Seq", Type: "uint64"},
		},
	}

	results := GenerateAll([]*schema.RecordSchema{good, broken, generic})
	require.Len(t, results, 3)

	assert.NotNil(t, results[0].File)

	assert.Nil(t, results[1].File)
	require.True(t, results[1].Diags.HasErrors())
	assert.Equal(t, "Broken", results[1].Diags.Errors[0].Schema)

	require.NotNil(t, results[2].File)
	assert.Contains(t, string(results[2].File.Content),
		"func ReceivedFromEnvelope[T any](src parser.Envelope[T, uint32]) Received[T]")
}
