package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"subview-generator/internal/common"
	"subview-generator/internal/diagnostic"
	"subview-generator/internal/schema"
)

// DirectivePrefix introduces a struct-level subview directive inside a doc
// comment.
const DirectivePrefix = "//subview:"

// TagKey is the struct tag key carrying per-field directives.
const TagKey = "subview"

// ExtractFile scans one parsed file for annotated target structs. Structs
// without a directive line are ignored. pkgName and dir describe the
// package the file belongs to.
func ExtractFile(fset *token.FileSet, file *ast.File, pkgName, dir string) ([]*schema.RecordSchema, diagnostic.Diagnostics) {
	var schemas []*schema.RecordSchema
	var diags diagnostic.Diagnostics

	imports := fileImports(file)

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}

			raw, ok := directiveLine(fset, doc)
			if !ok {
				continue
			}

			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				diags.AddError(diagnostic.CodeUnsupportedDeclaration,
					"subview directive on a non-struct type", ts.Name.Name, "",
					fset.Position(ts.Pos()).String())
				continue
			}

			rs := &schema.RecordSchema{
				Name:      ts.Name.Name,
				PkgName:   pkgName,
				Dir:       dir,
				Directive: raw,
				Imports:   imports,
			}

			extractTypeParams(rs, ts)

			fieldDiags := extractFields(fset, rs, st)
			diags.Merge(fieldDiags)
			if fieldDiags.HasErrors() {
				continue
			}

			schemas = append(schemas, rs)
		}
	}

	return schemas, diags
}

// directiveLine finds the first directive line in a doc comment and returns
// its text without the prefix.
func directiveLine(fset *token.FileSet, doc *ast.CommentGroup) (schema.RawDirective, bool) {
	if doc == nil {
		return schema.RawDirective{}, false
	}

	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, DirectivePrefix) {
			return schema.RawDirective{
				Text: strings.TrimSpace(strings.TrimPrefix(c.Text, DirectivePrefix)),
				Pos:  fset.Position(c.Pos()).String(),
			}, true
		}
	}

	return schema.RawDirective{}, false
}

func extractTypeParams(rs *schema.RecordSchema, ts *ast.TypeSpec) {
	if ts.TypeParams == nil {
		return
	}

	for _, field := range ts.TypeParams.List {
		constraint := types.ExprString(field.Type)
		for _, name := range field.Names {
			rs.TypeParams = append(rs.TypeParams, schema.TypeParam{
				Name:       name.Name,
				Constraint: constraint,
			})
		}
	}
}

func extractFields(fset *token.FileSet, rs *schema.RecordSchema, st *ast.StructType) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			diags.AddError(diagnostic.CodeUnsupportedDeclaration,
				"embedded fields are not supported", rs.Name, types.ExprString(field.Type),
				fset.Position(field.Pos()).String())
			continue
		}

		typeText := types.ExprString(field.Type)
		directive := fieldDirective(fset, field)

		for _, name := range field.Names {
			rs.Fields = append(rs.Fields, schema.FieldDecl{
				Name:      name.Name,
				Type:      typeText,
				Directive: directive,
			})
		}
	}

	return diags
}

func fieldDirective(fset *token.FileSet, field *ast.Field) schema.RawDirective {
	if field.Tag == nil {
		return schema.RawDirective{}
	}

	tag, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return schema.RawDirective{}
	}

	text, ok := reflect.StructTag(tag).Lookup(TagKey)
	if !ok {
		return schema.RawDirective{}
	}

	return schema.RawDirective{
		Text: text,
		Pos:  fset.Position(field.Tag.Pos()).String(),
	}
}

// fileImports maps the package qualifiers visible in a file to import
// paths. Dot and blank imports are skipped; they cannot qualify a type.
func fileImports(file *ast.File) map[string]string {
	imports := make(map[string]string)

	for _, imp := range file.Imports {
		importPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		qualifier := common.PkgAlias(importPath)
		if imp.Name != nil {
			if imp.Name.Name == "." || imp.Name.Name == "_" {
				continue
			}

			qualifier = imp.Name.Name
		}

		imports[qualifier] = importPath
	}

	return imports
}
