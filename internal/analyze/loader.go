package analyze

import (
	"fmt"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"subview-generator/internal/diagnostic"
	"subview-generator/internal/schema"
)

// LoadMode specifies what information to load from packages. Extraction is
// syntactic, so type checking is not requested.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax

// LoadPackages loads the given package patterns and extracts every
// annotated subview schema found in them. Patterns are standard Go package
// patterns (e.g. "./...", "subview-generator/report").
func LoadPackages(patterns ...string) ([]*schema.RecordSchema, diagnostic.Diagnostics, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("package errors: %v", errs)
	}

	var schemas []*schema.RecordSchema
	var diags diagnostic.Diagnostics

	for _, pkg := range pkgs {
		for i, file := range pkg.Syntax {
			dir := ""
			if i < len(pkg.CompiledGoFiles) {
				dir = filepath.Dir(pkg.CompiledGoFiles[i])
			}

			found, fileDiags := ExtractFile(pkg.Fset, file, pkg.Name, dir)
			diags.Merge(fileDiags)
			schemas = append(schemas, found...)
		}
	}

	return schemas, diags, nil
}
