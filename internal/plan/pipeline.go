package plan

import (
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"subview-generator/internal/diagnostic"
	"subview-generator/internal/directive"
	"subview-generator/internal/gen"
	"subview-generator/internal/resolve"
	"subview-generator/internal/schema"
)

// Result is the outcome of one schema's generation pass. Exactly one of
// File or error diagnostics is meaningful: a schema with error diagnostics
// produces no file.
type Result struct {
	// Schema the pass ran for.
	Schema *schema.RecordSchema
	// Artifact is the resolved conversion description, nil on failure.
	Artifact *gen.Artifact
	// File is the rendered output, nil on failure.
	File *gen.GeneratedFile
	// Diags collects everything the pipeline reported for this schema.
	Diags diagnostic.Diagnostics
	// Err reports a rendering failure (template or formatting), which is a
	// generator bug rather than a directive problem.
	Err error
}

// Generate runs the pipeline for a single target schema.
func Generate(rs *schema.RecordSchema) Result {
	res := Result{Schema: rs}

	spec, diags := directive.Parse(rs)
	res.Diags.Merge(diags)
	if res.Diags.HasErrors() {
		return res
	}

	ref, diags := resolve.Reference(spec, rs)
	res.Diags.Merge(diags)
	if res.Diags.HasErrors() {
		return res
	}

	bindings := resolve.Fields(spec)

	res.Artifact = gen.Build(rs, ref, bindings, spec.MakeRefs)

	file, err := gen.Render(res.Artifact)
	if err != nil {
		res.Err = err
		return res
	}

	res.File = &file

	return res
}

// GenerateAll runs the pipeline for every schema concurrently. Results are
// returned in input order; one schema's failure never affects another's.
// Schemas whose output file would overwrite an earlier schema's are rejected
// up front instead of silently losing one of the two.
func GenerateAll(schemas []*schema.RecordSchema) []Result {
	results := make([]Result, len(schemas))

	owners := make(map[string]string, len(schemas))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, rs := range schemas {
		out := filepath.Join(rs.Dir, gen.Filename(rs.Name))
		if first, taken := owners[out]; taken {
			res := Result{Schema: rs}
			res.Diags.AddError(diagnostic.CodeOutputCollision,
				fmt.Sprintf("output file %s is already generated for %s", out, first),
				rs.Name, "", rs.Directive.Pos)
			results[i] = res
			continue
		}
		owners[out] = rs.Name

		i, rs := i, rs
		g.Go(func() error {
			results[i] = Generate(rs)
			return nil
		})
	}

	// The group never returns an error; failures live in each Result.
	_ = g.Wait()

	return results
}
