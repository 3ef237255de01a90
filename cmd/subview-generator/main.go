// Package main provides the CLI entrypoint for subview-generator.
//
// subview-generator is a build-time codegen tool that:
//   - Scans Go packages for structs annotated with //subview: directives
//   - Resolves each directive set against the struct's declaration
//   - Writes deterministic conversion code next to the annotated struct
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"subview-generator/internal/analyze"
	"subview-generator/internal/config"
	"subview-generator/internal/diagnostic"
	"subview-generator/internal/gen"
	"subview-generator/internal/plan"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("subview-generator", flag.ContinueOnError)

	configPath := fs.String("config", "", "path to a subview.yaml project file")
	pkgList := fs.String("pkg", "", "comma-separated package patterns, overriding the config file")
	dryRun := fs.Bool("dry-run", false, "print generated files to stdout instead of writing them")
	debug := fs.Bool("debug", false, "dump every resolved artifact to stderr")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "subview-generator:", err)
		return 1
	}

	if *pkgList != "" {
		cfg.Packages = splitList(*pkgList)
	}

	if *dryRun {
		cfg.DryRun = true
	}

	schemas, diags, err := analyze.LoadPackages(cfg.Packages...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "subview-generator:", err)
		return 1
	}

	exit := 0

	printDiags(diags)
	if diags.HasErrors() {
		exit = 1
	}

	var files []gen.GeneratedFile

	for _, res := range plan.GenerateAll(schemas) {
		printDiags(res.Diags)

		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "subview-generator: %s: %v\n", res.Schema.Name, res.Err)
			exit = 1
			continue
		}

		if res.Diags.HasErrors() {
			exit = 1
			continue
		}

		if *debug {
			fmt.Fprint(os.Stderr, spew.Sdump(res.Artifact))
		}

		files = append(files, *res.File)
	}

	if cfg.DryRun {
		for _, file := range files {
			fmt.Printf("=== %s ===\n%s", filepath.Join(file.Dir, file.Filename), file.Content)
		}

		return exit
	}

	if err := gen.WriteFiles(files); err != nil {
		fmt.Fprintln(os.Stderr, "subview-generator:", err)
		return 1
	}

	return exit
}

// loadConfig resolves the project configuration: an explicit -config path
// must exist, the default path is optional.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	if _, err := os.Stat(config.DefaultPath); err != nil {
		return config.Default(), nil
	}

	return config.LoadFile(config.DefaultPath)
}

func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func printDiags(diags diagnostic.Diagnostics) {
	for _, w := range diags.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	for _, e := range diags.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e)
	}
}
