//go:build ignore

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"subview-generator/internal/analyze"
	"subview-generator/internal/plan"
)

func main() {
	schemas, diags, err := analyze.LoadPackages("subview-generator/report")
	if err != nil {
		fmt.Println("load packages:", err)
		os.Exit(1)
	}
	if diags.HasErrors() {
		fmt.Println("extraction diagnostics:")
		fmt.Printf("%+v\n", diags)
		os.Exit(1)
	}

	for _, res := range plan.GenerateAll(schemas) {
		if res.Err != nil || res.Diags.HasErrors() {
			fmt.Println("===", res.Schema.Name, "===")
			fmt.Println("err:", res.Err)
			fmt.Printf("diagnostics: %+v\n", res.Diags)
			continue
		}

		fmt.Println("===", filepath.Join(res.File.Dir, res.File.Filename), "===")
		fmt.Println(string(res.File.Content))
	}
}
