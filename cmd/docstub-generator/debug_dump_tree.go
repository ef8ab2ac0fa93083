//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"docstub-generator/internal/diagnostic"
	"docstub-generator/internal/rst"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_dump_tree <fragment.rst>")
		os.Exit(1)
	}

	var diags diagnostic.Diagnostics

	nodes, err := rst.ParseFile(os.Args[1], &diags)
	if err != nil {
		fmt.Println("parse:", err)
		os.Exit(1)
	}

	spew.Dump(nodes)

	for _, d := range diags.All() {
		fmt.Printf("%s: %s\n", d.Severity, d)
	}
}
