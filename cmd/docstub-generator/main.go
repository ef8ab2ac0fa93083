// Package main provides the CLI entrypoint for docstub-generator.
//
// docstub-generator converts a tree of API documentation fragments into
// Python type-stub files:
//   - Indexes fragment files into a namespace tree by dotted filename
//   - Parses each fragment into a typed document tree
//   - Merges class fragments into their owning modules, leaves-first
//   - Localizes type references and synthesizes imports
//   - Emits deterministic .pyi stubs plus py.typed markers
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "docstub-generator",
		Short:         "Generate Python type stubs from API documentation fragments",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newTreeCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
