package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"docstub-generator/internal/config"
	"docstub-generator/internal/diagnostic"
	"docstub-generator/internal/task"
)

func newTreeCommand() *cobra.Command {
	var (
		source  string
		pattern string
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the namespace tree resolved from a fragment directory",
		RunE: func(_ *cobra.Command, _ []string) error {
			var diags diagnostic.Diagnostics

			root, err := task.Create(source, pattern, &diags)
			if err != nil {
				return err
			}

			for _, d := range diags.All() {
				fmt.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d)
			}

			printTree(os.Stdout, root, 0)
			fmt.Printf("%d task(s)\n", root.Count())

			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", ".", "Directory containing documentation fragments")
	cmd.Flags().StringVar(&pattern, "pattern", config.DefaultPattern, "Fragment filename glob")

	return cmd
}

func printTree(w io.Writer, t *task.Task, depth int) {
	for _, child := range t.Children() {
		marker := ""
		if child.Source() == "" {
			marker = " (synthetic)"
		}

		fmt.Fprintf(w, "%s%s [%s]%s\n", strings.Repeat("  ", depth), child.Name(), child.Kind(), marker)
		printTree(w, child, depth+1)
	}
}
