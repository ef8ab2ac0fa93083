package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docstub-generator/internal/config"
	"docstub-generator/internal/diagnostic"
	"docstub-generator/internal/emit"
	"docstub-generator/internal/rst"
	"docstub-generator/internal/task"
)

type generateOptions struct {
	source     string
	dest       string
	pattern    string
	configPath string
	quiet      bool
}

func newGenerateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a stub tree from a fragment directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.source, "source", ".", "Directory containing documentation fragments")
	cmd.Flags().StringVar(&opts.dest, "dest", "./stubs", "Directory the stub tree is written into")
	cmd.Flags().StringVar(&opts.pattern, "pattern", config.DefaultPattern, "Fragment filename glob")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to .docstub.yml config file")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "Suppress per-file output")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics

	root, err := task.Create(cfg.Source, cfg.Pattern, &diags)
	if err != nil {
		return err
	}

	gen := task.NewGenerator(rst.ParseFile, emit.NewWriter())
	gen.Diagnostics.Merge(diags)

	_ = gen.Run(root, cfg.Dest)

	for _, d := range gen.Diagnostics.All() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d)
	}

	if !cfg.Quiet {
		for _, path := range gen.Written {
			fmt.Println(path)
		}
	}

	fmt.Printf("generated %d stub file(s) from %d task(s)\n", len(gen.Written), root.Count())

	if gen.Diagnostics.HasErrors() {
		return fmt.Errorf("generation finished with %d error(s)", len(gen.Diagnostics.Errors))
	}

	return nil
}

// resolveConfig layers settings: defaults, then the config file, then any
// flag the user set explicitly.
func resolveConfig(cmd *cobra.Command, opts *generateOptions) (config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return cfg, err
		}

		cfg = *loaded
	}

	if cmd.Flags().Changed("source") {
		cfg.Source = opts.source
	}

	if cmd.Flags().Changed("dest") {
		cfg.Dest = opts.dest
	}

	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = opts.pattern
	}

	if cmd.Flags().Changed("quiet") {
		cfg.Quiet = opts.quiet
	}

	return cfg, nil
}
