package task

import (
	"fmt"
	"path/filepath"

	"docstub-generator/internal/diagnostic"
	"docstub-generator/internal/docnode"
	"docstub-generator/internal/emit"
	"docstub-generator/internal/resolve"
)

// ParseFunc is the fragment-parser boundary: given a fragment file it
// returns the top-level document nodes scoped to that file. It must be
// deterministic for identical input bytes.
type ParseFunc func(path string, diags *diagnostic.Diagnostics) ([]docnode.Node, error)

// Emitter is the output-writer boundary consumed per module task.
type Emitter interface {
	Write(m *docnode.Module, path string) error
}

// Generator merges parsed fragments into module trees and emits stub files,
// walking the namespace tree leaves-first.
type Generator struct {
	parse   ParseFunc
	emitter Emitter

	// Diagnostics accumulated across the whole run.
	Diagnostics diagnostic.Diagnostics
	// Written lists emitted stub paths in generation order.
	Written []string
}

// NewGenerator creates a Generator bound to a parser and an emitter.
func NewGenerator(parse ParseFunc, emitter Emitter) *Generator {
	return &Generator{parse: parse, emitter: emitter}
}

// Run processes every task under root in post-order and emits one stub file
// per module task into destDir. A failed task aborts its own subtree's
// output but never that of already-written siblings.
func (g *Generator) Run(root *Task, destDir string) error {
	root.Walk(func(t *Task) {
		switch t.kind {
		case KindClass:
			g.parseClass(t)
		case KindModule:
			if g.merge(t) {
				g.generate(t, destDir)
			}
		}
	})

	return g.Diagnostics.Error()
}

func (g *Generator) parseClass(t *Task) {
	if t.source == "" {
		return
	}

	nodes, err := g.parse(t.source, &g.Diagnostics)
	if err != nil {
		g.Diagnostics.AddError(diagnostic.CodeParseFailure, err.Error(), t.source, t.fullName)
		t.failed = true

		return
	}

	t.nodes = nodes
}

// merge assembles the finished module tree for a module task: its own parsed
// fragment (or a synthetic empty module), the classes of its class children,
// resolved types, sorted members, and submodule imports. The result is
// cached on the task.
func (g *Generator) merge(t *Task) bool {
	module := g.parseModule(t)
	if module == nil {
		return false
	}

	// Re-parent each child class under this module. Ownership transfers:
	// the node leaves the child's tree and gains exactly one new owner.
	for _, child := range t.Children() {
		if child.kind != KindClass || child.failed {
			continue
		}

		var kept []docnode.Node

		for _, n := range child.nodes {
			if c, ok := n.(*docnode.Class); ok {
				module.Append(c)
			} else {
				kept = append(kept, n)
			}
		}

		child.nodes = kept
	}

	resolve.Localize(module)
	resolve.SynthesizeImports(module)
	resolve.SortMembers(module)

	// Submodule imports stay contiguous at the head of the member list,
	// in child enumeration order.
	index := 0

	for _, child := range t.Children() {
		if child.kind != KindModule || child.module == nil {
			continue
		}

		imp := &docnode.Import{Module: "."}
		imp.AddType(module.LocalName(child.module.Name))

		module.Insert(index, imp)
		index++
	}

	t.module = module

	return true
}

// parseModule parses the task's own fragment, substituting an empty module
// node named after the task when it owns no file (synthetic package).
func (g *Generator) parseModule(t *Task) *docnode.Module {
	if t.source == "" {
		return &docnode.Module{Name: t.name}
	}

	nodes, err := g.parse(t.source, &g.Diagnostics)
	if err != nil {
		g.Diagnostics.AddError(diagnostic.CodeParseFailure, err.Error(), t.source, t.fullName)
		t.failed = true

		return nil
	}

	t.nodes = nodes

	for _, n := range nodes {
		if m, ok := n.(*docnode.Module); ok {
			return m
		}
	}

	return &docnode.Module{Name: t.name}
}

// generate writes the marker and stub file for a merged module task.
func (g *Generator) generate(t *Task, destDir string) {
	target := t.TargetPath(destDir)
	dir := filepath.Dir(target)

	if err := emit.EnsureDir(dir); err != nil {
		g.Diagnostics.AddError(diagnostic.CodeEmissionFailure, err.Error(), target, t.fullName)
		return
	}

	if err := emit.WriteMarker(dir); err != nil {
		g.Diagnostics.AddError(diagnostic.CodeEmissionFailure, err.Error(), target, t.fullName)
		return
	}

	if err := g.emitter.Write(t.module, target); err != nil {
		g.Diagnostics.AddError(diagnostic.CodeEmissionFailure,
			fmt.Sprintf("emitting %s: %v", t.fullName, err), target, t.fullName)

		return
	}

	g.Written = append(g.Written, target)
}
