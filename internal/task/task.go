package task

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"docstub-generator/internal/diagnostic"
	"docstub-generator/internal/docnode"
)

// Task is one node of the namespace tree. Children are owned by their
// parent; the parent reference exists only for name-chain computation.
type Task struct {
	name     string
	fullName string
	parent   *Task
	children map[string]*Task
	order    []string
	kind     Kind
	source   string

	nodes  []docnode.Node  // parsed fragment, scoped to this task's file
	module *docnode.Module // finished tree, cached after merge
	failed bool
}

// Create discovers fragment files under srcDir matching pattern and builds
// the namespace tree from them.
func Create(srcDir, pattern string, diags *diagnostic.Diagnostics) (*Task, error) {
	var files []string

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ok, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}

		if ok {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering fragments in %s: %w", srcDir, err)
	}

	return Build(files, diags), nil
}

// Build indexes fragment files into a namespace tree. Files are processed in
// lexicographic order so the tree shape and source assignment are identical
// regardless of filesystem enumeration order.
func Build(files []string, diags *diagnostic.Diagnostics) *Task {
	root := &Task{children: make(map[string]*Task)}

	sorted := append([]string(nil), files...)
	sort.Strings(sorted)

	for _, file := range sorted {
		segments := nameSegments(file)
		if len(segments) == 0 {
			continue
		}

		leaf := root.resolve(segments)

		if leaf.source != "" {
			diags.AddError(diagnostic.CodeStructuralConflict,
				fmt.Sprintf("%s already provided by %s", leaf.fullName, leaf.source),
				file, leaf.fullName)

			continue
		}

		leaf.source = file
	}

	return root
}

// nameSegments derives the dotted segment path from a filename: the base
// name with its extension stripped, split on dots.
func nameSegments(file string) []string {
	base := filepath.Base(file)

	parts := strings.Split(base, ".")
	if len(parts) < 2 {
		return nil
	}

	return parts[:len(parts)-1]
}

// resolve walks the segment path from t, creating missing tasks on the way.
// Re-encountering a segment returns the existing task.
func (t *Task) resolve(segments []string) *Task {
	current := t

	for _, name := range segments {
		child, ok := current.children[name]
		if !ok {
			child = newTask(name, current)
		}

		current = child
	}

	return current
}

func newTask(name string, parent *Task) *Task {
	t := &Task{
		name:     name,
		parent:   parent,
		children: make(map[string]*Task),
		kind:     kindOf(name),
	}

	if parent.fullName == "" {
		t.fullName = name
	} else {
		t.fullName = parent.fullName + "." + name
	}

	parent.children[name] = t
	parent.order = append(parent.order, name)

	return t
}

// Name returns the task's own path segment.
func (t *Task) Name() string { return t.name }

// FullName returns the dot-joined ancestor chain including the task itself.
func (t *Task) FullName() string { return t.fullName }

// Parent returns the owning task, nil for the root.
func (t *Task) Parent() *Task { return t.parent }

// Kind returns the task variant.
func (t *Task) Kind() Kind { return t.kind }

// Source returns the fragment file owned by this task, empty when the task
// is a synthetic package module.
func (t *Task) Source() string { return t.source }

// Module returns the finished document tree, available after merge.
func (t *Task) Module() *docnode.Module { return t.module }

// Child returns the direct child with the given name.
func (t *Task) Child(name string) *Task { return t.children[name] }

// Children returns direct children in insertion order.
func (t *Task) Children() []*Task {
	children := make([]*Task, 0, len(t.order))

	for _, name := range t.order {
		children = append(children, t.children[name])
	}

	return children
}

// Walk visits every descendant task post-order: children before their
// parent, the receiver itself excluded.
func (t *Task) Walk(fn func(*Task)) {
	for _, child := range t.Children() {
		child.Walk(fn)
		fn(child)
	}
}

// Count returns the number of descendant tasks.
func (t *Task) Count() int {
	n := 0
	t.Walk(func(*Task) { n++ })

	return n
}
