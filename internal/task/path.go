package task

import (
	"path/filepath"
	"strings"

	"docstub-generator/internal/emit"
)

// hasSubmodule reports whether any direct child is a module task.
func (t *Task) hasSubmodule() bool {
	for _, child := range t.Children() {
		if child.kind == KindModule {
			return true
		}
	}

	return false
}

// TargetPath computes the destination of this module task's stub file.
// A task without a parent, or with at least one submodule, is emitted as a
// package "__init__" stub inside its own directory; otherwise it is a leaf
// stub named after the task. Directory nesting mirrors the dotted name.
func (t *Task) TargetPath(destDir string) string {
	if t.parent == nil || t.hasSubmodule() {
		dir := filepath.Join(destDir, filepath.Join(strings.Split(t.fullName, ".")...))
		return filepath.Join(dir, "__init__"+emit.StubSuffix)
	}

	segments := strings.Split(t.fullName, ".")
	dir := filepath.Join(destDir, filepath.Join(segments[:len(segments)-1]...))

	return filepath.Join(dir, t.name+emit.StubSuffix)
}
