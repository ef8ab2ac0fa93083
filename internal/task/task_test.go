package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstub-generator/internal/diagnostic"
)

func TestBuild(t *testing.T) {
	diags := &diagnostic.Diagnostics{}

	// Deliberately out of order; indexing must not depend on input order.
	root := Build([]string{
		"docs/mylib.util.rst",
		"docs/mylib.rst",
		"docs/mylib.Widget.rst",
	}, diags)

	assert.False(t, diags.HasErrors())
	assert.Equal(t, 3, root.Count())

	mylib := root.Child("mylib")
	require.NotNil(t, mylib)
	assert.Equal(t, "mylib", mylib.FullName())
	assert.Equal(t, KindModule, mylib.Kind())
	assert.Equal(t, "docs/mylib.rst", mylib.Source())

	widget := mylib.Child("Widget")
	require.NotNil(t, widget)
	assert.Equal(t, "mylib.Widget", widget.FullName())
	assert.Equal(t, KindClass, widget.Kind())
	assert.Equal(t, "docs/mylib.Widget.rst", widget.Source())

	util := mylib.Child("util")
	require.NotNil(t, util)
	assert.Equal(t, KindModule, util.Kind())
	assert.Same(t, mylib, util.Parent())
}

func TestBuild_SyntheticPackage(t *testing.T) {
	diags := &diagnostic.Diagnostics{}

	root := Build([]string{"pkg.sub.rst"}, diags)

	pkg := root.Child("pkg")
	require.NotNil(t, pkg)
	assert.Empty(t, pkg.Source())
	assert.Equal(t, KindModule, pkg.Kind())
	assert.Equal(t, "pkg.sub.rst", pkg.Child("sub").Source())
}

func TestBuild_DuplicateSource(t *testing.T) {
	diags := &diagnostic.Diagnostics{}

	root := Build([]string{"b/mylib.rst", "a/mylib.rst"}, diags)

	// Lexicographically first file wins; the duplicate is reported.
	assert.Equal(t, "a/mylib.rst", root.Child("mylib").Source())

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeStructuralConflict, diags.Errors[0].Code)
	assert.Equal(t, "b/mylib.rst", diags.Errors[0].File)
	assert.Equal(t, "mylib", diags.Errors[0].Symbol)
}

func TestBuild_IgnoresUnsegmentedNames(t *testing.T) {
	diags := &diagnostic.Diagnostics{}

	root := Build([]string{"README"}, diags)

	assert.Zero(t, root.Count())
	assert.False(t, diags.HasErrors())
}

func TestWalk_PostOrder(t *testing.T) {
	diags := &diagnostic.Diagnostics{}

	root := Build([]string{
		"mylib.rst",
		"mylib.Widget.rst",
		"mylib.util.rst",
		"mylib.util.Helper.rst",
	}, diags)

	var visited []string

	root.Walk(func(t *Task) {
		visited = append(visited, t.FullName())
	})

	require.Len(t, visited, 4)

	index := make(map[string]int, len(visited))
	for i, name := range visited {
		index[name] = i
	}

	// Children come before their parents.
	assert.Less(t, index["mylib.Widget"], index["mylib"])
	assert.Less(t, index["mylib.util"], index["mylib"])
	assert.Less(t, index["mylib.util.Helper"], index["mylib.util"])
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"mylib", KindModule},
		{"util", KindModule},
		{"Widget", KindClass},
		{"KX_GameObject", KindClass},
		{"", KindModule},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, kindOf(c.name), "kindOf(%q)", c.name)
	}
}

func TestTargetPath(t *testing.T) {
	diags := &diagnostic.Diagnostics{}

	root := Build([]string{
		"mylib.rst",
		"mylib.util.rst",
		"solo.rst",
	}, diags)

	// A module with submodules becomes a package __init__ stub.
	assert.Equal(t, "out/mylib/__init__.pyi", root.Child("mylib").TargetPath("out"))

	// Leaf modules become sibling stub files inside the package directory.
	assert.Equal(t, "out/mylib/util.pyi", root.Child("mylib").Child("util").TargetPath("out"))

	// A lone top-level module without submodules stays a flat stub.
	assert.Equal(t, "out/solo.pyi", root.Child("solo").TargetPath("out"))
}
