package rst

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstub-generator/internal/diagnostic"
	"docstub-generator/internal/docnode"
)

func parseSource(t *testing.T, lines ...string) ([]docnode.Node, *diagnostic.Diagnostics) {
	t.Helper()

	diags := &diagnostic.Diagnostics{}
	nodes := Parse([]byte(strings.Join(lines, "\n")), "test.rst", diags)

	return nodes, diags
}

func TestParse_SimpleFunction(t *testing.T) {
	nodes, diags := parseSource(t,
		".. function:: simple()",
		"",
		"   Reset the effect.",
		"",
		"   :rtype: string",
	)

	assert.False(t, diags.HasErrors())
	require.Len(t, nodes, 1)

	fn, ok := nodes[0].(*docnode.Function)
	require.True(t, ok)

	assert.Equal(t, "simple", fn.Name)
	assert.Equal(t, docnode.ScopeModule, fn.Scope)
	assert.Equal(t, "str", fn.Type)
	assert.Equal(t, "Reset the effect.", fn.Doc.Text())
	assert.Equal(t, "def simple() -> str:", fn.Signature())
}

func TestParse_FunctionArguments(t *testing.T) {
	nodes, diags := parseSource(t,
		".. function:: blend(src, dst, factor=0.5)",
		"",
		"   :arg src: source buffer",
		"   :type src: string",
		"   :arg dst: destination buffer",
		"   :type dst: string",
		"   :type factor: float",
	)

	assert.False(t, diags.HasErrors())
	require.Len(t, nodes, 1)

	fn := nodes[0].(*docnode.Function)
	require.Len(t, fn.Args, 3)

	assert.Equal(t, "src: str", fn.Args[0].Render())
	assert.Equal(t, "dst: str", fn.Args[1].Render())
	assert.Equal(t, "factor: float = 0.5", fn.Args[2].Render())

	assert.Equal(t, "def blend(src: str, dst: str, factor: float = 0.5) -> None:", fn.Signature())
}

func TestParse_ReturnDescription(t *testing.T) {
	nodes, diags := parseSource(t,
		".. function:: scene()",
		"",
		"   :return: the current scene",
		"   :rtype: KX_Scene",
	)

	assert.False(t, diags.HasErrors())
	require.Len(t, nodes, 1)

	fn := nodes[0].(*docnode.Function)
	assert.Equal(t, "KX_Scene", fn.Type)
	assert.Equal(t, "the current scene", fn.Returns)
}

func TestParse_OverloadedSignatures(t *testing.T) {
	nodes, diags := parseSource(t,
		".. function:: pick(x)",
		"              pick(x, y)",
		"",
		"   Chooses a value.",
		"",
		"   :type x: int",
		"   :type y: int",
	)

	assert.False(t, diags.HasErrors())
	require.Len(t, nodes, 2)

	first := nodes[0].(*docnode.Function)
	second := nodes[1].(*docnode.Function)

	// Each declaration keeps only the arguments its own parameter list names.
	require.Len(t, first.Args, 1)
	require.Len(t, second.Args, 2)

	assert.Equal(t, "def pick(x: int) -> None:", first.Signature())
	assert.Equal(t, "def pick(x: int, y: int) -> None:", second.Signature())

	assert.Equal(t, "Chooses a value.", first.Doc.Text())
	assert.Equal(t, "Chooses a value.", second.Doc.Text())
}

func TestParse_BackslashContinuation(t *testing.T) {
	nodes, diags := parseSource(t,
		".. function:: spawn(name, \\",
		"              position)",
	)

	assert.False(t, diags.HasErrors())
	require.Len(t, nodes, 1)

	fn := nodes[0].(*docnode.Function)
	require.Len(t, fn.Args, 2)
	assert.Equal(t, "name", fn.Args[0].Name)
	assert.Equal(t, "position", fn.Args[1].Name)
}

func TestParse_ModuleFragment(t *testing.T) {
	nodes, diags := parseSource(t,
		".. module:: mylib",
		"",
		"A handy library.",
		"",
		".. currentmodule:: mylib",
		"",
		".. data:: version",
		"",
		"   :type: string",
		"",
		".. function:: ready()",
		"",
		"   :rtype: boolean",
	)

	assert.False(t, diags.HasErrors())
	require.Len(t, nodes, 1)

	m, ok := nodes[0].(*docnode.Module)
	require.True(t, ok)

	assert.Equal(t, "mylib", m.Name)
	require.NotNil(t, m.Doc)
	assert.Equal(t, "A handy library.", m.Doc.Text())

	require.Len(t, m.Members, 2)

	data := m.Members[0].(*docnode.Data)
	assert.Equal(t, "version", data.Name)
	assert.Equal(t, "str", data.Type)

	fn := m.Members[1].(*docnode.Function)
	assert.Equal(t, "ready", fn.Name)
	assert.Equal(t, "bool", fn.Type)
}

func TestParse_ModuleDirectiveBody(t *testing.T) {
	nodes, diags := parseSource(t,
		".. module:: mylib",
		"",
		"   A handy library.",
	)

	assert.False(t, diags.HasErrors())
	require.Len(t, nodes, 1)

	m := nodes[0].(*docnode.Module)
	require.NotNil(t, m.Doc)
	assert.Equal(t, "A handy library.", m.Doc.Text())
}

func TestParse_ClassBaseReferences(t *testing.T) {
	nodes, diags := parseSource(t,
		"base class --- :class:`mylib.Base`, :class:`other.Mixin`",
		"",
		".. class:: Widget(name)",
		"",
		"   A widget.",
		"",
		"   :arg name: display name",
		"   :type name: string",
	)

	assert.False(t, diags.HasErrors())
	require.Len(t, nodes, 1)

	cls, ok := nodes[0].(*docnode.Class)
	require.True(t, ok)

	assert.Equal(t, "Widget", cls.Name)
	assert.Equal(t, []string{"mylib.Base", "other.Mixin"}, cls.BaseTypes)
	assert.Equal(t, "A widget.", cls.Doc.Text())

	// Described constructor arguments synthesize __init__.
	require.Len(t, cls.Members, 1)
	ctor := cls.Members[0].(*docnode.Function)
	assert.Equal(t, "__init__", ctor.Name)
	assert.Equal(t, docnode.ScopeInstance, ctor.Scope)
	assert.Equal(t, "def __init__(self, name: str) -> None:", ctor.Signature())
}

func TestParse_ClassBareBases(t *testing.T) {
	nodes, diags := parseSource(t,
		".. class:: Derived(Base, Mixin)",
		"",
		"   Docs.",
	)

	assert.False(t, diags.HasErrors())
	require.Len(t, nodes, 1)

	cls := nodes[0].(*docnode.Class)
	assert.Equal(t, []string{"Base", "Mixin"}, cls.BaseTypes)
	assert.Empty(t, cls.Members)
}

func TestParse_ClassMethods(t *testing.T) {
	nodes, diags := parseSource(t,
		".. class:: Animator",
		"",
		"   .. method:: play(speed=1.0)",
		"",
		"      :type speed: float",
		"",
		"   .. staticmethod:: version()",
		"",
		"      :rtype: string",
	)

	assert.False(t, diags.HasErrors())
	require.Len(t, nodes, 1)

	cls := nodes[0].(*docnode.Class)
	assert.Empty(t, cls.BaseTypes)
	require.Len(t, cls.Members, 2)

	play := cls.Members[0].(*docnode.Function)
	assert.Equal(t, docnode.ScopeInstance, play.Scope)
	assert.Equal(t, "def play(self, speed: float = 1.0) -> None:", play.Signature())

	version := cls.Members[1].(*docnode.Function)
	assert.Equal(t, docnode.ScopeStatic, version.Scope)
	assert.Equal(t, "@staticmethod\ndef version() -> str:", version.Signature())
}

func TestParse_DataWithoutType(t *testing.T) {
	nodes, diags := parseSource(t,
		".. data:: frame_rate",
		"",
		"   Frames per second.",
	)

	assert.False(t, diags.HasErrors())
	require.Len(t, nodes, 1)

	data := nodes[0].(*docnode.Data)
	assert.Equal(t, docnode.AnyType, data.Type)
	assert.Equal(t, "Frames per second.", data.Doc.Text())
}

func TestParse_UnresolvedTypeWarns(t *testing.T) {
	nodes, diags := parseSource(t,
		".. function:: target()",
		"",
		"   :rtype: the tracked object",
	)

	require.Len(t, nodes, 1)

	fn := nodes[0].(*docnode.Function)
	assert.Equal(t, docnode.AnyType, fn.Type)

	assert.False(t, diags.HasErrors())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnresolvedType, diags.Warnings[0].Code)
	assert.Equal(t, "target", diags.Warnings[0].Symbol)
}

func TestParse_InvalidSignature(t *testing.T) {
	nodes, diags := parseSource(t,
		".. function:: 123bad(",
	)

	assert.Empty(t, nodes)
	assert.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeParseFailure, diags.Errors[0].Code)
}

func TestParse_SkipsTitlesAndComments(t *testing.T) {
	nodes, diags := parseSource(t,
		".. module:: mylib",
		"",
		"Title",
		"=====",
		"",
		".. just a comment",
		"",
		"Intro paragraph.",
	)

	assert.False(t, diags.HasErrors())
	require.Len(t, nodes, 1)

	m := nodes[0].(*docnode.Module)
	require.NotNil(t, m.Doc)
	assert.Equal(t, []string{"Title", "", "Intro paragraph."}, m.Doc.Lines)
}

func TestParse_RewritesRolesInDocstrings(t *testing.T) {
	nodes, _ := parseSource(t,
		".. function:: scene()",
		"",
		"   Returns the active :class:`~bge.types.KX_Scene` instance.",
	)

	require.Len(t, nodes, 1)

	fn := nodes[0].(*docnode.Function)
	assert.Equal(t, "Returns the active KX_Scene <bge.types.KX_Scene> instance.", fn.Doc.Text())
}

func TestParseFile_MissingFile(t *testing.T) {
	diags := &diagnostic.Diagnostics{}

	_, err := ParseFile("does-not-exist.rst", diags)
	require.Error(t, err)
}
