package docnode

import (
	"strings"

	"docstub-generator/internal/common"
)

// Type tokens used when a declaration carries no explicit type.
const (
	// NoValueType is the return type of functions documented without one.
	NoValueType = "None"
	// AnyType is the type of arguments and data documented without one.
	AnyType = "typing.Any"
)

// Node is implemented by every element of a document tree.
// The set of implementations is closed; new kinds require a new Kind value.
type Node interface {
	Kind() Kind
}

// DocString holds normalized documentation text, one entry per line.
// Role references have already been rewritten by the fragment parser.
type DocString struct {
	Lines []string
}

func (d *DocString) Kind() Kind { return KindDocString }

// Text returns the docstring as a single newline-joined string.
func (d *DocString) Text() string {
	return strings.Join(d.Lines, "\n")
}

// Empty reports whether the docstring has no content.
func (d *DocString) Empty() bool {
	for _, l := range d.Lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}

	return true
}

// Import is a synthesized import statement.
// Module is "." for same-package submodule imports, or an absolute dotted
// path for external references.
type Import struct {
	Module string
	Types  []string
}

func (i *Import) Kind() Kind { return KindImport }

// Relative reports whether the import references a sibling submodule.
func (i *Import) Relative() bool {
	return strings.HasPrefix(i.Module, ".")
}

// AddType records an imported name, keeping Types sorted and duplicate-free.
func (i *Import) AddType(name string) {
	for pos, t := range i.Types {
		if t == name {
			return
		}

		if t > name {
			i.Types = append(i.Types[:pos], append([]string{name}, i.Types[pos:]...)...)
			return
		}
	}

	i.Types = append(i.Types, name)
}

// Argument is one formal parameter of a Function.
// Default holds the authored literal source text verbatim; it is never
// re-parsed or validated.
type Argument struct {
	Name    string
	Type    string
	Default string
}

func (a *Argument) Kind() Kind { return KindArgument }

// Function is a callable declaration. Argument order is preserved from the
// authored signature and never reordered.
type Function struct {
	Name    string
	Type    string // return type expression, empty means NoValueType
	Scope   FunctionScope
	Returns string // free-text return description, kept for the docstring
	Doc     *DocString
	Args    []*Argument
}

func (f *Function) Kind() Kind { return KindFunction }

// Data is a module- or class-level constant or attribute declaration.
type Data struct {
	Name string
	Type string // empty means AnyType
	Doc  *DocString
}

func (d *Data) Kind() Kind { return KindData }

// Class is a class declaration owning its members.
type Class struct {
	Name      string
	BaseTypes []string
	Doc       *DocString
	Members   []Node // Function, Data, nested Class
}

func (c *Class) Kind() Kind { return KindClass }

// Append attaches a member to the class.
func (c *Class) Append(n Node) {
	c.Members = append(c.Members, n)
}

// Module is the root container of a merged document tree.
type Module struct {
	Name    string
	Doc     *DocString
	Members []Node // Import, Data, Class, Function
}

func (m *Module) Kind() Kind { return KindModule }

// Append attaches a member to the end of the module.
func (m *Module) Append(n Node) {
	m.Members = append(m.Members, n)
}

// Insert places a member at the given index, shifting later members.
func (m *Module) Insert(i int, n Node) {
	m.Members = append(m.Members, nil)
	copy(m.Members[i+1:], m.Members[i:])
	m.Members[i] = n
}

// Remove detaches the first member identical to n. Ownership transfers to
// the caller; the node is never aliased from two containers.
func (m *Module) Remove(n Node) bool {
	for i, member := range m.Members {
		if member == n {
			m.Members = append(m.Members[:i], m.Members[i+1:]...)
			return true
		}
	}

	return false
}

// Classes returns the classes directly owned by the module.
func (m *Module) Classes() []*Class {
	var classes []*Class

	for _, member := range m.Members {
		if c, ok := member.(*Class); ok {
			classes = append(classes, c)
		}
	}

	return classes
}

// Functions returns the functions directly owned by the module.
func (m *Module) Functions() []*Function {
	var funcs []*Function

	for _, member := range m.Members {
		if f, ok := member.(*Function); ok {
			funcs = append(funcs, f)
		}
	}

	return funcs
}

// ClassNames returns the set of class names defined directly in the module.
func (m *Module) ClassNames() map[string]bool {
	names := make(map[string]bool)

	for _, c := range m.Classes() {
		names[c.Name] = true
	}

	return names
}

// LocalName strips the module's own prefix from a dotted name.
// "bge.types.KX_GameObject" relative to module "bge.types" is
// "KX_GameObject"; for unrelated names the last segment is returned.
func (m *Module) LocalName(name string) string {
	if m.Name != "" && strings.HasPrefix(name, m.Name+".") {
		return name[len(m.Name)+1:]
	}

	return common.DottedBase(name)
}
