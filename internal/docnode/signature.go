package docnode

import "strings"

// ReturnType returns the declared return type, falling back to the
// no-value token when the function was documented without one.
func (f *Function) ReturnType() string {
	if f.Type == "" {
		return NoValueType
	}

	return f.Type
}

// Decorator returns the decorator line implied by the function's scope,
// or empty string when none applies.
func (f *Function) Decorator() string {
	switch f.Scope {
	case ScopeClass:
		return "@classmethod"
	case ScopeStatic:
		return "@staticmethod"
	default:
		return ""
	}
}

// Signature renders the canonical declaration of the function, including
// any decorator on its own line before the def line.
//
//	@classmethod
//	def create(cls, name: str) -> Widget:
func (f *Function) Signature() string {
	var sb strings.Builder

	if dec := f.Decorator(); dec != "" {
		sb.WriteString(dec)
		sb.WriteString("\n")
	}

	params := make([]string, 0, len(f.Args)+1)

	switch f.Scope {
	case ScopeInstance:
		params = append(params, "self")
	case ScopeClass:
		params = append(params, "cls")
	}

	for _, arg := range f.Args {
		params = append(params, arg.Render())
	}

	sb.WriteString("def ")
	sb.WriteString(f.Name)
	sb.WriteString("(")
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteString(") -> ")
	sb.WriteString(f.ReturnType())
	sb.WriteString(":")

	return sb.String()
}

// Render returns the parameter form of the argument: "name: type" with the
// any-token when untyped, plus " = default" with the authored literal.
func (a *Argument) Render() string {
	t := a.Type
	if t == "" {
		t = AnyType
	}

	if a.Default != "" {
		return a.Name + ": " + t + " = " + a.Default
	}

	return a.Name + ": " + t
}

// Decl renders the data declaration line: "name: type = ...".
func (d *Data) Decl() string {
	t := d.Type
	if t == "" {
		t = AnyType
	}

	return d.Name + ": " + t + " = ..."
}

// Decl renders the class declaration line, including base types when present.
func (c *Class) Decl() string {
	if len(c.BaseTypes) == 0 {
		return "class " + c.Name + ":"
	}

	return "class " + c.Name + "(" + strings.Join(c.BaseTypes, ", ") + "):"
}

// Decl renders the import statement. Relative imports name their types,
// absolute imports reference the module path only (usage stays qualified).
func (i *Import) Decl() string {
	if i.Relative() {
		return "from " + i.Module + " import " + strings.Join(i.Types, ", ")
	}

	return "import " + i.Module
}
