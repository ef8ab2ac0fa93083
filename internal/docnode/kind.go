package docnode

import "docstub-generator/internal/common"

// Kind identifies the concrete type of a Node.
type Kind int

const (
	KindModule Kind = iota
	KindClass
	KindFunction
	KindData
	KindArgument
	KindImport
	KindDocString
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	case KindData:
		return "data"
	case KindArgument:
		return "argument"
	case KindImport:
		return "import"
	case KindDocString:
		return "docstring"
	default:
		return common.UnknownStr
	}
}
