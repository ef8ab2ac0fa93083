package task

import (
	"unicode"
	"unicode/utf8"

	"docstub-generator/internal/common"
)

// Kind is the variant of a namespace task, fully determined by the casing of
// its name's first character.
type Kind int

const (
	// KindModule tasks merge child fragments and emit a stub file.
	KindModule Kind = iota
	// KindClass tasks contribute their parsed class to the owning module.
	KindClass
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindClass:
		return "class"
	default:
		return common.UnknownStr
	}
}

// kindOf derives the task variant from a name segment: a lowercase first
// character means module, anything else class.
func kindOf(name string) Kind {
	r, _ := utf8.DecodeRuneInString(name)
	if name == "" || unicode.IsLower(r) {
		return KindModule
	}

	return KindClass
}
