package resolve

import (
	"regexp"
	"strings"

	"docstub-generator/internal/docnode"
)

var qualifiedRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)+`)

// Localize rewrites type references of the exact form
// "<module-name>.<ClassName>" to the bare class name when the class is
// defined in the module itself. Every other qualified reference is left
// untouched; bare names are never rewritten. Rewriting applies token-wise,
// so references inside subscripted expressions localize as well.
func Localize(m *docnode.Module) {
	if m.Name == "" {
		return
	}

	local := m.ClassNames()
	prefix := m.Name + "."

	rewrite := func(expr string) string {
		if expr == "" {
			return expr
		}

		return qualifiedRe.ReplaceAllStringFunc(expr, func(token string) string {
			rest, ok := strings.CutPrefix(token, prefix)
			if ok && !strings.Contains(rest, ".") && local[rest] {
				return rest
			}

			return token
		})
	}

	walkTypes(m.Members, rewrite)
}

// walkTypes applies fn to every type expression in the subtree: function
// return types, argument types, data types, and class base types, through
// nested classes.
func walkTypes(members []docnode.Node, fn func(string) string) {
	for _, member := range members {
		switch v := member.(type) {
		case *docnode.Function:
			v.Type = fn(v.Type)

			for _, arg := range v.Args {
				arg.Type = fn(arg.Type)
			}

		case *docnode.Data:
			v.Type = fn(v.Type)

		case *docnode.Class:
			for i, base := range v.BaseTypes {
				v.BaseTypes[i] = fn(base)
			}

			walkTypes(v.Members, fn)
		}
	}
}
