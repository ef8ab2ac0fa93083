package rst

import (
	"regexp"
	"strings"
)

// Prose forms that map directly onto Python type names.
var basicTypes = map[string]string{
	"string":  "str",
	"str":     "str",
	"int":     "int",
	"integer": "int",
	"float":   "float",
	"double":  "float",
	"bool":    "bool",
	"boolean": "bool",
	"bytes":   "bytes",
	"dict":    "dict",
	"none":    "None",
	"any":     "typing.Any",
	"value":   "typing.Any",
	"callable": "typing.Callable",
	"function": "typing.Callable",
}

// Container prose prefixes ("list of strings", "sequence of floats").
var containerTypes = map[string]string{
	"list":     "typing.List",
	"sequence": "typing.Sequence",
	"set":      "typing.Set",
	"tuple":    "typing.Tuple",
}

var typeLiteralRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*(\[.+\])?$`)

// NormalizeType converts an authored type expression into a Python typing
// expression. The second result is false when the expression matched no
// recognized form; callers decide whether to fall back or pass through.
//
// Expressions that already look like type literals (bare or dotted names,
// optionally subscripted) pass through as authored.
func NormalizeType(expr string) (string, bool) {
	s := strings.TrimSpace(stripRoles(expr))
	s = strings.TrimRight(s, ".,")
	s = strings.TrimSpace(s)

	if s == "" {
		return "", false
	}

	// "X or None" means the value is optional.
	if inner, ok := strings.CutSuffix(strings.ToLower(s), " or none"); ok {
		if elem, ok := NormalizeType(s[:len(inner)]); ok {
			return "typing.Optional[" + elem + "]", true
		}

		return "", false
	}

	lower := strings.ToLower(s)

	if t, ok := basicTypes[lower]; ok {
		return t, true
	}

	// "list of strings", "sequence of KX_GameObject".
	if head, elem, found := strings.Cut(lower, " of "); found {
		if container, ok := containerTypes[head]; ok {
			if t, ok := normalizeElem(s[len(lower)-len(elem):]); ok {
				return container + "[" + t + "]", true
			}

			return container, true
		}
	}

	// "list [str]", "list[str]".
	if open := strings.Index(s, "["); open > 0 && strings.HasSuffix(s, "]") {
		head := strings.ToLower(strings.TrimSpace(s[:open]))
		if container, ok := containerTypes[head]; ok {
			if t, ok := normalizeElem(s[open+1 : len(s)-1]); ok {
				return container + "[" + t + "]", true
			}
		}
	}

	// Already shaped like a type literal: keep as authored. Spaces may
	// only appear inside a subscript.
	if typeLiteralRe.MatchString(s) {
		return s, true
	}

	return "", false
}

// normalizeElem normalizes a container element expression, tolerating the
// plural prose form ("strings", "integers").
func normalizeElem(elem string) (string, bool) {
	elem = strings.TrimSpace(elem)
	lower := strings.ToLower(elem)

	if t, ok := basicTypes[lower]; ok {
		return t, true
	}

	// Prose pluralizes the element ("list of strings").
	if singular, ok := strings.CutSuffix(lower, "s"); ok {
		if t, ok := basicTypes[singular]; ok {
			return t, true
		}
	}

	return NormalizeType(elem)
}
