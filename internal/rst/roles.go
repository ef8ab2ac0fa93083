package rst

import (
	"regexp"
	"strings"

	"docstub-generator/internal/common"
)

var roleRe = regexp.MustCompile("(?::[a-zA-Z]+)+:`([^`]+)`")

// rewriteRoles condenses Sphinx cross-reference roles into plain docstring
// text. A collapsed reference like :class:`~bge.logic.globalDict` becomes
// "globalDict <bge.logic.globalDict>"; explicit titles and plain targets are
// kept as authored.
func rewriteRoles(text string) string {
	return roleRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := m[strings.Index(m, "`")+1 : len(m)-1]

		if target, ok := strings.CutPrefix(inner, "~"); ok {
			return common.DottedBase(target) + " <" + target + ">"
		}

		return inner
	})
}

// roleTarget extracts the raw qualified target from a cross-reference role.
// Used for type expressions, where the full dotted name is wanted.
func roleTarget(inner string) string {
	inner = strings.TrimPrefix(inner, "~")

	// Explicit title form: "title <target>".
	if open := strings.LastIndex(inner, "<"); open >= 0 && strings.HasSuffix(inner, ">") {
		return strings.TrimSpace(inner[open+1 : len(inner)-1])
	}

	return strings.TrimSpace(inner)
}

// stripRoles replaces every cross-reference role in a type expression with
// its qualified target.
func stripRoles(expr string) string {
	return roleRe.ReplaceAllStringFunc(expr, func(m string) string {
		return roleTarget(m[strings.Index(m, "`")+1 : len(m)-1])
	})
}
