package rst

import (
	"fmt"
	"regexp"
	"strings"
)

// signature is one parsed declaration line: a name plus its formal
// parameters with optional default literals.
type signature struct {
	name   string
	params []sigParam
}

type sigParam struct {
	name string
	def  string // authored literal source, verbatim
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// parseSignature parses a declaration line like "glBlendFunc(sfactor, dfactor)"
// or "save(path, compress=True):". A bare name without parentheses is a
// signature with no parameter list.
func parseSignature(line string) (*signature, error) {
	s := strings.TrimSpace(line)
	s = strings.TrimSuffix(s, ":")
	s = strings.TrimSpace(s)

	open := strings.Index(s, "(")
	if open < 0 {
		if !identRe.MatchString(s) {
			return nil, fmt.Errorf("invalid signature %q", line)
		}

		return &signature{name: s}, nil
	}

	name := strings.TrimSpace(s[:open])
	if !identRe.MatchString(name) {
		return nil, fmt.Errorf("invalid signature %q", line)
	}

	close := strings.LastIndex(s, ")")
	if close < open {
		return nil, fmt.Errorf("unbalanced parentheses in signature %q", line)
	}

	sig := &signature{name: name}

	for _, part := range splitParams(s[open+1 : close]) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// *args and **kwargs carry no type or default information; the
		// original generator drops them as well.
		if strings.HasPrefix(part, "*") {
			continue
		}

		p := sigParam{name: part}

		if eq := strings.Index(part, "="); eq >= 0 {
			p.name = strings.TrimSpace(part[:eq])
			p.def = strings.TrimSpace(part[eq+1:])
		}

		if p.name == "self" {
			continue
		}

		if !identRe.MatchString(p.name) {
			return nil, fmt.Errorf("invalid parameter %q in signature %q", part, line)
		}

		sig.params = append(sig.params, p)
	}

	return sig, nil
}

// splitParams splits a parameter list on top-level commas, respecting
// brackets and string literals so defaults like (0, 0, 0) stay intact.
func splitParams(list string) []string {
	var (
		parts   []string
		depth   int
		quote   byte
		current strings.Builder
	)

	for i := 0; i < len(list); i++ {
		c := list[i]

		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, current.String())
			current.Reset()

			continue
		}

		current.WriteByte(c)
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}
