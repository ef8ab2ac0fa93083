package rst

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"docstub-generator/internal/diagnostic"
	"docstub-generator/internal/docnode"
)

var (
	directiveRe = regexp.MustCompile(`^(\s*)\.\.\s+([a-zA-Z-]+)::\s?(.*)$`)
	fieldRe     = regexp.MustCompile(`^:((?:arg|type|rtype|return|returns|param)(?:\s+[^:]+)?):\s*(.*)$`)
)

// ParseFile reads and parses a single fragment file. Only I/O failures are
// returned as errors; recoverable problems inside the fragment are recorded
// as diagnostics.
func ParseFile(path string, diags *diagnostic.Diagnostics) ([]docnode.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fragment %s: %w", path, err)
	}

	return Parse(data, path, diags), nil
}

// Parse parses fragment source into its top-level document nodes: a single
// Module for module fragments, or the bare declared members (typically one
// Class) for class fragments.
func Parse(source []byte, file string, diags *diagnostic.Diagnostics) []docnode.Node {
	p := &parser{file: file, diags: diags}

	lines := strings.Split(strings.ReplaceAll(string(source), "\r\n", "\n"), "\n")
	content := p.parseLines(lines)

	// A module directive adopts every loose paragraph as its docstring and
	// every other top-level member as a child.
	var (
		module *docnode.Module
		rest   []docnode.Node
	)

	for _, n := range content.members {
		if m, ok := n.(*docnode.Module); ok && module == nil {
			module = m
			continue
		}

		rest = append(rest, n)
	}

	if module == nil {
		return content.members
	}

	if content.doc != nil && !content.doc.Empty() && module.Doc == nil {
		module.Doc = content.doc
	}

	for _, n := range rest {
		module.Append(n)
	}

	return []docnode.Node{module}
}

type parser struct {
	file  string
	diags *diagnostic.Diagnostics

	// lastPara is the most recent completed paragraph at the current block
	// level; class directives consult it for "base class" references.
	lastPara string
}

// directive is one collected directive block: marker name, argument lines
// (marker remainder plus continuation lines before the first blank), and the
// dedented body.
type directive struct {
	name string
	args []string
	body []string
}

// blockContent is everything recovered from one block of lines.
type blockContent struct {
	doc     *docnode.DocString
	fields  map[string]string
	members []docnode.Node
}

// parseLines processes a dedented block: paragraphs accumulate into the
// docstring, field lists into the field map, directives into member nodes.
func (p *parser) parseLines(lines []string) blockContent {
	content := blockContent{fields: make(map[string]string)}

	var para []string

	flush := func() {
		if len(para) == 0 {
			return
		}

		raw := strings.Join(para, "\n")
		p.lastPara = raw
		text := rewriteRoles(raw)

		if content.doc == nil {
			content.doc = &docnode.DocString{}
		} else {
			content.doc.Lines = append(content.doc.Lines, "")
		}

		content.doc.Lines = append(content.doc.Lines, strings.Split(text, "\n")...)
		para = nil
	}

	for i := 0; i < len(lines); {
		line := lines[i]

		if strings.TrimSpace(line) == "" {
			flush()
			i++

			continue
		}

		if m := directiveRe.FindStringSubmatch(line); m != nil {
			flush()

			d, next := collectDirective(lines, i, len(m[1]), m[2], m[3])
			content.members = append(content.members, p.handleDirective(d)...)
			p.lastPara = ""
			i = next

			continue
		}

		if m := fieldRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			flush()

			name := normalizeFieldName(m[1])
			value := strings.TrimSpace(m[2])
			indent := indentOf(line)
			i++

			// Field bodies may wrap onto deeper-indented lines.
			for i < len(lines) && strings.TrimSpace(lines[i]) != "" && indentOf(lines[i]) > indent {
				value += " " + strings.TrimSpace(lines[i])
				i++
			}

			content.fields[name] = value

			continue
		}

		trimmed := strings.TrimSpace(line)

		// Comments (".." without a directive marker) are skipped with
		// their indented block.
		if strings.HasPrefix(trimmed, "..") {
			indent := indentOf(line)
			i++

			for i < len(lines) && (strings.TrimSpace(lines[i]) == "" || indentOf(lines[i]) > indent) {
				i++
			}

			continue
		}

		// Section title adornments carry no text.
		if isAdornment(trimmed) {
			i++
			continue
		}

		para = append(para, trimmed)
		i++
	}

	flush()

	return content
}

// isAdornment reports whether a line is an RST section title underline or
// overline: two or more repetitions of one punctuation character.
func isAdornment(line string) bool {
	if len(line) < 2 {
		return false
	}

	c := line[0]
	if !strings.ContainsRune("=-`:'\"~^_*+#<>.", rune(c)) {
		return false
	}

	for i := 1; i < len(line); i++ {
		if line[i] != c {
			return false
		}
	}

	return true
}

// collectDirective gathers a directive's argument continuation lines and its
// dedented body, returning the index of the first line after the block.
func collectDirective(lines []string, start, markerIndent int, name, arg string) (directive, int) {
	d := directive{name: name}

	if strings.TrimSpace(arg) != "" {
		d.args = append(d.args, strings.TrimSpace(arg))
	}

	i := start + 1

	// Argument continuation: non-blank lines immediately after the marker.
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" && indentOf(lines[i]) > markerIndent {
		d.args = append(d.args, strings.TrimSpace(lines[i]))
		i++
	}

	// Body: everything further indented than the marker, blanks included.
	var body []string

	for i < len(lines) {
		if strings.TrimSpace(lines[i]) == "" {
			body = append(body, "")
			i++

			continue
		}

		if indentOf(lines[i]) <= markerIndent {
			break
		}

		body = append(body, lines[i])
		i++
	}

	d.body = dedent(body)

	return d, i
}

func (p *parser) handleDirective(d directive) []docnode.Node {
	switch d.name {
	case "module":
		if len(d.args) == 0 {
			p.diags.AddError(diagnostic.CodeParseFailure, "module directive without a name", p.file, "")
			return nil
		}

		m := &docnode.Module{Name: d.args[0]}

		// Description paragraphs may be indented under the directive
		// instead of following it at the top level.
		content := p.parseLines(d.body)
		if content.doc != nil && !content.doc.Empty() {
			m.Doc = content.doc
		}

		for _, n := range content.members {
			m.Append(n)
		}

		return []docnode.Node{m}

	case "currentmodule":
		return nil

	case "function":
		return p.parseFunctionLike(d, docnode.ScopeModule)

	case "method":
		return p.parseFunctionLike(d, docnode.ScopeInstance)

	case "classmethod":
		return p.parseFunctionLike(d, docnode.ScopeClass)

	case "staticmethod":
		return p.parseFunctionLike(d, docnode.ScopeStatic)

	case "class":
		return p.parseClass(d)

	case "data", "attribute":
		return p.parseData(d)

	default:
		// Unknown directives (notes, seealso, code blocks) are skipped
		// together with their bodies.
		return nil
	}
}

// parseFunctionLike handles function, method, classmethod, and staticmethod
// directives. One directive may declare several signatures sharing a single
// description block; each signature becomes its own Function node carrying
// only the arguments its parameter list names.
func (p *parser) parseFunctionLike(d directive, scope docnode.FunctionScope) []docnode.Node {
	content := p.parseLines(d.body)

	var nodes []docnode.Node

	for _, line := range signatureLines(d.args) {
		sig, err := parseSignature(line)
		if err != nil {
			p.diags.AddError(diagnostic.CodeParseFailure, err.Error(), p.file, "")
			continue
		}

		fn := &docnode.Function{Name: sig.name, Scope: scope}

		if rtype, ok := content.fields["rtype"]; ok {
			fn.Type = p.resolveType(rtype, sig.name)
		}

		if ret, ok := content.fields["return"]; ok {
			fn.Returns = rewriteRoles(ret)
		}

		if content.doc != nil && !content.doc.Empty() {
			fn.Doc = cloneDoc(content.doc)
		}

		fn.Args = p.buildArgs(sig, content.fields)

		nodes = append(nodes, fn)
	}

	return nodes
}

func (p *parser) parseClass(d directive) []docnode.Node {
	if len(d.args) == 0 {
		p.diags.AddError(diagnostic.CodeParseFailure, "class directive without a name", p.file, "")
		return nil
	}

	basePara := p.lastPara
	content := p.parseLines(d.body)
	sigLine := strings.Join(d.args, " ")

	sig, err := parseSignature(sigLine)
	if err != nil {
		p.diags.AddError(diagnostic.CodeParseFailure, err.Error(), p.file, "")
		return nil
	}

	cls := &docnode.Class{Name: sig.name}

	if strings.HasPrefix(strings.ToLower(basePara), "base class") {
		cls.BaseTypes = classRefs(basePara)
	}

	switch {
	case len(content.fields) > 0 && strings.Contains(sigLine, "("):
		// Constructor arguments are described: synthesize __init__.
		ctor := &docnode.Function{
			Name:  "__init__",
			Type:  docnode.NoValueType,
			Scope: docnode.ScopeInstance,
			Args:  p.buildArgs(sig, content.fields),
		}
		cls.Append(ctor)

	case len(sig.params) > 0 && len(cls.BaseTypes) == 0:
		// Bare names in the signature parentheses are base classes, not
		// constructor arguments.
		for _, param := range sig.params {
			cls.BaseTypes = append(cls.BaseTypes, param.name)
		}
	}

	if content.doc != nil && !content.doc.Empty() {
		cls.Doc = content.doc
	}

	for _, member := range content.members {
		cls.Append(member)
	}

	return []docnode.Node{cls}
}

func (p *parser) parseData(d directive) []docnode.Node {
	if len(d.args) == 0 {
		p.diags.AddError(diagnostic.CodeParseFailure, "data directive without a name", p.file, "")
		return nil
	}

	content := p.parseLines(d.body)

	data := &docnode.Data{Name: d.args[0]}

	if t, ok := content.fields["type"]; ok {
		data.Type = p.resolveType(t, data.Name)
	} else {
		data.Type = docnode.AnyType
	}

	if content.doc != nil && !content.doc.Empty() {
		data.Doc = content.doc
	}

	return []docnode.Node{data}
}

// buildArgs materializes the Argument list for one signature: its own
// parameters in authored order, typed from the shared field descriptions.
func (p *parser) buildArgs(sig *signature, fields map[string]string) []*docnode.Argument {
	var args []*docnode.Argument

	for _, param := range sig.params {
		arg := &docnode.Argument{Name: param.name, Default: param.def}

		if t, ok := fields["type "+param.name]; ok {
			arg.Type = p.resolveType(t, sig.name)
		}

		args = append(args, arg)
	}

	return args
}

// resolveType normalizes an authored type expression, warning and falling
// back to the any-token for prose that matches no recognized form.
func (p *parser) resolveType(expr, symbol string) string {
	if t, ok := NormalizeType(expr); ok {
		return t
	}

	p.diags.AddWarning(diagnostic.CodeUnresolvedType,
		fmt.Sprintf("unrecognized type expression %q", expr), p.file, symbol)

	return docnode.AnyType
}

// signatureLines splits a directive argument block into individual signature
// lines, joining backslash continuations first.
func signatureLines(args []string) []string {
	joined := strings.ReplaceAll(strings.Join(args, "\n"), "\\\n", " ")

	var lines []string

	for _, line := range strings.Split(joined, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// classRefs extracts qualified class reference targets from a paragraph, in
// encounter order without duplicates.
func classRefs(text string) []string {
	var (
		refs []string
		seen = make(map[string]bool)
	)

	for _, m := range roleRe.FindAllStringSubmatch(text, -1) {
		target := roleTarget(m[1])
		if target == "" || seen[target] {
			continue
		}

		seen[target] = true
		refs = append(refs, target)
	}

	return refs
}

func normalizeFieldName(name string) string {
	name = strings.Join(strings.Fields(name), " ")

	// "param x" and "arg x" describe the same thing; "returns" aliases
	// "return".
	if rest, ok := strings.CutPrefix(name, "param "); ok {
		return "arg " + rest
	}

	if name == "returns" {
		return "return"
	}

	return name
}

func cloneDoc(doc *docnode.DocString) *docnode.DocString {
	return &docnode.DocString{Lines: append([]string(nil), doc.Lines...)}
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func dedent(lines []string) []string {
	margin := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if in := indentOf(line); margin < 0 || in < margin {
			margin = in
		}
	}

	if margin <= 0 {
		return lines
	}

	out := make([]string, len(lines))

	for i, line := range lines {
		if len(line) >= margin {
			out[i] = line[margin:]
		}
	}

	return out
}
