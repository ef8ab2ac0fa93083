package emit

import (
	"strings"

	"docstub-generator/internal/docnode"
)

const indentUnit = "    "

// Render serializes a module tree to canonical stub source.
func Render(m *docnode.Module) []byte {
	var chunks []string

	if m.Doc != nil && !m.Doc.Empty() {
		chunks = append(chunks, strings.Join(docstringLines(m.Doc), "\n"))
	}

	var imports []string

	flushImports := func() {
		if len(imports) > 0 {
			chunks = append(chunks, strings.Join(imports, "\n"))
			imports = nil
		}
	}

	for _, member := range m.Members {
		switch v := member.(type) {
		case *docnode.Import:
			imports = append(imports, v.Decl())

		case *docnode.Data:
			flushImports()
			chunks = append(chunks, strings.Join(renderData(v, ""), "\n"))

		case *docnode.Class:
			flushImports()
			chunks = append(chunks, strings.Join(renderClass(v, ""), "\n"))

		case *docnode.Function:
			flushImports()
			chunks = append(chunks, strings.Join(renderFunction(v, ""), "\n"))
		}
	}

	flushImports()

	if len(chunks) == 0 {
		return []byte{}
	}

	return []byte(strings.Join(chunks, "\n\n") + "\n")
}

func renderData(d *docnode.Data, indent string) []string {
	lines := []string{indent + d.Decl()}

	if d.Doc != nil && !d.Doc.Empty() {
		for _, l := range docstringLines(d.Doc) {
			lines = append(lines, indent+l)
		}
	}

	return lines
}

func renderFunction(f *docnode.Function, indent string) []string {
	var lines []string

	for _, l := range strings.Split(f.Signature(), "\n") {
		lines = append(lines, indent+l)
	}

	if doc := functionDoc(f); doc != nil {
		for _, l := range docstringLines(doc) {
			lines = append(lines, indent+indentUnit+l)
		}
	}

	lines = append(lines, indent+indentUnit+"...")

	return lines
}

// functionDoc combines the function's description with its return-value
// description, nil when there is nothing to say.
func functionDoc(f *docnode.Function) *docnode.DocString {
	hasDoc := f.Doc != nil && !f.Doc.Empty()

	if f.Returns == "" {
		if !hasDoc {
			return nil
		}

		return f.Doc
	}

	var lines []string

	if hasDoc {
		lines = append(lines, f.Doc.Lines...)
		lines = append(lines, "")
	}

	lines = append(lines, "Returns: "+f.Returns)

	return &docnode.DocString{Lines: lines}
}

func renderClass(c *docnode.Class, indent string) []string {
	lines := []string{indent + c.Decl()}

	var body [][]string

	if c.Doc != nil && !c.Doc.Empty() {
		body = append(body, docstringLines(c.Doc))
	}

	inner := indent + indentUnit

	for _, member := range c.Members {
		switch v := member.(type) {
		case *docnode.Data:
			body = append(body, renderData(v, ""))
		case *docnode.Function:
			body = append(body, renderFunction(v, ""))
		case *docnode.Class:
			body = append(body, renderClass(v, ""))
		}
	}

	if len(body) == 0 {
		return append(lines, inner+"...")
	}

	for i, block := range body {
		if i > 0 {
			lines = append(lines, "")
		}

		for _, l := range block {
			if l == "" {
				lines = append(lines, "")
			} else {
				lines = append(lines, inner+l)
			}
		}
	}

	return lines
}

// docstringLines renders normalized documentation text as a triple-quoted
// block: inline for a single line, multi-line otherwise.
func docstringLines(d *docnode.DocString) []string {
	if len(d.Lines) == 1 {
		return []string{`"""` + d.Lines[0] + `"""`}
	}

	lines := make([]string, 0, len(d.Lines)+2)
	lines = append(lines, `"""`)
	lines = append(lines, d.Lines...)
	lines = append(lines, `"""`)

	return lines
}
