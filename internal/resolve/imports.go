package resolve

import (
	"sort"

	"docstub-generator/internal/common"
	"docstub-generator/internal/docnode"
)

// SynthesizeImports scans every type expression in the module's subtree and
// appends one Import node per foreign module referenced, aggregating the set
// of imported names. Defaulted types count too: an untyped argument renders
// as the any-token and therefore requires its module.
//
// Imports are appended in module-path order; SortMembers keeps them there.
func SynthesizeImports(m *docnode.Module) []*docnode.Import {
	required := make(map[string]*docnode.Import)

	record := func(expr string) {
		for _, token := range qualifiedRe.FindAllString(expr, -1) {
			path := common.DottedPrefix(token)
			if path == "" || path == m.Name {
				continue
			}

			imp, ok := required[path]
			if !ok {
				imp = &docnode.Import{Module: path}
				required[path] = imp
			}

			imp.AddType(common.DottedBase(token))
		}
	}

	collectTypes(m.Members, record)

	paths := make([]string, 0, len(required))
	for path := range required {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	imports := make([]*docnode.Import, 0, len(paths))

	for _, path := range paths {
		imports = append(imports, required[path])
		m.Append(required[path])
	}

	return imports
}

// collectTypes feeds every effective type expression in the subtree to fn,
// substituting the default tokens for unset types the same way rendering
// does.
func collectTypes(members []docnode.Node, fn func(string)) {
	for _, member := range members {
		switch v := member.(type) {
		case *docnode.Function:
			fn(v.ReturnType())

			for _, arg := range v.Args {
				if arg.Type == "" {
					fn(docnode.AnyType)
				} else {
					fn(arg.Type)
				}
			}

		case *docnode.Data:
			if v.Type == "" {
				fn(docnode.AnyType)
			} else {
				fn(v.Type)
			}

		case *docnode.Class:
			for _, base := range v.BaseTypes {
				fn(base)
			}

			collectTypes(v.Members, fn)
		}
	}
}
