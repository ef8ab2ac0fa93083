package resolve

import (
	"sort"

	"docstub-generator/internal/docnode"
)

// Member ordering rule: kind rank first (imports, data, classes, functions),
// then case-sensitive name within a kind. The sort is stable, so equal keys
// keep their merge order and regeneration is byte-identical.

func kindRank(n docnode.Node) int {
	switch n.(type) {
	case *docnode.DocString:
		return 0
	case *docnode.Import:
		return 1
	case *docnode.Data:
		return 2
	case *docnode.Class:
		return 3
	case *docnode.Function:
		return 4
	default:
		return 5
	}
}

func memberName(n docnode.Node) string {
	switch v := n.(type) {
	case *docnode.Import:
		return v.Module
	case *docnode.Data:
		return v.Name
	case *docnode.Class:
		return v.Name
	case *docnode.Function:
		return v.Name
	default:
		return ""
	}
}

// SortMembers orders the module's direct members by the documented rule.
func SortMembers(m *docnode.Module) {
	sort.SliceStable(m.Members, func(i, j int) bool {
		ri, rj := kindRank(m.Members[i]), kindRank(m.Members[j])
		if ri != rj {
			return ri < rj
		}

		return memberName(m.Members[i]) < memberName(m.Members[j])
	})
}

// Apply runs the full resolution pipeline over one module.
func Apply(m *docnode.Module) {
	Localize(m)
	SynthesizeImports(m)
	SortMembers(m)
}
