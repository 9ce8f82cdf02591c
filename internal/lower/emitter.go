package lower

import (
	"sort"

	"cclower/internal/cc"
	"cclower/internal/ir"
)

// order implements the deterministic emitter (§4.7): a stable sort keyed
// by (begin_loc, local_order), with invalid source locations sorting
// before valid ones and ties within the same location broken by
// local_order.
func order(items []ir.Item, sm cc.SourceManager) []ir.Item {
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j], sm)
	})
	return items
}

func less(a, b ir.Item, sm cc.SourceManager) bool {
	la, lb := a.Loc(), b.Loc()
	aInvalid, bInvalid := la.Invalid(), lb.Invalid()
	if aInvalid != bInvalid {
		return aInvalid
	}
	if !aInvalid {
		if sm.IsBeforeInTranslationUnit(la, lb) {
			return true
		}
		if sm.IsBeforeInTranslationUnit(lb, la) {
			return false
		}
	}
	return localOrder(a) < localOrder(b)
}

// localOrder is the intra-location tiebreak: 0 for comments and
// top-level records, 2/3/4/5 for default/copy/move/other constructors,
// 6 for destructors, 7 otherwise (§4.7). Local order 1, reserved for
// nested record shells, is never produced — nested records are always
// Unsupported (§4.3).
func localOrder(item ir.Item) int {
	switch v := item.(type) {
	case *ir.Comment:
		return 0
	case *ir.Record:
		return 0
	case *ir.Func:
		if ir.IsDestructor(v.Name) {
			return 6
		}
		if ir.IsConstructor(v.Name) {
			switch v.CtorKind {
			case ir.CtorDefault:
				return 2
			case ir.CtorCopy:
				return 3
			case ir.CtorMove:
				return 4
			default:
				return 5
			}
		}
		return 7
	default:
		return 7
	}
}
