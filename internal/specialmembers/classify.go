// Package specialmembers implements the special-member classifier (§4.2):
// deciding, for a record's copy constructor, move constructor, and
// destructor, how each is defined and what access it is reachable at.
package specialmembers

import (
	"cclower/internal/cc"
	"cclower/internal/ir"
)

// Classify derives the SpecialMemberFunc for a single special member
// declaration. fn may be nil, meaning the record has no such member at
// all (distinct from an implicitly-deleted one) — Classify reports it
// Deleted at Private access, matching the conservative default a
// declaration importer would apply to "nothing to call here."
func Classify(fn *cc.FunctionDecl) ir.SpecialMemberFunc {
	if fn == nil {
		return ir.SpecialMemberFunc{Definition: ir.Deleted, Access: ir.Private}
	}

	return ir.SpecialMemberFunc{
		Definition: classifyDefinition(fn),
		Access:     fn.Access,
	}
}

func classifyDefinition(fn *cc.FunctionDecl) ir.SpecialMemberDefinition {
	if fn.IsDeleted {
		return ir.Deleted
	}
	if fn.IsTrivial {
		return ir.Trivial
	}
	return ir.Nontrivial
}
