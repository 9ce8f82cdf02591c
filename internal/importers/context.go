// Package importers implements the declaration importers (§4.3): turning
// a single cc.Decl into zero or more ir.Item values, using the type
// mapper, special-member classifier, and mangler to do so.
package importers

import (
	"cclower/internal/cc"
	"cclower/internal/ir"
	"cclower/internal/source"
	"cclower/internal/typemap"
)

// Context carries the state and services a declaration import needs but
// does not itself own — ownership stays with the traversal driver (§5
// "the in-memory caches... are owned by the traversal driver and are not
// shared").
type Context struct {
	// KnownDecls is the driver's known_type_decls table: canonical decl
	// to translated identifier. The record importer inserts into it
	// provisionally and retracts on field-import failure.
	KnownDecls map[ir.DeclID]ir.Identifier

	// Records resolves a canonical record declaration to its RecordDecl,
	// used by the "passable in registers" check on by-value parameters
	// and return types.
	Records map[ir.DeclID]*cc.RecordDecl

	Mangler       cc.Mangler
	OwningTarget  func(cc.Decl) ir.Label
	CurrentTarget ir.Label

	lifetimeNames map[string]ir.LifetimeID
	nextLifetime  ir.LifetimeID
}

// NewContext constructs a fresh, empty Context. One Context is built per
// traversal run.
func NewContext(mangler cc.Mangler, owningTarget func(cc.Decl) ir.Label, currentTarget ir.Label) *Context {
	return &Context{
		KnownDecls:    make(map[ir.DeclID]ir.Identifier),
		Records:       make(map[ir.DeclID]*cc.RecordDecl),
		Mangler:       mangler,
		OwningTarget:  owningTarget,
		CurrentTarget: currentTarget,
		lifetimeNames: make(map[string]ir.LifetimeID),
	}
}

func (c *Context) mapper() *typemap.Mapper {
	return typemap.NewMapper(func(id ir.DeclID) (ir.Identifier, bool) {
		name, ok := c.KnownDecls[id]
		return name, ok
	})
}

// lifetimeFor resolves a lifetime name to a stable Lifetime value,
// assigning a fresh ID the first time a name is seen. This is the
// "symbol table" §4.3 step 7 resolves distinct lifetimes through.
func (c *Context) lifetimeFor(name string) ir.Lifetime {
	id, ok := c.lifetimeNames[name]
	if !ok {
		c.nextLifetime++
		id = c.nextLifetime
		c.lifetimeNames[name] = id
	}
	return ir.Lifetime{Name: name, ID: id}
}

func (c *Context) lifetimeStack(names []string) *typemap.LifetimeStack {
	if len(names) == 0 {
		return nil
	}
	lts := make([]ir.Lifetime, len(names))
	for i, n := range names {
		lts[i] = c.lifetimeFor(n)
	}
	return typemap.NewLifetimeStack(lts)
}

// passableInRegisters reports whether t, if it names a record directly
// (not through a pointer/reference wrapper), may be passed by value per
// the record's own is_trivial_abi fact. Anything that is not a direct
// record reference is trivially passable.
func passableInRegisters(ctx *Context, t ir.CcType) bool {
	if t.DeclID == nil {
		return true
	}
	rec, ok := ctx.Records[*t.DeclID]
	if !ok {
		return true
	}
	return rec.IsTrivialAbi
}

func dedupeLifetimes(lts []ir.Lifetime) []ir.Lifetime {
	if len(lts) == 0 {
		return nil
	}
	seen := make(map[ir.LifetimeID]bool, len(lts))
	out := make([]ir.Lifetime, 0, len(lts))
	for _, lt := range lts {
		if seen[lt.ID] {
			continue
		}
		seen[lt.ID] = true
		out = append(out, lt)
	}
	return out
}

func unsupportedFromErr(d cc.Decl, err error) *ir.UnsupportedItem {
	return &ir.UnsupportedItem{Name: d.QualifiedName(), Message: err.Error(), SourceLoc: d.Loc()}
}

func unsupportedWithMessage(d cc.Decl, msg string) *ir.UnsupportedItem {
	return &ir.UnsupportedItem{Name: d.QualifiedName(), Message: msg, SourceLoc: d.Loc()}
}

// unsupportedAt builds an UnsupportedItem reported against d's name but
// at loc, for failures localized to a sub-part of d (a field, a
// parameter) rather than to d's own begin location.
func unsupportedAt(d cc.Decl, msg string, loc source.Loc) *ir.UnsupportedItem {
	return &ir.UnsupportedItem{Name: d.QualifiedName(), Message: msg, SourceLoc: loc}
}
