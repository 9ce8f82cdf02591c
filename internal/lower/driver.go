// Package lower implements the traversal driver and deterministic
// emitter (§4.6, §4.7): the outer loop that visits every declaration of
// a translation unit, imports each canonical declaration at most once,
// dispatches to the right importer, and sorts the resulting items into
// the IR's final total order.
package lower

import (
	"cclower/internal/cc"
	"cclower/internal/comments"
	"cclower/internal/importers"
	"cclower/internal/ir"
)

// Driver owns every piece of per-run state the traversal needs: the
// importer context (known_type_decls, the record table, lifetime names)
// and the comment manager. Neither is shared across runs (§5).
type Driver struct {
	decls    []cc.Decl
	ctx      *importers.Context
	comments *comments.Manager
	sm       cc.SourceManager

	seen map[ir.DeclID]bool
}

// NewDriver constructs a Driver for a single lowering run over tu.
func NewDriver(tu cc.TranslationUnit, owningTarget func(cc.Decl) ir.Label, currentTarget ir.Label) *Driver {
	return &Driver{
		decls:    tu.Decls,
		ctx:      importers.NewContext(tu.Mangler, owningTarget, currentTarget),
		comments: comments.NewManager(tu.Comments),
		sm:       tu.SourceManager,
		seen:     make(map[ir.DeclID]bool),
	}
}

// Run executes the traversal and returns the deterministically ordered
// item sequence.
func (d *Driver) Run() []ir.Item {
	var items []ir.Item

	for _, decl := range d.decls {
		items = append(items, d.visit(decl)...)
	}
	for _, c := range d.comments.Flush() {
		cp := c
		items = append(items, &cp)
	}

	return order(items, d.sm)
}

// visit implements the per-declaration steps of §4.6.
func (d *Driver) visit(decl cc.Decl) []ir.Item {
	if decl == nil {
		return nil
	}

	id := decl.CanonicalID()
	if d.seen[id] {
		return nil
	}

	if decl.Parent() == cc.InNamespace {
		d.seen[id] = true
		return []ir.Item{&ir.UnsupportedItem{
			Name:      decl.QualifiedName(),
			Message:   "Items contained in namespaces are not supported yet",
			SourceLoc: decl.Loc(),
		}}
	}

	var items []ir.Item
	for _, c := range d.comments.BeforeDecl(decl) {
		cp := c
		items = append(items, &cp)
	}

	emitted := dispatch(d.ctx, decl)
	if len(emitted) > 0 {
		d.seen[id] = true
	}
	items = append(items, emitted...)

	d.comments.AfterDecl(decl, false)

	return items
}

// dispatch routes decl to its importer based on its concrete type.
func dispatch(ctx *importers.Context, decl cc.Decl) []ir.Item {
	switch v := decl.(type) {
	case *cc.FunctionDecl:
		return importers.ImportFunction(ctx, v)
	case *cc.RecordDecl:
		return importers.ImportRecord(ctx, v)
	case *cc.TypedefDecl:
		return importers.ImportTypeAlias(ctx, v)
	default:
		return nil
	}
}
