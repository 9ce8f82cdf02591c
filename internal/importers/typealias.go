package importers

import (
	"cclower/internal/cc"
	"cclower/internal/ir"
	"cclower/internal/typemap"
)

// ImportTypeAlias implements the type alias importer (§4.3 Type
// aliases). A nil result means alias produces no item at all: nested in
// a function, or a spelling the type mapper's well-known table already
// absorbs.
func ImportTypeAlias(ctx *Context, alias *cc.TypedefDecl) []ir.Item {
	if alias.Parent() == cc.InFunction {
		return nil
	}
	if alias.Parent() == cc.InRecord {
		return []ir.Item{unsupportedWithMessage(alias, "type aliases nested in a record are not supported")}
	}
	if typemap.IsWellKnownSpelling(alias.Name) {
		return nil
	}

	res, err := ctx.mapper().Map(alias.UnderlyingType, nil, false)
	if err != nil {
		return []ir.Item{unsupportedFromErr(alias, err)}
	}

	return []ir.Item{&ir.TypeAlias{
		Identifier:     ir.Identifier(alias.Name),
		OwningTarget:   ctx.OwningTarget(alias),
		DocComment:     alias.DocComment(),
		UnderlyingType: res.Type,
		SourceLoc:      alias.Loc(),
	}}
}
