package ir

import "cclower/internal/source"

// Item is one entry of the emitted IR: a lowered declaration, a
// floating comment, or a marker for a declaration that could not be
// imported.
type Item interface {
	itemNode()
	// Loc is the item's begin location, used by the emitter's source-order
	// comparator.
	Loc() source.Loc
}

// TypeAlias is a lowered `using Name = UnderlyingType;` (or typedef)
// declaration whose spelling is not absorbed by the type mapper's
// well-known table.
type TypeAlias struct {
	Identifier     Identifier
	OwningTarget   Label
	DocComment     *string
	UnderlyingType MappedType
	SourceLoc      source.Loc
}

func (t *TypeAlias) itemNode()        {}
func (t *TypeAlias) Loc() source.Loc { return t.SourceLoc }

// Comment is a floating (free) comment not attached to any imported
// declaration.
type Comment struct {
	Text      string
	SourceLoc source.Loc
}

func (c *Comment) itemNode()        {}
func (c *Comment) Loc() source.Loc { return c.SourceLoc }

// UnsupportedItem replaces a declaration that could not be imported, or
// records that an otherwise-importable declaration lost a sub-part (field,
// parameter, return type) that could not be translated.
type UnsupportedItem struct {
	// Name is the offending declaration's qualified name.
	Name      string
	Message   string
	SourceLoc source.Loc
}

func (u *UnsupportedItem) itemNode()        {}
func (u *UnsupportedItem) Loc() source.Loc { return u.SourceLoc }
