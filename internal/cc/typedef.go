package cc

import (
	"cclower/internal/ir"
	"cclower/internal/source"
)

// TypedefDecl is a `typedef` or alias (`using Name = ...;`) declaration.
type TypedefDecl struct {
	id            ir.DeclID
	qualifiedName string
	loc           source.Loc
	extentEnd     source.Loc
	parent        ParentKind
	docComment    *string
	docCommentLoc *source.Loc

	Name           string
	UnderlyingType Type
}

// NewTypedefDecl constructs a TypedefDecl with its identity/location fields.
func NewTypedefDecl(id ir.DeclID, qualifiedName string, loc, extentEnd source.Loc, parent ParentKind) *TypedefDecl {
	return &TypedefDecl{id: id, qualifiedName: qualifiedName, loc: loc, extentEnd: extentEnd, parent: parent}
}

func (t *TypedefDecl) CanonicalID() ir.DeclID { return t.id }
func (t *TypedefDecl) QualifiedName() string  { return t.qualifiedName }
func (t *TypedefDecl) Loc() source.Loc        { return t.loc }
func (t *TypedefDecl) ExtentEnd() source.Loc  { return t.extentEnd }
func (t *TypedefDecl) Parent() ParentKind     { return t.parent }
func (t *TypedefDecl) DocComment() *string    { return t.docComment }

func (t *TypedefDecl) DocCommentLoc() (source.Loc, bool) {
	if t.docCommentLoc == nil {
		return source.Loc{}, false
	}
	return *t.docCommentLoc, true
}

// SetDocComment attaches a formatted doc comment and the raw comment's
// begin location it was derived from.
func (t *TypedefDecl) SetDocComment(text string, loc source.Loc) {
	t.docComment = &text
	t.docCommentLoc = &loc
}
