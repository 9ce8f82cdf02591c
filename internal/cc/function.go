package cc

import (
	"cclower/internal/ir"
	"cclower/internal/source"
)

// ParmVarDecl is one parameter of a FunctionDecl. Name is empty for an
// unnamed parameter; the importer synthesizes __param_i in that case.
type ParmVarDecl struct {
	Name string
	Type Type
	Loc  source.Loc
}

// Lifetimes carries the optional lifetime-annotation payload for a
// function: one list of lifetime names per parameter (outermost to
// innermost pointer layer, back-to-front consumption order), plus the
// receiver's and return type's lifetimes. A nil Lifetimes means the
// function carries no lifetime annotations at all.
type Lifetimes struct {
	ThisLifetimes   []string
	ReturnLifetimes []string
	ParamLifetimes  [][]string // must have one entry per Params, if non-nil
}

// FunctionDecl is a free function, member function, constructor, or
// destructor.
type FunctionDecl struct {
	id            ir.DeclID
	qualifiedName string
	loc           source.Loc
	extentEnd     source.Loc
	parent        ParentKind
	docComment    *string
	docCommentLoc *source.Loc

	Name          string // empty for constructors/destructors
	IsConstructor bool
	IsDestructor  bool
	IsDeleted     bool

	// IsDefaultConstructor/IsCopyConstructor/IsMoveConstructor are only
	// meaningful when IsConstructor is true; they mirror the distinction
	// a real Sema would have already made (isDefaultConstructor() etc.)
	// and feed the emitter's local_order tiebreak (§4.7).
	IsDefaultConstructor bool
	IsCopyConstructor    bool
	IsMoveConstructor    bool
	IsInline      bool
	IsStatic      bool // static member function: no receiver
	Access        ir.Access

	// OwningRecord is non-nil iff this is a member function.
	OwningRecord *RecordDecl
	IsConstQualified bool
	IsVirtual        bool

	ReturnType Type
	Params     []ParmVarDecl
	Lifetimes  *Lifetimes

	// IsUserProvided/IsImplicit/IsTrivial feed the special-member
	// classifier when this FunctionDecl is a record's copy/move
	// constructor or destructor; they are meaningless otherwise.
	IsUserProvided bool
	IsImplicit     bool
	IsTrivial      bool
}

// NewFunctionDecl constructs a FunctionDecl with the identity/location
// fields every Decl needs; callers then set the remaining public fields
// directly (this package's types are fixture-construction DTOs, not
// encapsulated objects).
func NewFunctionDecl(id ir.DeclID, qualifiedName string, loc, extentEnd source.Loc, parent ParentKind) *FunctionDecl {
	return &FunctionDecl{id: id, qualifiedName: qualifiedName, loc: loc, extentEnd: extentEnd, parent: parent}
}

func (f *FunctionDecl) CanonicalID() ir.DeclID  { return f.id }
func (f *FunctionDecl) QualifiedName() string   { return f.qualifiedName }
func (f *FunctionDecl) Loc() source.Loc         { return f.loc }
func (f *FunctionDecl) ExtentEnd() source.Loc   { return f.extentEnd }
func (f *FunctionDecl) Parent() ParentKind      { return f.parent }
func (f *FunctionDecl) DocComment() *string     { return f.docComment }

func (f *FunctionDecl) DocCommentLoc() (source.Loc, bool) {
	if f.docCommentLoc == nil {
		return source.Loc{}, false
	}
	return *f.docCommentLoc, true
}

// SetDocComment attaches a formatted doc comment and the raw comment's
// begin location it was derived from.
func (f *FunctionDecl) SetDocComment(text string, loc source.Loc) {
	f.docComment = &text
	f.docCommentLoc = &loc
}

// IsMemberFunction reports whether this is a method of some record.
func (f *FunctionDecl) IsMemberFunction() bool {
	return f.OwningRecord != nil
}
