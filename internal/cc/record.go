package cc

import (
	"cclower/internal/ir"
	"cclower/internal/source"
)

// RecordKind is the C++ keyword a record was introduced with.
type RecordKind int

const (
	KindStruct RecordKind = iota
	KindClass
	KindUnion
)

// DefaultAccess returns the default member access for this record kind:
// public for struct, private for class/union.
func (k RecordKind) DefaultAccess() ir.Access {
	if k == KindStruct {
		return ir.Public
	}
	return ir.Private
}

// FieldDecl is one declared data member of a record. Access is the
// explicit access specifier in effect; it is only meaningful when
// HasAccess is true; otherwise the field relies on the record's default
// access.
type FieldDecl struct {
	Name       string
	Type       Type
	Access     ir.Access
	HasAccess  bool // false means "use the record's default access"
	DocComment *string
	Loc        source.Loc
}

// RecordLayout carries the platform-ABI facts a record-layout service
// would report: overall size/alignment and each field's bit offset,
// indexed in declaration order parallel to RecordDecl.Fields.
type RecordLayout struct {
	SizeBytes    int
	AlignBytes   int
	FieldOffsets []int // bits, one per RecordDecl.Fields entry
}

// RecordDecl is a struct/class/union definition.
type RecordDecl struct {
	id            ir.DeclID
	qualifiedName string
	loc           source.Loc
	extentEnd     source.Loc
	parent        ParentKind
	docComment    *string
	docCommentLoc *source.Loc

	Name                    string
	Kind                    RecordKind
	IsTemplate              bool
	IsTemplateSpecialization bool
	IsComplete              bool
	IsFinal                 bool
	IsTrivialAbi            bool

	Fields []FieldDecl
	Layout RecordLayout

	// CopyCtor/MoveCtor/Dtor point at the record's special members. A
	// real Sema materializes an implicit member (possibly deleted) when
	// none is user-declared; the fixture builder leaves a member nil when
	// the fixture names none, and specialmembers.Classify reports a nil
	// member as deleted.
	CopyCtor *FunctionDecl
	MoveCtor *FunctionDecl
	Dtor     *FunctionDecl
}

// NewRecordDecl constructs a RecordDecl with its identity/location fields.
func NewRecordDecl(id ir.DeclID, qualifiedName string, loc, extentEnd source.Loc, parent ParentKind) *RecordDecl {
	return &RecordDecl{id: id, qualifiedName: qualifiedName, loc: loc, extentEnd: extentEnd, parent: parent}
}

func (r *RecordDecl) CanonicalID() ir.DeclID { return r.id }
func (r *RecordDecl) QualifiedName() string  { return r.qualifiedName }
func (r *RecordDecl) Loc() source.Loc        { return r.loc }
func (r *RecordDecl) ExtentEnd() source.Loc  { return r.extentEnd }
func (r *RecordDecl) Parent() ParentKind     { return r.parent }
func (r *RecordDecl) DocComment() *string    { return r.docComment }

func (r *RecordDecl) DocCommentLoc() (source.Loc, bool) {
	if r.docCommentLoc == nil {
		return source.Loc{}, false
	}
	return *r.docCommentLoc, true
}

// SetDocComment attaches a formatted doc comment and the raw comment's
// begin location it was derived from.
func (r *RecordDecl) SetDocComment(text string, loc source.Loc) {
	r.docComment = &text
	r.docCommentLoc = &loc
}
