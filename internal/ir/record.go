package ir

import "cclower/internal/source"

// Field is one declared data member of a Record.
type Field struct {
	Identifier  Identifier
	DocComment  *string
	Type        MappedType
	Access      Access
	OffsetBits  int
}

// Record describes a struct/class definition: its fields, ABI layout, and
// the definition status of its copy constructor, move constructor, and
// destructor.
type Record struct {
	Identifier   Identifier
	ID           DeclID
	OwningTarget Label
	DocComment   *string

	Fields []Field

	// SizeBytes and AlignBytes come directly from the platform record
	// layout; they are never recomputed by this package.
	SizeBytes  int
	AlignBytes int

	CopyConstructor SpecialMemberFunc
	MoveConstructor SpecialMemberFunc
	Destructor      SpecialMemberFunc

	// IsTrivialAbi is true iff the record is passable in registers per the
	// platform ABI. It is independent of CopyConstructor.Definition: a
	// record can have a user-defined (nontrivial) copy constructor and
	// still be trivial-ABI if annotated as such.
	IsTrivialAbi bool

	// IsFinal is true for a class marked `final`; always false for a
	// struct (even one marked `final`) and for a class with no such
	// marker.
	IsFinal bool

	SourceLoc source.Loc
}

func (r *Record) itemNode()      {}
func (r *Record) Loc() source.Loc { return r.SourceLoc }
