package cc

import "cclower/internal/ir"

// BuiltinKind discriminates the fixed C++ builtin types. Integer builtins
// additionally carry Width/Signed, since "int"'s width is a platform fact
// the parser has already resolved by the time the core sees it.
type BuiltinKind int

const (
	BuiltinBool BuiltinKind = iota
	BuiltinFloat
	BuiltinDouble
	BuiltinVoid
	BuiltinInt
)

// Type is the common surface of every C++ type variant the type mapper
// inspects. Spelling is the type's exact as-written, unqualified spelling
// (e.g. "size_t", "std::int32_t", "MyStruct", "int") prior to any
// desugaring — the well-known-type short-circuit matches against it
// directly, and no Type variant desugars on the mapper's behalf.
type Type interface {
	ccType()
	Spelling() string
	IsConst() bool
}

type qual struct {
	spelling string
	isConst  bool
}

func (q qual) Spelling() string { return q.spelling }
func (q qual) IsConst() bool    { return q.isConst }

// Builtin is a non-pointer, non-aggregate builtin type: bool, float,
// double, void, or a (width, signedness)-resolved integer.
type Builtin struct {
	qual
	Kind   BuiltinKind
	Width  int  // bits; only meaningful when Kind == BuiltinInt
	Signed bool // only meaningful when Kind == BuiltinInt
}

func (Builtin) ccType() {}

// NewBuiltin constructs a non-integer builtin type.
func NewBuiltin(spelling string, kind BuiltinKind, isConst bool) Builtin {
	return Builtin{qual: qual{spelling: spelling, isConst: isConst}, Kind: kind}
}

// NewBuiltinInt constructs an integer builtin of the given width and
// signedness.
func NewBuiltinInt(spelling string, width int, signed, isConst bool) Builtin {
	return Builtin{qual: qual{spelling: spelling, isConst: isConst}, Kind: BuiltinInt, Width: width, Signed: signed}
}

// Pointer is a C++ pointer type: T*.
type Pointer struct {
	qual
	Pointee Type
}

func (Pointer) ccType() {}

// NewPointer constructs a pointer type over pointee.
func NewPointer(spelling string, pointee Type, isConst bool) Pointer {
	return Pointer{qual: qual{spelling: spelling, isConst: isConst}, Pointee: pointee}
}

// LValueReference is a C++ lvalue reference type: T&.
type LValueReference struct {
	qual
	Pointee Type
}

func (LValueReference) ccType() {}

// NewLValueReference constructs a reference type over pointee.
func NewLValueReference(spelling string, pointee Type, isConst bool) LValueReference {
	return LValueReference{qual: qual{spelling: spelling, isConst: isConst}, Pointee: pointee}
}

// Tag is a reference to a struct/class/union/enum type by its canonical
// declaration.
type Tag struct {
	qual
	Decl ir.DeclID
}

func (Tag) ccType() {}

// NewTag constructs a tag-type reference to decl.
func NewTag(spelling string, decl ir.DeclID, isConst bool) Tag {
	return Tag{qual: qual{spelling: spelling, isConst: isConst}, Decl: decl}
}

// Typedef is a reference to a type alias by its canonical declaration,
// without desugaring to the underlying type.
type Typedef struct {
	qual
	Decl ir.DeclID
}

func (Typedef) ccType() {}

// NewTypedef constructs a typedef-type reference to decl.
func NewTypedef(spelling string, decl ir.DeclID, isConst bool) Typedef {
	return Typedef{qual: qual{spelling: spelling, isConst: isConst}, Decl: decl}
}
