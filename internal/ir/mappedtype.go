package ir

// DeclID identifies a canonical C++ declaration within a translation unit.
// Any injective function of the parser's canonical-declaration pointer
// suffices; this package treats it as an opaque integer.
type DeclID uint64

// CcType is the C++-side half of a MappedType.
type CcType struct {
	Name       string
	IsConst    bool
	TypeParams []CcType
	DeclID     *DeclID
}

// IsVoid reports whether this side names void: no parameters, no decl.
func (t CcType) IsVoid() bool {
	return t.Name == "void" && len(t.TypeParams) == 0 && t.DeclID == nil
}

// RsType is the target-language-side half of a MappedType.
type RsType struct {
	Name       string
	TypeParams []RsType
	DeclID     *DeclID
}

// IsVoid reports whether this side names the target language's void/unit
// type.
func (t RsType) IsVoid() bool {
	return t.Name == "" && len(t.TypeParams) == 0 && t.DeclID == nil
}

// MappedType pairs the C++-side and target-side descriptions of a single
// abstract type. The two sides are kept structurally parallel: both are
// non-pointer, or both are single-parameter pointer/reference wrappers
// around parallel pointees; decl_id is set on both sides together or on
// neither.
type MappedType struct {
	Cc CcType
	Rs RsType
}

// IsVoid reports whether this mapped type represents void on both sides.
func (m MappedType) IsVoid() bool {
	return m.Cc.IsVoid() && m.Rs.IsVoid()
}

// Pointer-and-reference wrapper names, used by the type mapper and by
// anything inspecting a MappedType's shape.
const (
	CcPointerName   = "*"
	CcReferenceName = "&"
	RsMutPointer    = "*mut"
	RsConstPointer  = "*const"
	RsReferenceName = "&"
)

// IsPointerOrReference reports whether the cc side is a single-level
// pointer or lvalue-reference wrapper (exactly one type parameter).
func (t CcType) IsPointerOrReference() bool {
	return (t.Name == CcPointerName || t.Name == CcReferenceName) && len(t.TypeParams) == 1
}
