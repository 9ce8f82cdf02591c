package ir

import "cclower/internal/source"

// FuncParam is one parameter of a lowered function, after the synthetic
// __this parameter (if any) and any __param_i synthesis has been applied.
type FuncParam struct {
	Type       MappedType
	Identifier Identifier
}

// InstanceMethodMetadata describes the receiver of a non-static member
// function.
type InstanceMethodMetadata struct {
	IsConstQualified bool
	IsVirtual        bool
}

// MemberFuncMetadata is present on Func values lowered from a member
// function (constructor, destructor, or ordinary method). InstanceMethod is
// nil for static member functions.
type MemberFuncMetadata struct {
	RecordID       DeclID
	InstanceMethod *InstanceMethodMetadata
}

// CtorKind distinguishes the four constructor shapes the emitter's
// local_order tiebreak needs to rank relative to each other when several
// share a source position (§4.7). Meaningless on anything that is not a
// constructor.
type CtorKind int

const (
	CtorDefault CtorKind = iota
	CtorCopy
	CtorMove
	CtorOther
)

// Func is a lowered free function or (non-deleted, public) member
// function.
type Func struct {
	Name               UnqualifiedIdentifier
	OwningTarget       Label
	DocComment         *string
	MangledName        string
	ReturnType         MappedType
	Params             []FuncParam
	LifetimeParams     []Lifetime // sorted by name
	IsInline           bool
	MemberFuncMetadata *MemberFuncMetadata
	CtorKind           CtorKind
	SourceLoc          source.Loc
}

func (f *Func) itemNode()        {}
func (f *Func) Loc() source.Loc { return f.SourceLoc }

// IsMemberFunction reports whether this Func was lowered from a member
// function (static or instance).
func (f *Func) IsMemberFunction() bool {
	return f.MemberFuncMetadata != nil
}

// IsInstanceMethod reports whether this Func has a synthesized __this
// receiver parameter.
func (f *Func) IsInstanceMethod() bool {
	return f.MemberFuncMetadata != nil && f.MemberFuncMetadata.InstanceMethod != nil
}
