package cc

import (
	"cclower/internal/ir"
	"cclower/internal/source"
)

// MangleVariant selects which Itanium-ABI mangling scheme to request from
// the Mangler. Only the complete-object constructor/destructor variants
// are ever requested by this engine; the base and deleting-destructor
// variants exist in a real ABI but are never emitted (§4.4).
type MangleVariant int

const (
	MangleUnary MangleVariant = iota
	MangleCtorComplete
	MangleDtorComplete
)

// Mangler produces a platform mangled name for a function. The variant
// distinction for constructors/destructors is requested by the caller
// (package mangle), not decided by the Mangler itself.
type Mangler interface {
	Mangle(fn *FunctionDecl, variant MangleVariant) string
}

// RawComment is one comment token as extracted (but not yet formatted or
// attached to a declaration) from a source file.
type RawComment struct {
	Text string
	Loc  source.Loc
}

// CommentSource enumerates a file's raw comments in source order (§4.5).
// It holds no buffering state; the per-file buffer lives in the comment
// manager (package comments).
type CommentSource interface {
	// RawComments returns every raw comment in filename, in source order.
	RawComments(filename string) []RawComment
}

// SourceManager answers the handful of source-position questions the
// engine needs: ordering within the translation unit, system-header
// status, and the #include chain used to resolve owning targets.
type SourceManager interface {
	// IsBeforeInTranslationUnit reports whether a precedes b in the
	// translation unit's overall token stream. Ties (equal positions)
	// report false both ways.
	IsBeforeInTranslationUnit(a, b source.Loc) bool

	// IsInSystemHeader reports whether filename is a system header.
	IsInSystemHeader(filename string) bool

	// IncludeChain returns filename followed by each header that
	// (transitively) #includes it, outermost last. An empty result means
	// filename is not on record (e.g. a synthetic/builtin location).
	IncludeChain(filename string) []ir.HeaderName

	// NonBuiltinFilename reports the user-facing filename for filename,
	// or ok=false if filename has no non-builtin spelling (e.g. a
	// location synthesized by the compiler itself).
	NonBuiltinFilename(filename string) (name string, ok bool)
}
