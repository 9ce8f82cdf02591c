// Package cc is the narrow interface the lowering engine uses to read a
// parsed C++ translation unit. It stands in for a real Clang-like AST: a
// concrete implementation (package ccfixture) builds one from a small
// declarative fixture instead of parsing C++ source text, since building
// and vendoring a real parser front-end is explicitly out of scope (see
// the Non-goals in SPEC_FULL.md).
//
// Everything in this package is read-only from the lowering engine's point
// of view: no method here mutates parser state, and nothing the engine
// holds outlives the TranslationUnit it was built from (the engine copies
// what it needs into the ir package's owned value types).
package cc

import (
	"cclower/internal/ir"
	"cclower/internal/source"
)

// ParentKind classifies the lexical context a declaration was found in,
// which is all the traversal driver and the declaration importers need to
// decide whether a declaration is nested where the spec forbids it.
type ParentKind int

const (
	TopLevel ParentKind = iota
	InNamespace
	InRecord
	InFunction
)

// Decl is the common surface of every declaration kind the core visits.
type Decl interface {
	// CanonicalID is a stable identity for this declaration, shared by all
	// of its (re)declarations. The traversal driver uses it to dedup.
	CanonicalID() ir.DeclID

	// QualifiedName is used only for diagnostics (UnsupportedItem.Name).
	QualifiedName() string

	// Loc is the declaration's begin location.
	Loc() source.Loc

	// ExtentEnd is the last location lexically covered by the declaration;
	// the Comment Manager uses it to skip comments nested inside the
	// declaration's body.
	ExtentEnd() source.Loc

	// Parent reports the lexical context this declaration appears in.
	Parent() ParentKind

	// DocComment is the declaration's own doc comment, already formatted
	// by the parser's canonical comment formatter (nil if none).
	DocComment() *string

	// DocCommentLoc is the begin location of the raw comment that became
	// DocComment, if any. The Comment Manager uses this to recognize (and
	// skip) that one raw comment while otherwise walking the file's
	// comment stream.
	DocCommentLoc() (source.Loc, bool)
}
