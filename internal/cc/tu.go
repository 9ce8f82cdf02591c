package cc

// TranslationUnit is the root of a parsed C++ translation unit: a flat,
// pre-order sequence of every declaration the traversal driver should
// visit (top-level declarations and, interleaved at the position Clang's
// own RecursiveASTVisitor would reach them, the member functions of each
// record), plus the services the engine needs to order and resolve them.
//
// A nil entry in Decls stands for a declaration the front-end chose not
// to hand the engine at all (distinct from one the engine itself rejects
// and reports as Unsupported); the traversal driver skips it per §4.6
// step 1.
type TranslationUnit struct {
	Decls         []Decl
	SourceManager SourceManager
	Comments      CommentSource
	Mangler       Mangler
}
