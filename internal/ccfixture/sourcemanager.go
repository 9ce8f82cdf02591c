package ccfixture

import (
	"cclower/internal/cc"
	"cclower/internal/ir"
	"cclower/internal/source"
)

// fixtureSourceManager backs cc.SourceManager with the static tables of a
// fixture document. There is no real file system or preprocessor behind
// it, so translation-unit order is derived from the order in which
// filenames first appear in the document (across its functions, then
// records, then typedefs, then comments) rather than from any
// include-graph walk.
type fixtureSourceManager struct {
	order         map[string]int
	systemHeaders map[string]bool
	builtinFiles  map[string]bool
	includeChains map[string][]ir.HeaderName
	known         map[string]bool
}

func newSourceManager(doc document) *fixtureSourceManager {
	sm := &fixtureSourceManager{
		order:         make(map[string]int),
		systemHeaders: make(map[string]bool, len(doc.SystemHeaders)),
		builtinFiles:  make(map[string]bool, len(doc.BuiltinFiles)),
		includeChains: make(map[string][]ir.HeaderName, len(doc.IncludeChains)),
		known:         make(map[string]bool),
	}
	for _, h := range doc.SystemHeaders {
		sm.systemHeaders[h] = true
		sm.known[h] = true
	}
	for _, f := range doc.BuiltinFiles {
		sm.builtinFiles[f] = true
	}
	for filename, chain := range doc.IncludeChains {
		headers := make([]ir.HeaderName, len(chain))
		for i, h := range chain {
			headers[i] = ir.HeaderName(h)
		}
		sm.includeChains[filename] = headers
		sm.known[filename] = true
	}

	pos := 0
	noteFilename := func(filename string) {
		sm.known[filename] = true
		if _, seen := sm.order[filename]; !seen {
			sm.order[filename] = pos
			pos++
		}
	}
	for _, f := range doc.Functions {
		noteFilename(f.Loc.File)
	}
	for _, r := range doc.Records {
		noteFilename(r.Loc.File)
	}
	for _, t := range doc.Typedefs {
		noteFilename(t.Loc.File)
	}
	for _, c := range doc.Comments {
		noteFilename(c.Loc.File)
	}
	return sm
}

// IsBeforeInTranslationUnit orders locations by the file order recorded
// in newSourceManager, falling back to line and column within the same
// file.
func (sm *fixtureSourceManager) IsBeforeInTranslationUnit(a, b source.Loc) bool {
	if a.Filename != b.Filename {
		return sm.order[a.Filename] < sm.order[b.Filename]
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

func (sm *fixtureSourceManager) IsInSystemHeader(filename string) bool {
	return sm.systemHeaders[filename]
}

// IncludeChain returns the declared chain for filename, the filename
// alone when it is known but carries no explicit chain, or nil when the
// filename is not on record at all.
func (sm *fixtureSourceManager) IncludeChain(filename string) []ir.HeaderName {
	if chain, ok := sm.includeChains[filename]; ok {
		return chain
	}
	if sm.known[filename] {
		return []ir.HeaderName{ir.HeaderName(filename)}
	}
	return nil
}

// NonBuiltinFilename reports filename itself unless it was declared
// builtin, in which case there is no user-facing name for it.
func (sm *fixtureSourceManager) NonBuiltinFilename(filename string) (string, bool) {
	if sm.builtinFiles[filename] {
		return "", false
	}
	return filename, true
}

// fixtureCommentSource backs cc.CommentSource with the flat comment list
// of a fixture document, grouped by file when the source is built.
type fixtureCommentSource struct {
	byFile map[string][]cc.RawComment
}

func newCommentSource(comments []comment) *fixtureCommentSource {
	byFile := make(map[string][]cc.RawComment)
	for _, c := range comments {
		byFile[c.Loc.File] = append(byFile[c.Loc.File], cc.RawComment{
			Text: c.Text,
			Loc:  toLoc(c.Loc),
		})
	}
	return &fixtureCommentSource{byFile: byFile}
}

func (s *fixtureCommentSource) RawComments(filename string) []cc.RawComment {
	return s.byFile[filename]
}
