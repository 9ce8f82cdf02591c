// Package comments implements the Comment Manager (§4.5): producing the
// set of raw comments that are not attached to any imported declaration,
// in source order, so the traversal driver can interleave them with
// successfully imported items.
package comments

import (
	"sort"

	"cclower/internal/cc"
	"cclower/internal/ir"
	"cclower/internal/source"
)

// Manager holds the per-file buffered-comment state described in §4.5.
// A Manager is owned exclusively by one traversal run; it is never
// shared across runs (§5).
type Manager struct {
	src cc.CommentSource

	currentFile string
	buffer      []cc.RawComment
	pos         int
}

// NewManager constructs a Manager backed by src.
func NewManager(src cc.CommentSource) *Manager {
	return &Manager{src: src}
}

// BeforeDecl advances the buffer past every comment preceding decl's
// begin location, skipping decl's own doc comment if it has one, and
// returns the floating comments that were advanced past as Comment
// items ready to interleave with decl (§4.5 steps 1-2).
func (m *Manager) BeforeDecl(decl cc.Decl) []ir.Comment {
	out := m.ensureFile(decl.Loc().Filename)

	ownDocLoc, hasOwnDoc := decl.DocCommentLoc()

	for m.pos < len(m.buffer) {
		rc := m.buffer[m.pos]
		if !isBefore(rc.Loc, decl.Loc()) {
			break
		}
		m.pos++
		if hasOwnDoc && rc.Loc == ownDocLoc {
			continue
		}
		out = append(out, ir.Comment{Text: rc.Text, SourceLoc: rc.Loc})
	}
	return out
}

// AfterDecl skips any remaining buffered comments whose begin location
// falls within decl's extent, except when decl is a namespace, whose
// extent is not a scope for this purpose (§4.5 step 3) since a namespace
// can be reopened and its "extent" does not meaningfully bound anything.
func (m *Manager) AfterDecl(decl cc.Decl, isNamespace bool) {
	if isNamespace {
		return
	}
	for m.pos < len(m.buffer) {
		rc := m.buffer[m.pos]
		if isBefore(decl.ExtentEnd(), rc.Loc) || rc.Loc == decl.ExtentEnd() {
			break
		}
		m.pos++
	}
}

// Flush returns every comment remaining in the current file's buffer
// (translation-unit end, §4.5 step 4, or a file switch) as Comment
// items and resets the buffer.
func (m *Manager) Flush() []ir.Comment {
	var out []ir.Comment
	for _, rc := range m.buffer[m.pos:] {
		out = append(out, ir.Comment{Text: rc.Text, SourceLoc: rc.Loc})
	}
	m.buffer = nil
	m.pos = 0
	m.currentFile = ""
	return out
}

// ensureFile loads filename's raw comments and resets the iterator when
// the traversal has moved into a new file (§4.5 step 1). It returns any
// leftover comments from the file being left behind (flushed via Flush),
// so BeforeDecl emits them instead of dropping them.
func (m *Manager) ensureFile(filename string) []ir.Comment {
	filename = source.NormalizeFilename(filename)
	if filename == m.currentFile {
		return nil
	}
	leftover := m.Flush()
	m.currentFile = filename
	m.buffer = append([]cc.RawComment(nil), m.src.RawComments(filename)...)
	sort.SliceStable(m.buffer, func(i, j int) bool {
		return isBefore(m.buffer[i].Loc, m.buffer[j].Loc)
	})
	return leftover
}

func isBefore(a, b source.Loc) bool {
	if a.Filename != b.Filename {
		return a.Filename < b.Filename
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}
