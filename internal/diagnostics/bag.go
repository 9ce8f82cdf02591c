package diagnostics

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"cclower/internal/cc"
)

const (
	runFailedMsg          = "\nlowering failed with %d error(s)"
	andWarningMsg         = " and %d warning(s)"
	runSucceedWithWarning = "\n%d declaration(s) skipped with warnings\n"
)

var (
	boldRed    = color.New(color.FgRed, color.Bold)
	boldYellow = color.New(color.FgYellow, color.Bold)
)

// Bag collects diagnostics produced over a single lowering run.
type Bag struct {
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	warnCount   int
	sm          cc.SourceManager
}

// NewBag creates an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{}
}

// NewBagWithSourceManager creates an empty diagnostic bag whose emitted
// labels resolve filenames through sm (see NewEmitterWithSourceManager).
func NewBagWithSourceManager(sm cc.SourceManager) *Bag {
	return &Bag{sm: sm}
}

// Add adds a diagnostic to the bag.
func (b *Bag) Add(diag *Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.diagnostics = append(b.diagnostics, diag)
	switch diag.Severity {
	case Error:
		b.errorCount++
	case Warning:
		b.warnCount++
	}
}

// HasErrors reports whether any error-severity diagnostic was added.
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount > 0
}

// ErrorCount returns the number of error-severity diagnostics.
func (b *Bag) ErrorCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount
}

// WarningCount returns the number of warning-severity diagnostics.
func (b *Bag) WarningCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.warnCount
}

// Diagnostics returns a copy of the collected diagnostics.
func (b *Bag) Diagnostics() []*Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	result := make([]*Diagnostic, len(b.diagnostics))
	copy(result, b.diagnostics)
	return result
}

// EmitAll writes every diagnostic plus a trailing summary to stderr.
func (b *Bag) EmitAll() {
	b.emitTo(os.Stderr)
}

// EmitAllToString renders every diagnostic plus a trailing summary, with
// ANSI styling, into a string.
func (b *Bag) EmitAllToString() string {
	var buf bytes.Buffer
	b.emitTo(&buf)
	return buf.String()
}

func (b *Bag) emitTo(w io.Writer) {
	var emitter *Emitter
	if b.sm != nil {
		emitter = NewEmitterWithSourceManager(w, b.sm)
	} else {
		emitter = NewEmitter(w)
	}

	b.mu.Lock()
	diagnostics := make([]*Diagnostic, len(b.diagnostics))
	copy(diagnostics, b.diagnostics)
	b.mu.Unlock()

	for _, diag := range diagnostics {
		emitter.Emit(diag)
	}
	b.printSummary(w)
}

func (b *Bag) printSummary(w io.Writer) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.errorCount > 0 {
		boldRed.Fprintf(w, runFailedMsg, b.errorCount)
		if b.warnCount > 0 {
			boldRed.Fprintf(w, andWarningMsg, b.warnCount)
		}
		fmt.Fprintln(w)
	} else if b.warnCount > 0 {
		boldYellow.Fprintf(w, runSucceedWithWarning, b.warnCount)
	}
}

// Clear removes all collected diagnostics.
func (b *Bag) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.diagnostics = nil
	b.errorCount = 0
	b.warnCount = 0
}
