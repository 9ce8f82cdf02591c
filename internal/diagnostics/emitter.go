package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"cclower/internal/cc"
	"cclower/internal/source"
)

const locFormat = "  --> %s\n"

var (
	boldRedHeader    = color.New(color.FgRed, color.Bold)
	boldYellowHeader = color.New(color.FgYellow, color.Bold)
	boldCyanHeader   = color.New(color.FgCyan, color.Bold)
	boldPurpleHeader = color.New(color.FgMagenta, color.Bold)
	blueLoc          = color.New(color.FgBlue)
	dashSecondary    = color.New(color.FgBlue)
	noteColor        = color.New(color.FgCyan)
	helpColor        = color.New(color.FgGreen)
)

// Emitter renders diagnostics to a writer. There is no source-line
// snippet, unlike the teacher's Rust-style renderer: the engine never
// holds the header text it lowered, only the structured fixture/config
// data, so a diagnostic's location is reported as a bare file:line:col,
// not framed against a quoted source line.
type Emitter struct {
	writer io.Writer
	sm     cc.SourceManager
}

// NewEmitter creates an Emitter writing to w, with no filename resolution:
// labels print their Loc's filename verbatim.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{writer: w}
}

// NewEmitterWithSourceManager creates an Emitter that resolves a label's
// filename through sm.NonBuiltinFilename before printing it, so a location
// synthesized by the front end (no user-facing filename) renders as
// "<builtin location>" rather than an empty or meaningless path.
func NewEmitterWithSourceManager(w io.Writer, sm cc.SourceManager) *Emitter {
	return &Emitter{writer: w, sm: sm}
}

// Emit writes one diagnostic: header, labels, notes, help.
func (e *Emitter) Emit(diag *Diagnostic) {
	e.printHeader(diag)
	for _, label := range diag.Labels {
		e.printLabel(label, diag.Severity)
	}
	for _, note := range diag.Notes {
		noteColor.Fprint(e.writer, "  = note: ")
		fmt.Fprintln(e.writer, note.Message)
	}
	if diag.Help != "" {
		helpColor.Fprint(e.writer, "  = help: ")
		fmt.Fprintln(e.writer, diag.Help)
	}
	fmt.Fprintln(e.writer)
}

// displayLoc renders loc's filename the way a user would expect to see it,
// substituting a fixed placeholder for a location with no non-builtin
// filename (e.g. one synthesized by the front end for an implicit member).
func (e *Emitter) displayLoc(loc source.Loc) string {
	if e.sm == nil {
		return loc.String()
	}
	if _, ok := e.sm.NonBuiltinFilename(loc.Filename); !ok {
		return fmt.Sprintf("<builtin location>:%d:%d", loc.Line, loc.Column)
	}
	return loc.String()
}

func (e *Emitter) severityHeaderColor(s Severity) *color.Color {
	switch s {
	case Error:
		return boldRedHeader
	case Warning:
		return boldYellowHeader
	case Info:
		return boldCyanHeader
	case Hint:
		return boldPurpleHeader
	default:
		return boldRedHeader
	}
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	header := e.severityHeaderColor(diag.Severity)
	header.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	header.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printLabel(label Label, severity Severity) {
	if label.Loc.Invalid() {
		return
	}
	blueLoc.Fprintf(e.writer, locFormat, e.displayLoc(label.Loc))

	marker := "- "
	markerColor := dashSecondary
	if label.Style == Primary {
		marker = "^ "
		markerColor = e.severityHeaderColor(severity)
	}

	fmt.Fprint(e.writer, strings.Repeat(" ", 6))
	markerColor.Fprint(e.writer, marker)
	if label.Message != "" {
		fmt.Fprintln(e.writer, label.Message)
	} else {
		fmt.Fprintln(e.writer)
	}
}
