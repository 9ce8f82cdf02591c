// Package diagnostics renders the lowering engine's failure surface —
// UnsupportedItem values the importers produced and configuration errors
// from the manifest loader — as source-framed terminal output (§4.9).
package diagnostics

import (
	"cclower/internal/source"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// LabelStyle distinguishes the primary offending location from secondary
// context locations attached to a single diagnostic.
type LabelStyle int

const (
	Primary   LabelStyle = iota // the main location (marked ^)
	Secondary                   // additional context (marked -)
)

// Label is a single source-anchored annotation. A lowered declaration's
// location is always a single point (source.Loc), not a {start,end} span —
// the engine never holds the underlying header text to measure a span
// against, so unlike the teacher's Ferret-source diagnostics there is no
// Location.End here.
type Label struct {
	Loc     source.Loc
	Message string
	Style   LabelStyle
}

// Note is additional information attached to a diagnostic.
type Note struct {
	Message string
}

// Diagnostic is one reportable event: an unsupported declaration, a
// retracted record, or a configuration-loading failure.
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string
	Labels   []Label
	Notes    []Note
	Help     string
}

// NewError creates a new error diagnostic.
func NewError(message string) *Diagnostic {
	return &Diagnostic{Severity: Error, Message: message}
}

// NewWarning creates a new warning diagnostic.
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{Severity: Warning, Message: message}
}

// NewInfo creates a new info diagnostic.
func NewInfo(message string) *Diagnostic {
	return &Diagnostic{Severity: Info, Message: message}
}

// WithCode sets the diagnostic code.
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithPrimaryLabel sets the diagnostic's primary location. A second call
// replaces the first rather than stacking a second primary.
func (d *Diagnostic) WithPrimaryLabel(loc source.Loc, message string) *Diagnostic {
	for i, l := range d.Labels {
		if l.Style == Primary {
			d.Labels[i] = Label{Loc: loc, Message: message, Style: Primary}
			return d
		}
	}
	d.Labels = append([]Label{{Loc: loc, Message: message, Style: Primary}}, d.Labels...)
	return d
}

// WithSecondaryLabel adds a secondary context location. A primary label
// must already exist.
func (d *Diagnostic) WithSecondaryLabel(loc source.Loc, message string) *Diagnostic {
	hasPrimary := false
	for _, l := range d.Labels {
		if l.Style == Primary {
			hasPrimary = true
			break
		}
	}
	if !hasPrimary {
		panic("diagnostics: WithSecondaryLabel called before WithPrimaryLabel")
	}
	d.Labels = append(d.Labels, Label{Loc: loc, Message: message, Style: Secondary})
	return d
}

// WithNote adds a note to the diagnostic.
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets a suggestion for resolving the diagnostic.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
