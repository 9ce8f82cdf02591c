package diagnostics

import (
	"cclower/internal/ir"
)

// FromUnsupportedItem turns an emitted UnsupportedItem into a warning
// diagnostic: the importers replace a failing declaration or sub-part
// rather than aborting the run (§7), so the corresponding diagnostic is a
// warning, not an error.
func FromUnsupportedItem(item *ir.UnsupportedItem) *Diagnostic {
	name := item.Name
	if name == "" {
		name = "<unnamed>"
	}
	return NewWarning("could not lower " + name).
		WithCode(ErrUnsupportedDecl).
		WithPrimaryLabel(item.SourceLoc, item.Message)
}

// FromConfigError turns a manifest-loading failure into an error
// diagnostic. Configuration errors have no source location of their own —
// they belong to the manifest file as a whole, not a single declaration —
// so the diagnostic carries no label.
func FromConfigError(err error) *Diagnostic {
	return NewError(err.Error()).
		WithCode(ErrConfigDecode).
		WithHelp("check current_target, public_header_names, and headers_to_targets against the manifest schema")
}

// SkippedSummary reports how many declarations were replaced by an
// UnsupportedItem over the run, for the plain-count summary mode (§4.9).
func SkippedSummary(items []ir.Item) int {
	count := 0
	for _, item := range items {
		if _, ok := item.(*ir.UnsupportedItem); ok {
			count++
		}
	}
	return count
}
