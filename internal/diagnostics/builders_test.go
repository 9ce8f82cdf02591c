package diagnostics

import (
	"errors"
	"testing"

	"cclower/internal/ir"
	"cclower/internal/source"
)

func TestFromUnsupportedItem(t *testing.T) {
	item := &ir.UnsupportedItem{
		Name:      "Widget::Resize",
		Message:   "Unsupported type 'std::vector<int>'",
		SourceLoc: source.Loc{Filename: "widget.h", Line: 12, Column: 3},
	}

	diag := FromUnsupportedItem(item)
	if diag.Severity != Warning {
		t.Errorf("Severity = %v, want Warning", diag.Severity)
	}
	if diag.Code != ErrUnsupportedDecl {
		t.Errorf("Code = %q", diag.Code)
	}
	if len(diag.Labels) != 1 || diag.Labels[0].Loc != item.SourceLoc {
		t.Fatalf("Labels = %+v", diag.Labels)
	}
	if diag.Labels[0].Message != item.Message {
		t.Errorf("label message = %q, want %q", diag.Labels[0].Message, item.Message)
	}
}

func TestFromUnsupportedItemUnnamed(t *testing.T) {
	item := &ir.UnsupportedItem{Message: "Items contained in namespaces are not supported yet"}
	diag := FromUnsupportedItem(item)
	if diag.Message != "could not lower <unnamed>" {
		t.Errorf("Message = %q", diag.Message)
	}
}

func TestFromConfigError(t *testing.T) {
	diag := FromConfigError(errors.New("decoding configuration: bare keys cannot contain '/'"))
	if diag.Severity != Error {
		t.Errorf("Severity = %v, want Error", diag.Severity)
	}
	if diag.Code != ErrConfigDecode {
		t.Errorf("Code = %q", diag.Code)
	}
	if diag.Help == "" {
		t.Error("expected a help suggestion")
	}
}

func TestSkippedSummary(t *testing.T) {
	items := []ir.Item{
		&ir.UnsupportedItem{Name: "A"},
		&ir.Comment{Text: "// hi"},
		&ir.UnsupportedItem{Name: "B"},
	}
	if got := SkippedSummary(items); got != 2 {
		t.Errorf("SkippedSummary() = %d, want 2", got)
	}
}
