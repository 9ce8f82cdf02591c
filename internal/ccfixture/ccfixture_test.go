package ccfixture

import (
	"testing"

	"cclower/internal/cc"
)

const widgetFixture = `{
	"system_headers": ["bits/widget_base.h"],
	"include_chains": {
		"widget.h": ["widget.h"]
	},
	"builtin_files": ["<synthesized>"],
	"records": [
		{
			"id": 1,
			"qualified_name": "Widget",
			"loc": {"file": "widget.h", "line": 3, "column": 1},
			"name": "Widget",
			"kind": "struct",
			"is_complete": true,
			"doc_comment": " A resizable widget.",
			"fields": [
				{"name": "width", "type": {"kind": "builtin", "builtin": "int", "spelling": "int", "width": 32, "signed": true}, "loc": {"file": "widget.h", "line": 4, "column": 3}}
			],
			"layout": {"size_bytes": 4, "align_bytes": 4, "field_offsets": [0]},
			"copy_ctor": 2,
			"move_ctor": null,
			"dtor": 3
		}
	],
	"functions": [
		{
			"id": 2,
			"qualified_name": "Widget::Widget",
			"name": "",
			"loc": {"file": "<synthesized>", "line": 1, "column": 1},
			"parent": "record",
			"is_constructor": true,
			"is_copy_constructor": true,
			"is_implicit": true,
			"is_trivial": true,
			"owning_record": 1,
			"return_type": {"kind": "builtin", "builtin": "void", "spelling": "void"},
			"params": [
				{"name": "other", "type": {"kind": "reference", "spelling": "const Widget&", "const": true, "pointee": {"kind": "tag", "spelling": "Widget", "decl": 1, "const": true}}}
			]
		},
		{
			"id": 3,
			"qualified_name": "Widget::~Widget",
			"name": "",
			"loc": {"file": "<synthesized>", "line": 1, "column": 1},
			"parent": "record",
			"is_destructor": true,
			"is_implicit": true,
			"is_trivial": true,
			"owning_record": 1,
			"return_type": {"kind": "builtin", "builtin": "void", "spelling": "void"}
		},
		{
			"id": 4,
			"qualified_name": "Resize",
			"name": "Resize",
			"loc": {"file": "widget.h", "line": 8, "column": 1},
			"parent": "top_level",
			"return_type": {"kind": "builtin", "builtin": "void", "spelling": "void"},
			"params": [
				{"name": "w", "type": {"kind": "pointer", "spelling": "Widget*", "pointee": {"kind": "tag", "spelling": "Widget", "decl": 1}}}
			]
		}
	],
	"typedefs": [
		{
			"id": 5,
			"qualified_name": "WidgetHandle",
			"loc": {"file": "widget.h", "line": 10, "column": 1},
			"parent": "top_level",
			"name": "WidgetHandle",
			"underlying_type": {"kind": "pointer", "spelling": "Widget*", "pointee": {"kind": "tag", "spelling": "Widget", "decl": 1}}
		}
	],
	"comments": [
		{"loc": {"file": "widget.h", "line": 7, "column": 1}, "text": "// Resizes in place."}
	],
	"decls": [
		{"kind": "record", "id": 1},
		{"kind": "function", "id": 4},
		{"kind": "typedef", "id": 5}
	]
}`

func TestLoadBuildsTranslationUnit(t *testing.T) {
	tu, err := Load([]byte(widgetFixture))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tu.Decls) != 3 {
		t.Fatalf("Decls = %d, want 3", len(tu.Decls))
	}

	rec, ok := tu.Decls[0].(*cc.RecordDecl)
	if !ok {
		t.Fatalf("Decls[0] = %T, want *cc.RecordDecl", tu.Decls[0])
	}
	if rec.Name != "Widget" || len(rec.Fields) != 1 {
		t.Errorf("unexpected record shape: %+v", rec)
	}
	if rec.CopyCtor == nil || !rec.CopyCtor.IsCopyConstructor {
		t.Fatalf("CopyCtor not wired: %+v", rec.CopyCtor)
	}
	if rec.MoveCtor != nil {
		t.Errorf("MoveCtor = %+v, want nil", rec.MoveCtor)
	}
	if rec.Dtor == nil || !rec.Dtor.IsDestructor {
		t.Fatalf("Dtor not wired: %+v", rec.Dtor)
	}
	if rec.CopyCtor.OwningRecord != rec {
		t.Errorf("CopyCtor.OwningRecord not wired back to the record")
	}

	fn, ok := tu.Decls[1].(*cc.FunctionDecl)
	if !ok {
		t.Fatalf("Decls[1] = %T, want *cc.FunctionDecl", tu.Decls[1])
	}
	if fn.Name != "Resize" || len(fn.Params) != 1 {
		t.Errorf("unexpected function shape: %+v", fn)
	}
	ptr, ok := fn.Params[0].Type.(cc.Pointer)
	if !ok {
		t.Fatalf("param type = %T, want cc.Pointer", fn.Params[0].Type)
	}
	tag, ok := ptr.Pointee.(cc.Tag)
	if !ok || tag.Decl != 1 {
		t.Errorf("pointee = %+v, want Tag{Decl: 1}", ptr.Pointee)
	}

	td, ok := tu.Decls[2].(*cc.TypedefDecl)
	if !ok {
		t.Fatalf("Decls[2] = %T, want *cc.TypedefDecl", tu.Decls[2])
	}
	if td.Name != "WidgetHandle" {
		t.Errorf("typedef name = %q, want WidgetHandle", td.Name)
	}
}

func TestLoadWiresSourceManagerAndComments(t *testing.T) {
	tu, err := Load([]byte(widgetFixture))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !tu.SourceManager.IsInSystemHeader("bits/widget_base.h") {
		t.Errorf("expected bits/widget_base.h to be a system header")
	}
	if tu.SourceManager.IsInSystemHeader("widget.h") {
		t.Errorf("widget.h should not be a system header")
	}

	if chain := tu.SourceManager.IncludeChain("widget.h"); len(chain) != 1 || chain[0] != "widget.h" {
		t.Errorf("IncludeChain(widget.h) = %v, want [widget.h]", chain)
	}
	if chain := tu.SourceManager.IncludeChain("does/not/exist.h"); chain != nil {
		t.Errorf("IncludeChain(unknown) = %v, want nil", chain)
	}

	if name, ok := tu.SourceManager.NonBuiltinFilename("<synthesized>"); ok {
		t.Errorf("NonBuiltinFilename(<synthesized>) = (%q, %v), want not ok", name, ok)
	}
	if name, ok := tu.SourceManager.NonBuiltinFilename("widget.h"); !ok || name != "widget.h" {
		t.Errorf("NonBuiltinFilename(widget.h) = (%q, %v), want (widget.h, true)", name, ok)
	}

	comments := tu.Comments.RawComments("widget.h")
	if len(comments) != 1 || comments[0].Text != "// Resizes in place." {
		t.Errorf("RawComments(widget.h) = %+v", comments)
	}
	if len(tu.Comments.RawComments("other.h")) != 0 {
		t.Errorf("RawComments(other.h) should be empty")
	}
}

func TestLoadRejectsUnknownBackreference(t *testing.T) {
	_, err := Load([]byte(`{"records": [{"id": 1, "qualified_name": "W", "loc": {"file": "w.h", "line": 1, "column": 1}, "name": "W", "kind": "struct", "dtor": 99}], "decls": [{"kind": "record", "id": 1}]}`))
	if err == nil {
		t.Fatalf("Load() error = nil, want error for unresolved dtor reference")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load([]byte(`{not json`))
	if err == nil {
		t.Fatalf("Load() error = nil, want decode error")
	}
}
