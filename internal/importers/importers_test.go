package importers

import (
	"testing"

	"cclower/internal/cc"
	"cclower/internal/ir"
	"cclower/internal/mangle"
	"cclower/internal/source"
)

const currentTarget ir.Label = "//foo:bar"

func sameTargetCtx() *Context {
	return NewContext(mangle.Itanium{}, func(cc.Decl) ir.Label { return currentTarget }, currentTarget)
}

func TestImportFunctionVoidNoParams(t *testing.T) {
	ctx := sameTargetCtx()
	fn := cc.NewFunctionDecl(1, "Foo", source.Loc{Filename: "a.h", Line: 1}, source.Loc{Filename: "a.h", Line: 1}, cc.TopLevel)
	fn.Name = "Foo"
	fn.ReturnType = cc.NewBuiltin("void", cc.BuiltinVoid, false)

	items := ImportFunction(ctx, fn)
	if len(items) != 1 {
		t.Fatalf("items = %+v, want exactly one", items)
	}
	f, isFunc := items[0].(*ir.Func)
	if !isFunc {
		t.Fatalf("item = %T, want *ir.Func", items[0])
	}
	if f.Name != ir.Identifier("Foo") {
		t.Errorf("Name = %v, want Foo", f.Name)
	}
	if f.MangledName != "_Z3Foov" {
		t.Errorf("MangledName = %q, want _Z3Foov", f.MangledName)
	}
	if !f.ReturnType.IsVoid() {
		t.Errorf("ReturnType = %+v, want void", f.ReturnType)
	}
	if len(f.Params) != 0 {
		t.Errorf("Params = %+v, want empty", f.Params)
	}
}

func TestImportFunctionPointerParamAndReturn(t *testing.T) {
	ctx := sameTargetCtx()
	intType := cc.NewBuiltinInt("int", 32, true, false)
	ptrType := cc.NewPointer("int*", intType, false)

	fn := cc.NewFunctionDecl(1, "Foo", source.Loc{}, source.Loc{}, cc.TopLevel)
	fn.ReturnType = ptrType
	fn.Params = []cc.ParmVarDecl{{Name: "a", Type: ptrType}}

	items := ImportFunction(ctx, fn)
	if len(items) != 1 {
		t.Fatalf("items = %+v, want exactly one", items)
	}
	f := items[0].(*ir.Func)
	if f.ReturnType.Cc.Name != ir.CcPointerName || f.ReturnType.Rs.Name != ir.RsMutPointer {
		t.Fatalf("ReturnType = %+v", f.ReturnType)
	}
	if len(f.Params) != 1 || f.Params[0].Identifier != ir.Identifier("a") {
		t.Fatalf("Params = %+v", f.Params)
	}
}

func TestImportFunctionSkipsWrongTarget(t *testing.T) {
	ctx := NewContext(mangle.Itanium{}, func(cc.Decl) ir.Label { return "//other:target" }, currentTarget)
	fn := cc.NewFunctionDecl(1, "Foo", source.Loc{}, source.Loc{}, cc.TopLevel)
	fn.ReturnType = cc.NewBuiltin("void", cc.BuiltinVoid, false)

	items := ImportFunction(ctx, fn)
	if items != nil {
		t.Fatalf("expected function from a different target to be skipped, got %+v", items)
	}
}

func TestImportFunctionSkipsDeleted(t *testing.T) {
	ctx := sameTargetCtx()
	fn := cc.NewFunctionDecl(1, "Foo", source.Loc{}, source.Loc{}, cc.TopLevel)
	fn.ReturnType = cc.NewBuiltin("void", cc.BuiltinVoid, false)
	fn.IsDeleted = true

	items := ImportFunction(ctx, fn)
	if items != nil {
		t.Fatalf("expected deleted function to be skipped, got %+v", items)
	}
}

func TestImportFunctionSkipsNonPublicMember(t *testing.T) {
	ctx := sameTargetCtx()
	rec := cc.NewRecordDecl(1, "Widget", source.Loc{}, source.Loc{}, cc.TopLevel)
	fn := cc.NewFunctionDecl(2, "Widget::Hidden", source.Loc{}, source.Loc{}, cc.InRecord)
	fn.ReturnType = cc.NewBuiltin("void", cc.BuiltinVoid, false)
	fn.OwningRecord = rec
	fn.Access = ir.Private

	items := ImportFunction(ctx, fn)
	if items != nil {
		t.Fatalf("expected non-public member function to be skipped, got %+v", items)
	}
}

func TestImportFunctionSynthesizesThisForInstanceMethod(t *testing.T) {
	ctx := sameTargetCtx()
	rec := cc.NewRecordDecl(1, "Widget", source.Loc{}, source.Loc{}, cc.TopLevel)
	ctx.KnownDecls[rec.CanonicalID()] = ir.Identifier("Widget")
	ctx.Records[rec.CanonicalID()] = rec

	fn := cc.NewFunctionDecl(2, "Widget::Touch", source.Loc{}, source.Loc{}, cc.InRecord)
	fn.ReturnType = cc.NewBuiltin("void", cc.BuiltinVoid, false)
	fn.OwningRecord = rec
	fn.Access = ir.Public

	items := ImportFunction(ctx, fn)
	if len(items) != 1 {
		t.Fatalf("items = %+v, want exactly one", items)
	}
	f := items[0].(*ir.Func)
	if len(f.Params) != 1 || f.Params[0].Identifier != ir.ThisIdentifier {
		t.Fatalf("Params = %+v, want synthesized __this first", f.Params)
	}
	if !f.IsInstanceMethod() {
		t.Error("expected IsInstanceMethod() to be true")
	}
}

func TestImportFunctionConstructorMangling(t *testing.T) {
	ctx := sameTargetCtx()
	rec := cc.NewRecordDecl(1, "Widget", source.Loc{}, source.Loc{}, cc.TopLevel)
	ctx.KnownDecls[rec.CanonicalID()] = ir.Identifier("Widget")
	ctx.Records[rec.CanonicalID()] = rec

	fn := cc.NewFunctionDecl(2, "Widget::Widget", source.Loc{}, source.Loc{}, cc.InRecord)
	fn.ReturnType = cc.NewBuiltin("void", cc.BuiltinVoid, false)
	fn.OwningRecord = rec
	fn.Access = ir.Public
	fn.IsConstructor = true

	items := ImportFunction(ctx, fn)
	if len(items) != 1 {
		t.Fatalf("items = %+v, want exactly one", items)
	}
	f := items[0].(*ir.Func)
	if !ir.IsConstructor(f.Name) {
		t.Errorf("Name = %v, want ConstructorSentinel", f.Name)
	}
	if f.MangledName != "_ZN6WidgetC1Ev" {
		t.Errorf("MangledName = %q, want _ZN6WidgetC1Ev", f.MangledName)
	}
}

func TestImportFunctionAccumulatesFailuresAcrossAllParams(t *testing.T) {
	ctx := sameTargetCtx()
	badParam := cc.NewTag("Unknown", 999, false)

	fn := cc.NewFunctionDecl(1, "Foo", source.Loc{}, source.Loc{}, cc.TopLevel)
	fn.ReturnType = badParam
	fn.Params = []cc.ParmVarDecl{
		{Name: "a", Type: badParam, Loc: source.Loc{Filename: "a.h", Line: 1}},
		{Name: "b", Type: badParam, Loc: source.Loc{Filename: "a.h", Line: 2}},
	}

	items := ImportFunction(ctx, fn)
	if len(items) != 3 {
		t.Fatalf("items = %+v, want one UnsupportedItem per failing parameter plus the return type", items)
	}
	for i, item := range items {
		if _, isUnsupported := item.(*ir.UnsupportedItem); !isUnsupported {
			t.Fatalf("items[%d] = %T, want *ir.UnsupportedItem", i, item)
		}
	}
	if items[0].(*ir.UnsupportedItem).SourceLoc != fn.Params[0].Loc {
		t.Errorf("first failure located at %+v, want the first parameter's own location %+v", items[0].(*ir.UnsupportedItem).SourceLoc, fn.Params[0].Loc)
	}
	if items[1].(*ir.UnsupportedItem).SourceLoc != fn.Params[1].Loc {
		t.Errorf("second failure located at %+v, want the second parameter's own location %+v", items[1].(*ir.UnsupportedItem).SourceLoc, fn.Params[1].Loc)
	}
}

func TestImportRecordWithFieldsAndLayout(t *testing.T) {
	ctx := sameTargetCtx()
	rec := cc.NewRecordDecl(1, "S", source.Loc{}, source.Loc{}, cc.TopLevel)
	rec.Name = "S"
	rec.Kind = cc.KindStruct
	rec.IsComplete = true
	rec.Fields = []cc.FieldDecl{
		{Name: "first_field", Type: cc.NewBuiltinInt("int", 32, true, false)},
		{Name: "second_field", Type: cc.NewBuiltinInt("int", 32, true, false)},
	}
	rec.Layout = cc.RecordLayout{SizeBytes: 8, AlignBytes: 4, FieldOffsets: []int{0, 32}}
	rec.CopyCtor = cc.NewFunctionDecl(2, "S::S", source.Loc{}, source.Loc{}, cc.InRecord)
	rec.CopyCtor.IsTrivial = true
	rec.MoveCtor = rec.CopyCtor
	rec.Dtor = rec.CopyCtor

	items := ImportRecord(ctx, rec)
	if len(items) != 1 {
		t.Fatalf("items = %+v, want exactly one", items)
	}
	r := items[0].(*ir.Record)
	if r.SizeBytes != 8 || r.AlignBytes != 4 {
		t.Fatalf("layout = %+v", r)
	}
	if len(r.Fields) != 2 || r.Fields[0].OffsetBits != 0 || r.Fields[1].OffsetBits != 32 {
		t.Fatalf("fields = %+v", r.Fields)
	}
	if ctx.KnownDecls[rec.CanonicalID()] != ir.Identifier("S") {
		t.Error("expected record to remain registered in KnownDecls after success")
	}
}

func TestImportRecordRetractsOnFieldFailure(t *testing.T) {
	ctx := sameTargetCtx()
	rec := cc.NewRecordDecl(1, "Bad", source.Loc{}, source.Loc{}, cc.TopLevel)
	rec.Name = "Bad"
	rec.Kind = cc.KindStruct
	rec.IsComplete = true
	rec.Fields = []cc.FieldDecl{{Name: "f", Type: cc.NewTag("Unknown", 999, false), Loc: source.Loc{Filename: "bad.h", Line: 3}}}

	items := ImportRecord(ctx, rec)
	if len(items) != 1 {
		t.Fatalf("items = %+v, want exactly one UnsupportedItem against the record", items)
	}
	u, isUnsupported := items[0].(*ir.UnsupportedItem)
	if !isUnsupported {
		t.Fatalf("item = %T, want *ir.UnsupportedItem", items[0])
	}
	if u.Name != rec.QualifiedName() {
		t.Errorf("Name = %q, want the enclosing record's name %q", u.Name, rec.QualifiedName())
	}
	if u.SourceLoc != rec.Fields[0].Loc {
		t.Errorf("SourceLoc = %+v, want the failing field's own location %+v", u.SourceLoc, rec.Fields[0].Loc)
	}
	if _, present := ctx.KnownDecls[rec.CanonicalID()]; present {
		t.Error("expected provisional KnownDecls entry to be retracted")
	}
	if _, present := ctx.Records[rec.CanonicalID()]; present {
		t.Error("expected provisional Records entry to be retracted")
	}
}

func TestImportRecordUnionIsUnsupported(t *testing.T) {
	ctx := sameTargetCtx()
	rec := cc.NewRecordDecl(1, "U", source.Loc{}, source.Loc{}, cc.TopLevel)
	rec.Name = "U"
	rec.Kind = cc.KindUnion
	rec.IsComplete = true

	items := ImportRecord(ctx, rec)
	if len(items) != 1 {
		t.Fatalf("items = %+v, want exactly one Unsupported item", items)
	}
	if _, isUnsupported := items[0].(*ir.UnsupportedItem); !isUnsupported {
		t.Fatalf("item = %T, want *ir.UnsupportedItem", items[0])
	}
}

func TestImportTypeAliasSkipsWellKnownSpelling(t *testing.T) {
	ctx := sameTargetCtx()
	alias := cc.NewTypedefDecl(1, "size_t", source.Loc{}, source.Loc{}, cc.TopLevel)
	alias.Name = "size_t"
	alias.UnderlyingType = cc.NewBuiltinInt("unsigned long", 64, false, false)

	items := ImportTypeAlias(ctx, alias)
	if items != nil {
		t.Fatalf("expected well-known alias spelling to be skipped, got %+v", items)
	}
}

func TestImportTypeAliasTranslatesUnderlying(t *testing.T) {
	ctx := sameTargetCtx()
	alias := cc.NewTypedefDecl(1, "MyInt", source.Loc{}, source.Loc{}, cc.TopLevel)
	alias.Name = "MyInt"
	alias.UnderlyingType = cc.NewBuiltinInt("int", 32, true, false)

	items := ImportTypeAlias(ctx, alias)
	if len(items) != 1 {
		t.Fatalf("items = %+v, want exactly one", items)
	}
	ta := items[0].(*ir.TypeAlias)
	if ta.Identifier != ir.Identifier("MyInt") || ta.UnderlyingType.Rs.Name != "i32" {
		t.Fatalf("TypeAlias = %+v", ta)
	}
}
