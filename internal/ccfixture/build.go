package ccfixture

import (
	"encoding/json"
	"fmt"

	"cclower/internal/cc"
	"cclower/internal/ir"
	"cclower/internal/mangle"
)

// Load decodes a fixture document and builds the cc.TranslationUnit it
// describes.
func Load(data []byte) (cc.TranslationUnit, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return cc.TranslationUnit{}, fmt.Errorf("decoding fixture: %w", err)
	}
	return build(doc)
}

func build(doc document) (cc.TranslationUnit, error) {
	funcs := make(map[ir.DeclID]*cc.FunctionDecl, len(doc.Functions))
	records := make(map[ir.DeclID]*cc.RecordDecl, len(doc.Records))
	typedefs := make(map[ir.DeclID]*cc.TypedefDecl, len(doc.Typedefs))

	for _, r := range doc.Records {
		rec, err := buildRecordShell(r)
		if err != nil {
			return cc.TranslationUnit{}, fmt.Errorf("record %d (%s): %w", r.ID, r.Name, err)
		}
		records[r.ID] = rec
	}

	for _, f := range doc.Functions {
		fn, err := buildFunction(f)
		if err != nil {
			return cc.TranslationUnit{}, fmt.Errorf("function %d (%s): %w", f.ID, f.QualifiedName, err)
		}
		funcs[f.ID] = fn
	}

	for _, t := range doc.Typedefs {
		td, err := buildTypedef(t)
		if err != nil {
			return cc.TranslationUnit{}, fmt.Errorf("typedef %d (%s): %w", t.ID, t.QualifiedName, err)
		}
		typedefs[t.ID] = td
	}

	// Second pass: wire cross-references that need the actual object,
	// not just a DeclID (owning record, special members).
	for _, f := range doc.Functions {
		if f.OwningRecord == nil {
			continue
		}
		rec, ok := records[*f.OwningRecord]
		if !ok {
			return cc.TranslationUnit{}, fmt.Errorf("function %d: owning_record %d not found", f.ID, *f.OwningRecord)
		}
		funcs[f.ID].OwningRecord = rec
	}

	for _, r := range doc.Records {
		rec := records[r.ID]
		var err error
		if rec.CopyCtor, err = lookupFunc(funcs, r.CopyCtor); err != nil {
			return cc.TranslationUnit{}, fmt.Errorf("record %d: copy_ctor: %w", r.ID, err)
		}
		if rec.MoveCtor, err = lookupFunc(funcs, r.MoveCtor); err != nil {
			return cc.TranslationUnit{}, fmt.Errorf("record %d: move_ctor: %w", r.ID, err)
		}
		if rec.Dtor, err = lookupFunc(funcs, r.Dtor); err != nil {
			return cc.TranslationUnit{}, fmt.Errorf("record %d: dtor: %w", r.ID, err)
		}
	}

	decls := make([]cc.Decl, len(doc.Decls))
	for i, d := range doc.Decls {
		decl, err := resolveDeclRef(d, funcs, records, typedefs)
		if err != nil {
			return cc.TranslationUnit{}, fmt.Errorf("decls[%d]: %w", i, err)
		}
		decls[i] = decl
	}

	sm := newSourceManager(doc)
	comments := newCommentSource(doc.Comments)

	return cc.TranslationUnit{
		Decls:         decls,
		SourceManager: sm,
		Comments:      comments,
		Mangler:       mangle.Itanium{},
	}, nil
}

func lookupFunc(funcs map[ir.DeclID]*cc.FunctionDecl, id *ir.DeclID) (*cc.FunctionDecl, error) {
	if id == nil {
		return nil, nil
	}
	fn, ok := funcs[*id]
	if !ok {
		return nil, fmt.Errorf("function %d not found", *id)
	}
	return fn, nil
}

func resolveDeclRef(d declRef, funcs map[ir.DeclID]*cc.FunctionDecl, records map[ir.DeclID]*cc.RecordDecl, typedefs map[ir.DeclID]*cc.TypedefDecl) (cc.Decl, error) {
	switch d.Kind {
	case "function":
		fn, ok := funcs[d.ID]
		if !ok {
			return nil, fmt.Errorf("function %d not found", d.ID)
		}
		return fn, nil
	case "record":
		rec, ok := records[d.ID]
		if !ok {
			return nil, fmt.Errorf("record %d not found", d.ID)
		}
		return rec, nil
	case "typedef":
		td, ok := typedefs[d.ID]
		if !ok {
			return nil, fmt.Errorf("typedef %d not found", d.ID)
		}
		return td, nil
	default:
		return nil, fmt.Errorf("unknown decl kind %q", d.Kind)
	}
}

func buildFunction(f function) (*cc.FunctionDecl, error) {
	extentEnd := toOptLoc(f.ExtentEnd, f.Loc)
	parent, err := toParent(f.Parent)
	if err != nil {
		return nil, err
	}
	access, err := toAccess(f.Access)
	if err != nil {
		return nil, err
	}
	returnType, err := toType(f.ReturnType)
	if err != nil {
		return nil, fmt.Errorf("return_type: %w", err)
	}
	params, err := toParams(f.Params)
	if err != nil {
		return nil, err
	}

	fn := cc.NewFunctionDecl(f.ID, f.QualifiedName, toLoc(f.Loc), extentEnd, parent)
	fn.Name = f.Name
	fn.IsConstructor = f.IsConstructor
	fn.IsDestructor = f.IsDestructor
	fn.IsDeleted = f.IsDeleted
	fn.IsDefaultConstructor = f.IsDefaultConstructor
	fn.IsCopyConstructor = f.IsCopyConstructor
	fn.IsMoveConstructor = f.IsMoveConstructor
	fn.IsInline = f.IsInline
	fn.IsStatic = f.IsStatic
	fn.Access = access
	fn.IsConstQualified = f.IsConstQualified
	fn.IsVirtual = f.IsVirtual
	fn.ReturnType = returnType
	fn.Params = params
	fn.Lifetimes = toLifetimes(f.Lifetimes)
	fn.IsUserProvided = f.IsUserProvided
	fn.IsImplicit = f.IsImplicit
	fn.IsTrivial = f.IsTrivial
	if f.DocComment != nil {
		fn.SetDocComment(*f.DocComment, toOptLoc(f.DocCommentLoc, f.Loc))
	}
	return fn, nil
}

func buildRecordShell(r record) (*cc.RecordDecl, error) {
	extentEnd := toOptLoc(r.ExtentEnd, r.Loc)
	parent, err := toParent(r.Parent)
	if err != nil {
		return nil, err
	}
	kind, err := toRecordKind(r.Kind)
	if err != nil {
		return nil, err
	}
	fields, err := toFields(r.Fields)
	if err != nil {
		return nil, err
	}

	rec := cc.NewRecordDecl(r.ID, r.QualifiedName, toLoc(r.Loc), extentEnd, parent)
	rec.Name = r.Name
	rec.Kind = kind
	rec.IsTemplate = r.IsTemplate
	rec.IsTemplateSpecialization = r.IsTemplateSpecialization
	rec.IsComplete = r.IsComplete
	rec.IsFinal = r.IsFinal
	rec.IsTrivialAbi = r.IsTrivialAbi
	rec.Fields = fields
	rec.Layout = cc.RecordLayout{
		SizeBytes:    r.Layout.SizeBytes,
		AlignBytes:   r.Layout.AlignBytes,
		FieldOffsets: r.Layout.FieldOffsets,
	}
	if r.DocComment != nil {
		rec.SetDocComment(*r.DocComment, toOptLoc(r.DocCommentLoc, r.Loc))
	}
	return rec, nil
}

func buildTypedef(t typedef) (*cc.TypedefDecl, error) {
	extentEnd := toOptLoc(t.ExtentEnd, t.Loc)
	parent, err := toParent(t.Parent)
	if err != nil {
		return nil, err
	}
	underlying, err := toType(t.UnderlyingType)
	if err != nil {
		return nil, fmt.Errorf("underlying_type: %w", err)
	}

	td := cc.NewTypedefDecl(t.ID, t.QualifiedName, toLoc(t.Loc), extentEnd, parent)
	td.Name = t.Name
	td.UnderlyingType = underlying
	if t.DocComment != nil {
		td.SetDocComment(*t.DocComment, toOptLoc(t.DocCommentLoc, t.Loc))
	}
	return td, nil
}
