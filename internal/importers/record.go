package importers

import (
	"cclower/internal/cc"
	"cclower/internal/ir"
	"cclower/internal/specialmembers"
)

// ImportRecord implements the record importer (§4.3 Records). A nil
// result means rec produces no item at all (nested in a function/method,
// or an incomplete definition — neither is diagnosed, since both are
// simply not-yet-importable rather than malformed).
func ImportRecord(ctx *Context, rec *cc.RecordDecl) []ir.Item {
	if rec.Parent() == cc.InFunction {
		return nil
	}
	if rec.Parent() == cc.InRecord {
		return []ir.Item{unsupportedWithMessage(rec, "nested records are not supported")}
	}
	if rec.Kind == cc.KindUnion {
		return []ir.Item{unsupportedWithMessage(rec, "unions are not supported")}
	}
	if rec.IsTemplate || rec.IsTemplateSpecialization {
		return []ir.Item{unsupportedWithMessage(rec, "class templates and specializations are not supported")}
	}
	if !rec.IsComplete {
		return nil
	}
	if rec.Name == "" {
		return []ir.Item{unsupportedWithMessage(rec, "unresolvable declaration name")}
	}

	identifier := ir.Identifier(rec.Name)

	ctx.KnownDecls[rec.CanonicalID()] = identifier
	ctx.Records[rec.CanonicalID()] = rec

	defaultAccess := rec.Kind.DefaultAccess()
	fields, failure := importFields(ctx, rec, defaultAccess)
	if failure != nil {
		delete(ctx.KnownDecls, rec.CanonicalID())
		delete(ctx.Records, rec.CanonicalID())
		return []ir.Item{failure}
	}

	isFinal := rec.IsFinal
	if rec.Kind == cc.KindStruct {
		isFinal = false
	}

	return []ir.Item{&ir.Record{
		Identifier:      identifier,
		ID:              rec.CanonicalID(),
		OwningTarget:    ctx.OwningTarget(rec),
		DocComment:      rec.DocComment(),
		Fields:          fields,
		SizeBytes:       rec.Layout.SizeBytes,
		AlignBytes:      rec.Layout.AlignBytes,
		CopyConstructor: specialmembers.Classify(rec.CopyCtor),
		MoveConstructor: specialmembers.Classify(rec.MoveCtor),
		Destructor:      specialmembers.Classify(rec.Dtor),
		IsTrivialAbi:    rec.IsTrivialAbi,
		IsFinal:         isFinal,
		SourceLoc:       rec.Loc(),
	}}
}

// importFields implements the field importer (§4.3 Fields): translates
// each declared field's type and identifier, resolving access against
// defaultAccess when unspecified. A non-nil failure signals the caller to
// retract the whole record (§7(b)); it is reported against the enclosing
// record, at the failing field's own location, per §7(a).
func importFields(ctx *Context, rec *cc.RecordDecl, defaultAccess ir.Access) ([]ir.Field, *ir.UnsupportedItem) {
	fields := make([]ir.Field, 0, len(rec.Fields))
	for i, f := range rec.Fields {
		res, err := ctx.mapper().Map(f.Type, nil, false)
		if err != nil {
			return nil, unsupportedAt(rec, "field type '"+f.Type.Spelling()+"' is not supported", f.Loc)
		}
		if f.Name == "" {
			return nil, unsupportedAt(rec, "cannot translate name for an unnamed field", f.Loc)
		}

		access := defaultAccess
		if f.HasAccess {
			access = f.Access
		}

		offset := 0
		if i < len(rec.Layout.FieldOffsets) {
			offset = rec.Layout.FieldOffsets[i]
		}

		fields = append(fields, ir.Field{
			Identifier: ir.Identifier(f.Name),
			DocComment: f.DocComment,
			Type:       res.Type,
			Access:     access,
			OffsetBits: offset,
		})
	}
	return fields, nil
}
