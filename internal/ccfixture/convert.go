package ccfixture

import (
	"fmt"

	"cclower/internal/cc"
	"cclower/internal/ir"
	"cclower/internal/source"
)

func toLoc(l loc) source.Loc {
	return source.NewLoc(l.File, l.Line, l.Column)
}

func toOptLoc(l *loc, fallback loc) source.Loc {
	if l == nil {
		return toLoc(fallback)
	}
	return toLoc(*l)
}

func toParent(s string) (cc.ParentKind, error) {
	switch s {
	case "", "top_level":
		return cc.TopLevel, nil
	case "namespace":
		return cc.InNamespace, nil
	case "record":
		return cc.InRecord, nil
	case "function":
		return cc.InFunction, nil
	default:
		return cc.TopLevel, fmt.Errorf("unknown parent kind %q", s)
	}
}

func toAccess(s string) (ir.Access, error) {
	switch s {
	case "", "public":
		return ir.Public, nil
	case "protected":
		return ir.Protected, nil
	case "private":
		return ir.Private, nil
	default:
		return ir.Public, fmt.Errorf("unknown access %q", s)
	}
}

func toRecordKind(s string) (cc.RecordKind, error) {
	switch s {
	case "", "struct":
		return cc.KindStruct, nil
	case "class":
		return cc.KindClass, nil
	case "union":
		return cc.KindUnion, nil
	default:
		return cc.KindStruct, fmt.Errorf("unknown record kind %q", s)
	}
}

func toBuiltinKind(s string) (cc.BuiltinKind, error) {
	switch s {
	case "bool":
		return cc.BuiltinBool, nil
	case "float":
		return cc.BuiltinFloat, nil
	case "double":
		return cc.BuiltinDouble, nil
	case "void":
		return cc.BuiltinVoid, nil
	case "int":
		return cc.BuiltinInt, nil
	default:
		return cc.BuiltinVoid, fmt.Errorf("unknown builtin kind %q", s)
	}
}

func toType(t typ) (cc.Type, error) {
	switch t.Kind {
	case "builtin":
		kind, err := toBuiltinKind(t.Builtin)
		if err != nil {
			return nil, err
		}
		if kind == cc.BuiltinInt {
			return cc.NewBuiltinInt(t.Spelling, t.Width, t.Signed, t.Const), nil
		}
		return cc.NewBuiltin(t.Spelling, kind, t.Const), nil

	case "pointer":
		if t.Pointee == nil {
			return nil, fmt.Errorf("pointer type %q missing pointee", t.Spelling)
		}
		pointee, err := toType(*t.Pointee)
		if err != nil {
			return nil, err
		}
		return cc.NewPointer(t.Spelling, pointee, t.Const), nil

	case "reference":
		if t.Pointee == nil {
			return nil, fmt.Errorf("reference type %q missing pointee", t.Spelling)
		}
		pointee, err := toType(*t.Pointee)
		if err != nil {
			return nil, err
		}
		return cc.NewLValueReference(t.Spelling, pointee, t.Const), nil

	case "tag":
		return cc.NewTag(t.Spelling, t.Decl, t.Const), nil

	case "typedef":
		return cc.NewTypedef(t.Spelling, t.Decl, t.Const), nil

	default:
		return nil, fmt.Errorf("unknown type kind %q", t.Kind)
	}
}

func toParams(params []param) ([]cc.ParmVarDecl, error) {
	out := make([]cc.ParmVarDecl, len(params))
	for i, p := range params {
		t, err := toType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("param %d (%s): %w", i, p.Name, err)
		}
		out[i] = cc.ParmVarDecl{Name: p.Name, Type: t}
	}
	return out, nil
}

func toLifetimes(l *lifetimes) *cc.Lifetimes {
	if l == nil {
		return nil
	}
	return &cc.Lifetimes{
		ThisLifetimes:   l.This,
		ReturnLifetimes: l.Return,
		ParamLifetimes:  l.Params,
	}
}

func toFields(fields []field) ([]cc.FieldDecl, error) {
	out := make([]cc.FieldDecl, len(fields))
	for i, f := range fields {
		t, err := toType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		access, err := toAccess(f.Access)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		out[i] = cc.FieldDecl{
			Name:       f.Name,
			Type:       t,
			Access:     access,
			HasAccess:  f.HasAccess,
			DocComment: f.DocComment,
			Loc:        toLoc(f.Loc),
		}
	}
	return out, nil
}
