// Package typemap implements the type-mapping algorithm (§4.1): the
// translation from a single C++ Type into a dual-sided MappedType, kept
// structurally parallel on both sides.
package typemap

import (
	"fmt"

	"cclower/internal/cc"
	"cclower/internal/ir"
)

// KnownDeclsLookup resolves a canonical declaration to the identifier it
// was (or will be) imported under. The traversal driver owns the actual
// known_type_decls table (§4.6 step 4); the mapper only ever reads it
// through this indirection so it never depends on import order.
type KnownDeclsLookup func(ir.DeclID) (ir.Identifier, bool)

// MapResult is the outcome of mapping a single Type: the MappedType
// itself plus whatever lifetimes were consumed off the stack while
// mapping it. MappedType carries no lifetime field (§3), so lifetimes
// are threaded back to the caller out-of-band for the importer to
// aggregate and sort (§4.3 step 7).
type MapResult struct {
	Type          ir.MappedType
	UsedLifetimes []ir.Lifetime
}

// Mapper holds the state a single type-mapping call needs beyond the
// Type value itself.
type Mapper struct {
	KnownDecls KnownDeclsLookup
}

// NewMapper constructs a Mapper backed by the given declaration lookup.
func NewMapper(knownDecls KnownDeclsLookup) *Mapper {
	return &Mapper{KnownDecls: knownDecls}
}

// Map translates t into a MappedType. stack supplies the lifetime
// annotations associated with t's pointer/reference layers, consumed
// back-to-front as each layer is peeled; it may be nil for a type with no
// lifetime annotations. nullable is the call site's nullability hint for
// t's outermost pointer; MappedType carries no nullability, so the hint
// is not read and does not change the result.
func (m *Mapper) Map(t cc.Type, stack *LifetimeStack, nullable bool) (MapResult, error) {
	var used []ir.Lifetime
	mt, err := m.mapInner(t, stack, &used)
	if err != nil {
		return MapResult{}, err
	}
	return MapResult{Type: mt, UsedLifetimes: used}, nil
}

func (m *Mapper) mapInner(t cc.Type, stack *LifetimeStack, used *[]ir.Lifetime) (ir.MappedType, error) {
	// Step 1: well-known spelling short-circuit, checked before any
	// structural dispatch on t's Go type.
	if name, ok := wellKnown[t.Spelling()]; ok {
		return ir.MappedType{
			Cc: ir.CcType{Name: t.Spelling(), IsConst: t.IsConst()},
			Rs: ir.RsType{Name: name},
		}, nil
	}

	switch v := t.(type) {
	case cc.Pointer:
		return m.mapPointerLike(v.Pointee, t, stack, used, false)
	case cc.LValueReference:
		return m.mapPointerLike(v.Pointee, t, stack, used, true)
	case cc.Builtin:
		return m.mapBuiltin(v)
	case cc.Tag:
		return m.mapDeclRef(t, v.Decl)
	case cc.Typedef:
		return m.mapDeclRef(t, v.Decl)
	default:
		return ir.MappedType{}, &UnsupportedTypeError{Spelling: t.Spelling()}
	}
}

// mapPointerLike implements the shared logic for pointers and lvalue
// references: pop one lifetime off the stack's tail, recurse on the
// pointee (which is never itself treated as nullable — nullability is a
// property of the outermost call site only), then wrap the pointee's
// mapped type in the appropriate wrapper name on each side.
func (m *Mapper) mapPointerLike(pointee cc.Type, outer cc.Type, stack *LifetimeStack, used *[]ir.Lifetime, isReference bool) (ir.MappedType, error) {
	if lt, ok := stack.PopTail(); ok {
		*used = append(*used, lt)
	}

	inner, err := m.mapInner(pointee, stack, used)
	if err != nil {
		return ir.MappedType{}, err
	}

	var ccName, rsName string
	if isReference {
		ccName = ir.CcReferenceName
		rsName = ir.RsReferenceName
	} else {
		ccName = ir.CcPointerName
		if pointee.IsConst() {
			rsName = ir.RsConstPointer
		} else {
			rsName = ir.RsMutPointer
		}
	}

	mt := ir.MappedType{
		Cc: ir.CcType{Name: ccName, IsConst: outer.IsConst(), TypeParams: []ir.CcType{inner.Cc}},
		Rs: ir.RsType{Name: rsName, TypeParams: []ir.RsType{inner.Rs}},
	}
	return mt, nil
}

func (m *Mapper) mapBuiltin(b cc.Builtin) (ir.MappedType, error) {
	var rsName string
	switch b.Kind {
	case cc.BuiltinBool:
		rsName = "bool"
	case cc.BuiltinFloat:
		rsName = "f32"
	case cc.BuiltinDouble:
		rsName = "f64"
	case cc.BuiltinVoid:
		return ir.MappedType{
			Cc: ir.CcType{Name: "void", IsConst: b.IsConst()},
			Rs: ir.RsType{},
		}, nil
	case cc.BuiltinInt:
		name, ok := integerName(b.Width, b.Signed)
		if !ok {
			return ir.MappedType{}, &UnsupportedTypeError{Spelling: b.Spelling()}
		}
		rsName = name
	default:
		return ir.MappedType{}, &UnsupportedTypeError{Spelling: b.Spelling()}
	}

	return ir.MappedType{
		Cc: ir.CcType{Name: b.Spelling(), IsConst: b.IsConst()},
		Rs: ir.RsType{Name: rsName},
	}, nil
}

func integerName(width int, signed bool) (string, bool) {
	switch width {
	case 8, 16, 32, 64:
	default:
		return "", false
	}
	if signed {
		return fmt.Sprintf("i%d", width), true
	}
	return fmt.Sprintf("u%d", width), true
}

// mapDeclRef resolves a tag or typedef reference against the injected
// known_type_decls lookup, using the resolved identifier on both sides
// (§4.1 step applied to declaration references).
func (m *Mapper) mapDeclRef(t cc.Type, decl ir.DeclID) (ir.MappedType, error) {
	if m.KnownDecls == nil {
		return ir.MappedType{}, &UnsupportedTypeError{Spelling: t.Spelling()}
	}
	name, ok := m.KnownDecls(decl)
	if !ok {
		return ir.MappedType{}, &UnsupportedTypeError{Spelling: t.Spelling()}
	}
	id := decl
	return ir.MappedType{
		Cc: ir.CcType{Name: string(name), IsConst: t.IsConst(), DeclID: &id},
		Rs: ir.RsType{Name: string(name), DeclID: &id},
	}, nil
}
