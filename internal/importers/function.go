package importers

import (
	"cclower/internal/cc"
	"cclower/internal/ir"
	"cclower/internal/typemap"
)

// ImportFunction implements the function importer (§4.3 Functions). A
// nil result means the declaration produces no item at all: wrong
// owning target, a deleted function, or a non-public member function
// (§4.3 step 5, §7 "non-public member functions are silently dropped").
// Any sub-part that fails (the receiver, a parameter, the return type)
// is reported as its own UnsupportedItem and processing continues
// through the remaining sub-parts; the Func itself is only emitted if
// every sub-part succeeded.
func ImportFunction(ctx *Context, fn *cc.FunctionDecl) []ir.Item {
	if ctx.OwningTarget(fn) != ctx.CurrentTarget {
		return nil
	}
	if fn.IsDeleted {
		return nil
	}
	if fn.IsMemberFunction() && fn.Access != ir.Public {
		return nil
	}

	var failures []ir.Item
	var usedLifetimes []ir.Lifetime
	var params []ir.FuncParam

	if fn.IsMemberFunction() && !fn.IsStatic {
		thisParam, lts, err := mapThisParam(ctx, fn)
		if err != nil {
			failures = append(failures, unsupportedFromErr(fn, err))
		} else {
			usedLifetimes = append(usedLifetimes, lts...)
			params = append(params, thisParam)
		}
	}

	for i, p := range fn.Params {
		var stack *typemap.LifetimeStack
		if fn.Lifetimes != nil && i < len(fn.Lifetimes.ParamLifetimes) {
			stack = ctx.lifetimeStack(fn.Lifetimes.ParamLifetimes[i])
		}
		res, err := ctx.mapper().Map(p.Type, stack, false)
		if err != nil {
			failures = append(failures, unsupportedAt(fn, err.Error(), p.Loc))
			continue
		}
		if !passableInRegisters(ctx, res.Type.Cc) {
			failures = append(failures, unsupportedAt(fn, "parameter type not passable in registers: "+p.Type.Spelling(), p.Loc))
			continue
		}
		usedLifetimes = append(usedLifetimes, res.UsedLifetimes...)

		var identifier ir.Identifier
		if p.Name == "" {
			identifier = ir.ParamIdentifier(i)
		} else {
			identifier = ir.Identifier(p.Name)
		}
		params = append(params, ir.FuncParam{Type: res.Type, Identifier: identifier})
	}

	var returnStack *typemap.LifetimeStack
	if fn.Lifetimes != nil {
		returnStack = ctx.lifetimeStack(fn.Lifetimes.ReturnLifetimes)
	}
	retRes, err := ctx.mapper().Map(fn.ReturnType, returnStack, false)
	switch {
	case err != nil:
		failures = append(failures, unsupportedFromErr(fn, err))
	case !passableInRegisters(ctx, retRes.Type.Cc):
		failures = append(failures, unsupportedWithMessage(fn, "return type not passable in registers: "+fn.ReturnType.Spelling()))
	default:
		usedLifetimes = append(usedLifetimes, retRes.UsedLifetimes...)
	}

	if len(failures) > 0 {
		return failures
	}

	name, variant := unqualifiedNameAndVariant(fn)

	distinct := dedupeLifetimes(usedLifetimes)
	ir.SortLifetimesByName(distinct)

	return []ir.Item{&ir.Func{
		Name:               name,
		OwningTarget:       ctx.OwningTarget(fn),
		DocComment:         fn.DocComment(),
		MangledName:        ctx.Mangler.Mangle(fn, variant),
		ReturnType:         retRes.Type,
		Params:             params,
		LifetimeParams:     distinct,
		IsInline:           fn.IsInline,
		MemberFuncMetadata: memberFuncMetadata(fn),
		CtorKind:           ctorKind(fn),
		SourceLoc:          fn.Loc(),
	}}
}

func ctorKind(fn *cc.FunctionDecl) ir.CtorKind {
	switch {
	case fn.IsDefaultConstructor:
		return ir.CtorDefault
	case fn.IsCopyConstructor:
		return ir.CtorCopy
	case fn.IsMoveConstructor:
		return ir.CtorMove
	default:
		return ir.CtorOther
	}
}

// mapThisParam synthesizes the __this receiver parameter for a
// non-static member function: a non-nullable pointer to the owning
// class type (§4.3 step 2).
func mapThisParam(ctx *Context, fn *cc.FunctionDecl) (ir.FuncParam, []ir.Lifetime, error) {
	recv := fn.OwningRecord
	tag := cc.NewTag(recv.QualifiedName(), recv.CanonicalID(), fn.IsConstQualified)
	ptr := cc.NewPointer(recv.QualifiedName()+"*", tag, false)

	var stack *typemap.LifetimeStack
	if fn.Lifetimes != nil {
		stack = ctx.lifetimeStack(fn.Lifetimes.ThisLifetimes)
	}

	res, err := ctx.mapper().Map(ptr, stack, false)
	if err != nil {
		return ir.FuncParam{}, nil, err
	}
	return ir.FuncParam{Type: res.Type, Identifier: ir.ThisIdentifier}, res.UsedLifetimes, nil
}

// unqualifiedNameAndVariant picks the sentinel/name and mangling variant
// a function's name maps to (§4.3 step 6, §4.4).
func unqualifiedNameAndVariant(fn *cc.FunctionDecl) (ir.UnqualifiedIdentifier, cc.MangleVariant) {
	switch {
	case fn.IsConstructor:
		return ir.ConstructorSentinel{}, cc.MangleCtorComplete
	case fn.IsDestructor:
		return ir.DestructorSentinel{}, cc.MangleDtorComplete
	default:
		return ir.Identifier(fn.Name), cc.MangleUnary
	}
}

func memberFuncMetadata(fn *cc.FunctionDecl) *ir.MemberFuncMetadata {
	if !fn.IsMemberFunction() {
		return nil
	}
	meta := &ir.MemberFuncMetadata{RecordID: fn.OwningRecord.CanonicalID()}
	if !fn.IsStatic {
		meta.InstanceMethod = &ir.InstanceMethodMetadata{
			IsConstQualified: fn.IsConstQualified,
			IsVirtual:        fn.IsVirtual,
		}
	}
	return meta
}
