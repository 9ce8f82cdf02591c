// Package mangle implements the name-mangling service (§4.4): producing
// the Itanium-ABI-style mangled symbol for a function declaration, using
// the "complete object" constructor/destructor variant rather than the
// base-object or deleting-destructor variants the full ABI also defines
// (§9 "never base/deleting variants").
package mangle

import (
	"strconv"
	"strings"

	"cclower/internal/cc"
)

// Itanium mangles cc.FunctionDecl values using a subset of the Itanium
// C++ ABI name-mangling grammar. It satisfies cc.Mangler.
type Itanium struct{}

// Mangle produces the mangled symbol for fn under the requested variant.
func (Itanium) Mangle(fn *cc.FunctionDecl, variant cc.MangleVariant) string {
	var b strings.Builder
	b.WriteString("_Z")

	components := nestedComponents(fn)
	qualified := len(components) > 1

	if qualified {
		b.WriteString("N")
	}
	for i, comp := range components {
		last := i == len(components)-1
		if last {
			writeCtorDtorOrSourceName(&b, comp, variant)
		} else {
			writeSourceName(&b, comp)
		}
	}
	if qualified {
		b.WriteString("E")
	}

	if len(fn.Params) == 0 {
		b.WriteString("v")
	} else {
		for _, p := range fn.Params {
			b.WriteString(mangleType(p.Type))
		}
	}

	return b.String()
}

// nestedComponents returns the unqualified name components from
// outermost enclosing scope to the function itself, e.g. for
// "ns::Widget::Widget" it returns ["ns", "Widget", "Widget"].
func nestedComponents(fn *cc.FunctionDecl) []string {
	parts := strings.Split(fn.QualifiedName(), "::")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{fn.QualifiedName()}
	}
	return out
}

func writeSourceName(b *strings.Builder, name string) {
	b.WriteString(strconv.Itoa(len(name)))
	b.WriteString(name)
}

// writeCtorDtorOrSourceName encodes the innermost name component,
// substituting the ABI's special constructor/destructor tokens when the
// variant calls for them rather than spelling out the class name again.
func writeCtorDtorOrSourceName(b *strings.Builder, name string, variant cc.MangleVariant) {
	switch variant {
	case cc.MangleCtorComplete:
		b.WriteString("C1")
	case cc.MangleDtorComplete:
		b.WriteString("D1")
	default:
		writeSourceName(b, name)
	}
}

// mangleType encodes a single parameter type per the Itanium builtin and
// compound-type productions this engine needs to support.
func mangleType(t cc.Type) string {
	var prefix string
	if t.IsConst() {
		prefix = "K"
	}

	switch v := t.(type) {
	case cc.Pointer:
		return "P" + mangleType(v.Pointee)
	case cc.LValueReference:
		return "R" + mangleType(v.Pointee)
	case cc.Builtin:
		return prefix + mangleBuiltin(v)
	case cc.Tag:
		return prefix + mangleNamedType(v.Spelling())
	case cc.Typedef:
		return prefix + mangleNamedType(v.Spelling())
	default:
		return prefix + mangleNamedType(t.Spelling())
	}
}

func mangleBuiltin(b cc.Builtin) string {
	switch b.Kind {
	case cc.BuiltinBool:
		return "b"
	case cc.BuiltinFloat:
		return "f"
	case cc.BuiltinDouble:
		return "d"
	case cc.BuiltinVoid:
		return "v"
	case cc.BuiltinInt:
		return mangleInt(b.Width, b.Signed)
	default:
		return "i"
	}
}

func mangleInt(width int, signed bool) string {
	switch width {
	case 8:
		if signed {
			return "a"
		}
		return "h"
	case 16:
		if signed {
			return "s"
		}
		return "t"
	case 32:
		if signed {
			return "i"
		}
		return "j"
	case 64:
		if signed {
			return "x"
		}
		return "y"
	default:
		return "i"
	}
}

// mangleNamedType encodes a record/typedef reference as a length-prefixed
// source name, without resolving through any enclosing-namespace chain;
// this engine mangles parameter lists for diagnostic/demonstration
// purposes, not to produce a symbol a real linker must match bit-for-bit
// against Clang's own mangler.
func mangleNamedType(spelling string) string {
	name := spelling
	if idx := strings.LastIndex(name, "::"); idx >= 0 {
		name = name[idx+2:]
	}
	return strconv.Itoa(len(name)) + name
}
