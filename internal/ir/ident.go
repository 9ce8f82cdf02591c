package ir

import "strconv"

// Identifier is an ordinary name: a field, parameter, type alias, or
// non-special-member function name.
type Identifier string

// UnqualifiedIdentifier is a declaration's unqualified name: either an
// ordinary Identifier, or one of the two sentinels used for constructors
// and destructors. Sentinels exist (rather than magic strings like
// "constructor") so a user-defined function literally named "constructor"
// can never collide with one.
type UnqualifiedIdentifier interface {
	unqualifiedIdentifier()
}

func (Identifier) unqualifiedIdentifier() {}

// ConstructorSentinel names a constructor; it carries no text.
type ConstructorSentinel struct{}

func (ConstructorSentinel) unqualifiedIdentifier() {}

// DestructorSentinel names a destructor; it carries no text.
type DestructorSentinel struct{}

func (DestructorSentinel) unqualifiedIdentifier() {}

// IsConstructor reports whether id names a constructor.
func IsConstructor(id UnqualifiedIdentifier) bool {
	_, ok := id.(ConstructorSentinel)
	return ok
}

// IsDestructor reports whether id names a destructor.
func IsDestructor(id UnqualifiedIdentifier) bool {
	_, ok := id.(DestructorSentinel)
	return ok
}

// ParamIdentifier synthesizes the name for the i-th unnamed parameter.
func ParamIdentifier(i int) Identifier {
	return Identifier(paramPrefix + strconv.Itoa(i))
}

const (
	paramPrefix = "__param_"
	// ThisIdentifier names the synthetic leading parameter of instance
	// methods.
	ThisIdentifier = Identifier("__this")
)
