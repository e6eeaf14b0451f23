package order

import "github.com/gnoswap-labs/guardorder/internal/term"

// Operator is the identity of a function symbol inside a backend's
// internal encoding. Operators are compared by identity only; their
// numeric order is consistent within a session but arbitrary.
type Operator uint64

// Introspector answers structural queries directly on a rewriter's
// internal term encoding T, without converting terms back to semantic
// form. Every backend family provides one.
type Introspector[T any] interface {
	// Arity is 0 for true, false and variables, and the number of
	// arguments of the head operator otherwise.
	Arity(t T) int
	// Operator returns the head operator of t.
	Operator(t T) Operator
	// Argument returns the i-th argument of t, for i in [0, Arity(t)).
	Argument(t T, i int) T

	IsTrue(t T) bool
	IsFalse(t T) bool
	// IsIfThenElseBool reports whether t is if-then-else on Bool applied
	// to exactly three arguments.
	IsIfThenElseBool(t T) bool
	// IsVariable reports whether t is a bound data variable.
	IsVariable(t T) bool
	// IsEquality reports whether t is an application of an equality
	// symbol.
	IsEquality(t T) bool

	// HasTypeBool reports whether the internally encoded t has sort Bool.
	HasTypeBool(t T) bool
	// HasTypeBoolExpr reports whether the semantic expression e has sort
	// Bool.
	HasTypeBoolExpr(e *term.Term) bool

	// Address returns the session identity of t. Identical terms have the
	// same address; distinct terms have distinct addresses.
	Address(t T) uint64
	// Same reports whether a and b are the identical term.
	Same(a, b T) bool
}
