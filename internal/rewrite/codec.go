package rewrite

import "github.com/gnoswap-labs/guardorder/internal/term"

// Codec converts between semantic terms and a backend's internal encoding
// T, and exposes the structure the engine needs to match and build terms
// in that encoding.
type Codec[T any] interface {
	ToRewriteFormat(t *term.Term) T
	FromRewriteFormat(e T) *term.Term

	// AsVariable returns the variable e encodes, if any.
	AsVariable(e T) (*term.Variable, bool)
	// Head returns the head symbol of an application. It is nil for
	// variables.
	Head(e T) *term.Symbol
	NumArgs(e T) int
	Arg(e T, i int) T
	// Build applies sym to args.
	Build(sym *term.Symbol, args []T) T
	// Equal reports whether a and b encode the same term.
	Equal(a, b T) bool
}
