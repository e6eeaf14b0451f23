package rewrite

import "github.com/gnoswap-labs/guardorder/internal/term"

type rule[T any] struct {
	key     string
	head    *term.Symbol
	lhs     T
	rhs     T
	cond    T
	hasCond bool
}

type binding[T any] map[*term.Variable]T

// engine rewrites terms in the internal encoding T. Rules are always tried
// in insertion order; the compiled index only changes how candidates are
// found.
type engine[T any] struct {
	codec    Codec[T]
	strategy Strategy

	trueTerm  T
	falseTerm T

	rules []rule[T]
	index map[*term.Symbol][]int
}

func newEngine[T any](codec Codec[T], strategy Strategy, f *term.Factory) *engine[T] {
	return &engine[T]{
		codec:     codec,
		strategy:  strategy,
		trueTerm:  codec.ToRewriteFormat(f.True()),
		falseTerm: codec.ToRewriteFormat(f.False()),
	}
}

func (e *engine[T]) add(eq term.Equation) {
	r := rule[T]{
		key:  eq.Key(),
		head: eq.LHS.Symbol(),
		lhs:  e.codec.ToRewriteFormat(eq.LHS),
		rhs:  e.codec.ToRewriteFormat(eq.RHS),
	}
	if eq.Condition != nil {
		r.cond = e.codec.ToRewriteFormat(eq.Condition)
		r.hasCond = true
	}
	e.rules = append(e.rules, r)
	e.compile()
}

func (e *engine[T]) remove(key string) {
	for i, r := range e.rules {
		if r.key == key {
			e.rules = append(e.rules[:i], e.rules[i+1:]...)
			break
		}
	}
	e.compile()
}

func (e *engine[T]) compile() {
	if !e.strategy.Compiling() {
		return
	}
	e.index = make(map[*term.Symbol][]int, len(e.rules))
	for i, r := range e.rules {
		e.index[r.head] = append(e.index[r.head], i)
	}
}

// candidates returns the positions of the rules whose left side has head
// sym.
func (e *engine[T]) candidates(sym *term.Symbol) []int {
	if e.strategy.Compiling() {
		return e.index[sym]
	}
	var out []int
	for i, r := range e.rules {
		if r.head == sym {
			out = append(out, i)
		}
	}
	return out
}

func (e *engine[T]) normalize(t T) T {
	if _, ok := e.codec.AsVariable(t); ok {
		return t
	}
	if e.strategy.Family() == FamilyJitty {
		return e.jitty(t)
	}
	return e.innermost(t)
}

func (e *engine[T]) innermost(t T) T {
	n := e.codec.NumArgs(t)
	args := make([]T, n)
	for i := range args {
		args[i] = e.normalize(e.codec.Arg(t, i))
	}
	return e.rewriteRoot(e.codec.Build(e.codec.Head(t), args))
}

// jitty tries the rules at the root before touching the arguments, and
// normalizes an argument only when a left side needs to look into it.
func (e *engine[T]) jitty(t T) T {
	head := e.codec.Head(t)
	n := e.codec.NumArgs(t)
	args := make([]T, n)
	done := make([]bool, n)
	for i := range args {
		args[i] = e.codec.Arg(t, i)
	}

	for _, idx := range e.candidates(head) {
		r := e.rules[idx]
		b := make(binding[T])
		if !e.matchLazy(r.lhs, args, done, b) || !e.conditionHolds(r, b) {
			continue
		}
		return e.normalize(e.instantiate(r.rhs, b))
	}

	for i := range args {
		if !done[i] {
			args[i] = e.normalize(args[i])
			done[i] = true
		}
	}
	return e.rewriteRoot(e.codec.Build(head, args))
}

// rewriteRoot rewrites t, whose arguments are in normal form, at the root.
func (e *engine[T]) rewriteRoot(t T) T {
	for _, idx := range e.candidates(e.codec.Head(t)) {
		r := e.rules[idx]
		b := make(binding[T])
		if !e.match(r.lhs, t, b) || !e.conditionHolds(r, b) {
			continue
		}
		return e.normalize(e.instantiate(r.rhs, b))
	}
	if e.strategy.Prover() {
		if s, ok := e.simplify(t); ok {
			return s
		}
	}
	return t
}

func (e *engine[T]) matchLazy(lhs T, args []T, done []bool, b binding[T]) bool {
	if e.codec.NumArgs(lhs) != len(args) {
		return false
	}
	for i := range args {
		p := e.codec.Arg(lhs, i)
		if v, ok := e.codec.AsVariable(p); ok {
			prev, bound := b[v]
			if !bound {
				b[v] = args[i]
				continue
			}
			if !done[i] {
				args[i] = e.normalize(args[i])
				done[i] = true
			}
			if !e.sameNormalForm(prev, args[i]) {
				return false
			}
			continue
		}
		if !done[i] {
			args[i] = e.normalize(args[i])
			done[i] = true
		}
		if !e.match(p, args[i], b) {
			return false
		}
	}
	return true
}

// match matches pattern p against t, where t's non-variable pattern
// positions are in normal form.
func (e *engine[T]) match(p, t T, b binding[T]) bool {
	if v, ok := e.codec.AsVariable(p); ok {
		if prev, bound := b[v]; bound {
			return e.sameNormalForm(prev, t)
		}
		b[v] = t
		return true
	}
	if _, ok := e.codec.AsVariable(t); ok {
		return false
	}
	if e.codec.Head(p) != e.codec.Head(t) {
		return false
	}
	n := e.codec.NumArgs(p)
	if n != e.codec.NumArgs(t) {
		return false
	}
	for i := 0; i < n; i++ {
		if !e.match(e.codec.Arg(p, i), e.codec.Arg(t, i), b) {
			return false
		}
	}
	return true
}

func (e *engine[T]) sameNormalForm(a, b T) bool {
	if e.codec.Equal(a, b) {
		return true
	}
	return e.codec.Equal(e.normalize(a), e.normalize(b))
}

func (e *engine[T]) conditionHolds(r rule[T], b binding[T]) bool {
	if !r.hasCond {
		return true
	}
	return e.codec.Equal(e.normalize(e.instantiate(r.cond, b)), e.trueTerm)
}

// instantiate replaces the variables of t bound in b.
func (e *engine[T]) instantiate(t T, b binding[T]) T {
	if v, ok := e.codec.AsVariable(t); ok {
		if val, bound := b[v]; bound {
			return val
		}
		return t
	}
	n := e.codec.NumArgs(t)
	if n == 0 {
		return t
	}
	args := make([]T, n)
	for i := range args {
		args[i] = e.instantiate(e.codec.Arg(t, i), b)
	}
	return e.codec.Build(e.codec.Head(t), args)
}

// simplify applies the Boolean laws prover-assisted strategies know
// without equations.
func (e *engine[T]) simplify(t T) (T, bool) {
	head := e.codec.Head(t)
	switch {
	case head.Name == term.IfName && e.codec.NumArgs(t) == 3:
		c, then, els := e.codec.Arg(t, 0), e.codec.Arg(t, 1), e.codec.Arg(t, 2)
		switch {
		case e.codec.Equal(c, e.trueTerm):
			return then, true
		case e.codec.Equal(c, e.falseTerm):
			return els, true
		case e.codec.Equal(then, els):
			return then, true
		}
	case head.Name == term.EqName && e.codec.NumArgs(t) == 2:
		if e.codec.Equal(e.codec.Arg(t, 0), e.codec.Arg(t, 1)) {
			return e.trueTerm, true
		}
	}
	return t, false
}
