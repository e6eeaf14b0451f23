package jitty

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/guardorder/internal/order"
	"github.com/gnoswap-labs/guardorder/internal/rewrite"
	"github.com/gnoswap-labs/guardorder/internal/term"
)

var _ rewrite.Codec[*Term] = (*Store)(nil)

// Rewriter is a rewriter using one of the jitty strategies.
type Rewriter struct {
	*rewrite.Rewriter[*Term]
	store *Store
}

// NewRewriter creates a rewriter for spec. strategy must belong to the
// jitty family.
func NewRewriter(spec *term.Specification, strategy rewrite.Strategy, logger *zap.Logger) (*Rewriter, error) {
	if !strategy.Valid() || strategy.Family() != rewrite.FamilyJitty {
		return nil, fmt.Errorf("%w: %s is not a jitty strategy", rewrite.ErrWrongFamily, strategy)
	}
	store := NewStore(spec.Factory)
	rw, err := rewrite.New[*Term](spec, strategy, store, logger)
	if err != nil {
		return nil, err
	}
	return &Rewriter{Rewriter: rw, store: store}, nil
}

// Store returns the rewriter's term store.
func (r *Rewriter) Store() *Store { return r.store }

var _ order.Introspector[*Term] = (*Info)(nil)

// Info answers structural queries on terms in the jitty format.
type Info struct {
	rw *Rewriter

	fTrue           int
	fFalse          int
	fIfThenElseBool int
}

// NewInfo creates the introspector for rw.
func NewInfo(rw *Rewriter) *Info {
	f := rw.Factory()
	return &Info{
		rw:              rw,
		fTrue:           rw.ToRewriteFormat(f.True()).op,
		fFalse:          rw.ToRewriteFormat(f.False()).op,
		fIfThenElseBool: rw.store.Operator(f.IfSymbol(term.Bool)),
	}
}

func (i *Info) Arity(t *Term) int {
	if !i.IsTrue(t) && !i.IsFalse(t) && !i.IsVariable(t) {
		return len(t.args)
	}
	return 0
}

func (i *Info) Operator(t *Term) order.Operator {
	return order.Operator(t.op)
}

func (i *Info) Argument(t *Term, n int) *Term {
	if n < 0 || n >= i.Arity(t) {
		panic(fmt.Sprintf("jitty: argument %d out of range for %s", n, t))
	}
	return t.args[n]
}

func (i *Info) IsTrue(t *Term) bool {
	return t.v == nil && t.op == i.fTrue
}

func (i *Info) IsFalse(t *Term) bool {
	return t.v == nil && t.op == i.fFalse
}

func (i *Info) IsIfThenElseBool(t *Term) bool {
	return t.v == nil && t.op == i.fIfThenElseBool && i.Arity(t) == 3
}

func (i *Info) IsVariable(t *Term) bool {
	return t.v != nil
}

// IsEquality decodes only the head of t back to semantic form: the jitty
// format does not tell the equality symbols of the different sorts apart
// from other binary operators.
func (i *Info) IsEquality(t *Term) bool {
	if i.Arity(t) != 2 {
		return false
	}
	return i.rw.store.decodeHead(t).Name == term.EqName
}

// HasTypeBool converts t back to semantic form to find its sort.
func (i *Info) HasTypeBool(t *Term) bool {
	return i.rw.FromRewriteFormat(t).Sort() == term.Bool
}

func (i *Info) HasTypeBoolExpr(e *term.Term) bool {
	return e.Sort() == term.Bool
}

func (i *Info) Address(t *Term) uint64 { return t.id }

func (i *Info) Same(a, b *Term) bool { return a == b }
