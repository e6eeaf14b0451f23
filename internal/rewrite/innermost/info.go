package innermost

import (
	"fmt"

	"github.com/google/mangle/ast"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/guardorder/internal/order"
	"github.com/gnoswap-labs/guardorder/internal/rewrite"
	"github.com/gnoswap-labs/guardorder/internal/term"
)

var _ rewrite.Codec[ast.BaseTerm] = (*Codec)(nil)

// Rewriter is a rewriter using one of the innermost strategies.
type Rewriter struct {
	*rewrite.Rewriter[ast.BaseTerm]
	codec *Codec
}

// NewRewriter creates a rewriter for spec. strategy must belong to the
// innermost family.
func NewRewriter(spec *term.Specification, strategy rewrite.Strategy, logger *zap.Logger) (*Rewriter, error) {
	if !strategy.Valid() || strategy.Family() != rewrite.FamilyInnermost {
		return nil, fmt.Errorf("%w: %s is not an innermost strategy", rewrite.ErrWrongFamily, strategy)
	}
	codec := NewCodec(spec.Factory)
	rw, err := rewrite.New[ast.BaseTerm](spec, strategy, codec, logger)
	if err != nil {
		return nil, err
	}
	return &Rewriter{Rewriter: rw, codec: codec}, nil
}

// Codec returns the rewriter's codec.
func (r *Rewriter) Codec() *Codec { return r.codec }

var _ order.Introspector[ast.BaseTerm] = (*Info)(nil)

// Info answers structural queries on terms in the innermost format.
type Info struct {
	rw *Rewriter

	fTrue           ast.FunctionSym
	fFalse          ast.FunctionSym
	fIfThenElseBool ast.FunctionSym
}

// NewInfo creates the introspector for rw.
func NewInfo(rw *Rewriter) *Info {
	f := rw.Factory()
	return &Info{
		rw:              rw,
		fTrue:           rw.codec.functionSym(f.TrueSymbol()),
		fFalse:          rw.codec.functionSym(f.FalseSymbol()),
		fIfThenElseBool: rw.codec.functionSym(f.IfSymbol(term.Bool)),
	}
}

func (i *Info) Arity(t ast.BaseTerm) int {
	if x, ok := t.(ast.ApplyFn); ok {
		return len(x.Args)
	}
	return 0
}

// Operator is 0 for variables. The Boolean constants, which are not
// applications in this format, get the operators of their symbols.
func (i *Info) Operator(t ast.BaseTerm) order.Operator {
	switch {
	case i.IsTrue(t):
		return order.Operator(i.rw.codec.operator(i.fTrue))
	case i.IsFalse(t):
		return order.Operator(i.rw.codec.operator(i.fFalse))
	}
	if x, ok := t.(ast.ApplyFn); ok {
		return order.Operator(i.rw.codec.operator(x.Function))
	}
	return 0
}

func (i *Info) Argument(t ast.BaseTerm, n int) ast.BaseTerm {
	x, ok := t.(ast.ApplyFn)
	if !ok || n < 0 || n >= len(x.Args) {
		panic(fmt.Sprintf("innermost: argument %d out of range for %s", n, key(t)))
	}
	return x.Args[n]
}

func (i *Info) IsTrue(t ast.BaseTerm) bool {
	c, ok := t.(ast.Constant)
	return ok && isTrue(c)
}

func (i *Info) IsFalse(t ast.BaseTerm) bool {
	c, ok := t.(ast.Constant)
	return ok && isFalse(c)
}

func (i *Info) IsIfThenElseBool(t ast.BaseTerm) bool {
	x, ok := t.(ast.ApplyFn)
	return ok && x.Function.Symbol == i.fIfThenElseBool.Symbol && len(x.Args) == 3
}

func (i *Info) IsVariable(t ast.BaseTerm) bool {
	_, ok := t.(ast.Variable)
	return ok
}

// IsEquality decodes only the head of t back to semantic form.
func (i *Info) IsEquality(t ast.BaseTerm) bool {
	if i.Arity(t) != 2 {
		return false
	}
	return i.rw.codec.decodeHead(t).Name == term.EqName
}

// HasTypeBool converts t back to semantic form to find its sort.
func (i *Info) HasTypeBool(t ast.BaseTerm) bool {
	return i.rw.FromRewriteFormat(t).Sort() == term.Bool
}

func (i *Info) HasTypeBoolExpr(e *term.Term) bool {
	return e.Sort() == term.Bool
}

func (i *Info) Address(t ast.BaseTerm) uint64 { return i.rw.codec.Address(t) }

func (i *Info) Same(a, b ast.BaseTerm) bool { return i.rw.codec.Same(a, b) }
