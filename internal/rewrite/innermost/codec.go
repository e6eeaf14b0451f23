package innermost

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/mangle/ast"

	"github.com/gnoswap-labs/guardorder/internal/term"
)

// Codec encodes terms as mangle base terms: applications become
// ast.ApplyFn, variables ast.Variable, and the Boolean constants
// ast.TrueConstant and ast.FalseConstant. Overloaded symbols are told
// apart by their session index in the function symbol name.
//
// Mangle terms are plain values, so the codec keeps an identity table
// giving every distinct term a stable index for the session. The index of
// an application is keyed by its head and the indices of its arguments,
// and cached against the argument slice the codec built for it.
type Codec struct {
	mu sync.Mutex

	factory *term.Factory
	symbols map[string]*term.Symbol
	ops     map[string]uint64
	vars    map[string]*term.Variable
	ids     map[string]uint64
	applied map[appliedKey]uint64
	nextID  uint64
}

// appliedKey identifies an application by its head and the first element
// of its argument slice. Build copies arguments into a fresh slice, so the
// pair is unique per built term and survives copies of the value.
type appliedKey struct {
	fn   string
	args *ast.BaseTerm
}

// NewCodec creates a codec converting to and from terms of f.
func NewCodec(f *term.Factory) *Codec {
	return &Codec{
		factory: f,
		symbols: make(map[string]*term.Symbol),
		ops:     make(map[string]uint64),
		vars:    make(map[string]*term.Variable),
		ids:     make(map[string]uint64),
		applied: make(map[appliedKey]uint64),
	}
}

func (c *Codec) functionSym(sym *term.Symbol) ast.FunctionSym {
	name := sym.Name + "/" + strconv.FormatUint(sym.ID(), 10)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.symbols[name]; !ok {
		c.symbols[name] = sym
		c.ops[name] = uint64(len(c.ops) + 1)
	}
	return ast.FunctionSym{Symbol: name, Arity: sym.Arity()}
}

func (c *Codec) symbol(fn ast.FunctionSym) *term.Symbol {
	c.mu.Lock()
	defer c.mu.Unlock()
	sym, ok := c.symbols[fn.Symbol]
	if !ok {
		panic(fmt.Sprintf("innermost: unknown function symbol %s", fn.Symbol))
	}
	return sym
}

// operator returns the session index of fn.
func (c *Codec) operator(fn ast.FunctionSym) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ops[fn.Symbol]
}

func (c *Codec) variable(v *term.Variable) ast.Variable {
	name := v.Name + ":" + string(v.Sort)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.vars[name] = v
	return ast.Variable{Symbol: name}
}

// ToRewriteFormat converts t to a mangle base term.
func (c *Codec) ToRewriteFormat(t *term.Term) ast.BaseTerm {
	if t.IsVariable() {
		return c.variable(t.Variable())
	}
	args := make([]ast.BaseTerm, t.Arity())
	for i := range args {
		args[i] = c.ToRewriteFormat(t.Arg(i))
	}
	return c.Build(t.Symbol(), args)
}

// FromRewriteFormat converts e back to a semantic term.
func (c *Codec) FromRewriteFormat(e ast.BaseTerm) *term.Term {
	switch x := e.(type) {
	case ast.Variable:
		v, ok := c.AsVariable(x)
		if !ok {
			panic(fmt.Sprintf("innermost: unknown variable %s", x.Symbol))
		}
		return c.factory.Variable(v)
	case ast.Constant:
		if isTrue(x) {
			return c.factory.True()
		}
		if isFalse(x) {
			return c.factory.False()
		}
	case ast.ApplyFn:
		args := make([]*term.Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = c.FromRewriteFormat(a)
		}
		return c.factory.MustApply(c.symbol(x.Function), args...)
	}
	panic(fmt.Sprintf("innermost: unexpected term %T", e))
}

func (c *Codec) AsVariable(e ast.BaseTerm) (*term.Variable, bool) {
	x, ok := e.(ast.Variable)
	if !ok {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.vars[x.Symbol]
	return v, ok
}

// decodeHead converts only the head of e back to semantic form.
func (c *Codec) decodeHead(e ast.BaseTerm) *term.Symbol {
	switch x := e.(type) {
	case ast.Constant:
		if isTrue(x) {
			return c.factory.TrueSymbol()
		}
		if isFalse(x) {
			return c.factory.FalseSymbol()
		}
	case ast.ApplyFn:
		return c.symbol(x.Function)
	}
	return nil
}

func (c *Codec) Head(e ast.BaseTerm) *term.Symbol { return c.decodeHead(e) }

func (c *Codec) NumArgs(e ast.BaseTerm) int {
	if x, ok := e.(ast.ApplyFn); ok {
		return len(x.Args)
	}
	return 0
}

func (c *Codec) Arg(e ast.BaseTerm, i int) ast.BaseTerm {
	return e.(ast.ApplyFn).Args[i]
}

func (c *Codec) Build(sym *term.Symbol, args []ast.BaseTerm) ast.BaseTerm {
	switch sym {
	case c.factory.TrueSymbol():
		return ast.TrueConstant
	case c.factory.FalseSymbol():
		return ast.FalseConstant
	}
	cp := make([]ast.BaseTerm, len(args))
	copy(cp, args)
	return ast.ApplyFn{Function: c.functionSym(sym), Args: cp}
}

func (c *Codec) Equal(a, b ast.BaseTerm) bool { return c.Same(a, b) }

// Same reports whether a and b are the same term. Leaves are compared by
// symbol and applications by their session index.
func (c *Codec) Same(a, b ast.BaseTerm) bool {
	switch x := a.(type) {
	case ast.ApplyFn:
		y, ok := b.(ast.ApplyFn)
		if !ok || x.Function.Symbol != y.Function.Symbol || len(x.Args) != len(y.Args) {
			return false
		}
		if len(x.Args) == 0 || &x.Args[0] == &y.Args[0] {
			return true
		}
		return c.Address(a) == c.Address(b)
	case ast.Variable:
		y, ok := b.(ast.Variable)
		return ok && x.Symbol == y.Symbol
	case ast.Constant:
		y, ok := b.(ast.Constant)
		return ok && key(x) == key(y)
	}
	return false
}

// Address returns the session index of e, assigning one on first use.
func (c *Codec) Address(e ast.BaseTerm) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.address(e)
}

func (c *Codec) address(e ast.BaseTerm) uint64 {
	x, isApply := e.(ast.ApplyFn)
	if !isApply || len(x.Args) == 0 {
		return c.intern(key(e))
	}
	ak := appliedKey{fn: x.Function.Symbol, args: &x.Args[0]}
	if id, ok := c.applied[ak]; ok {
		return id
	}

	var sb strings.Builder
	sb.WriteString(x.Function.Symbol)
	sb.WriteString("(")
	for i, a := range x.Args {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString("#")
		sb.WriteString(strconv.FormatUint(c.address(a), 10))
	}
	sb.WriteString(")")
	id := c.intern(sb.String())
	c.applied[ak] = id
	return id
}

func (c *Codec) intern(k string) uint64 {
	if id, ok := c.ids[k]; ok {
		return id
	}
	c.nextID++
	c.ids[k] = c.nextID
	return c.nextID
}

// key is a canonical string for e. Function symbol names carry the
// session index of the symbol, so keys of distinct terms differ.
func key(e ast.BaseTerm) string {
	var sb strings.Builder
	writeKey(&sb, e)
	return sb.String()
}

func writeKey(sb *strings.Builder, e ast.BaseTerm) {
	switch x := e.(type) {
	case ast.Variable:
		sb.WriteString("?")
		sb.WriteString(x.Symbol)
	case ast.Constant:
		sb.WriteString(x.Symbol)
	case ast.ApplyFn:
		sb.WriteString(x.Function.Symbol)
		sb.WriteString("(")
		for i, a := range x.Args {
			if i > 0 {
				sb.WriteString(",")
			}
			writeKey(sb, a)
		}
		sb.WriteString(")")
	default:
		panic(fmt.Sprintf("innermost: unexpected term %T", e))
	}
}

func isTrue(c ast.Constant) bool {
	return c.Type == ast.TrueConstant.Type && c.Symbol == ast.TrueConstant.Symbol
}

func isFalse(c ast.Constant) bool {
	return c.Type == ast.FalseConstant.Type && c.Symbol == ast.FalseConstant.Symbol
}
