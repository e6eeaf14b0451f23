package term

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Factory builds and interns symbols, variables and terms. A Factory is
// one session: identities and creation indices are only meaningful among
// objects built by the same Factory.
type Factory struct {
	mu sync.Mutex

	nextID  uint64
	symbols map[string]*Symbol
	vars    map[string]*Variable
	terms   map[string]*Term

	trueSym, falseSym, notSym, andSym, orSym *Symbol
}

// NewFactory creates a factory with the Boolean symbols predefined.
func NewFactory() *Factory {
	f := &Factory{
		symbols: make(map[string]*Symbol),
		vars:    make(map[string]*Variable),
		terms:   make(map[string]*Term),
	}
	f.trueSym = f.Symbol(TrueName, nil, Bool)
	f.falseSym = f.Symbol(FalseName, nil, Bool)
	f.notSym = f.Symbol(NotName, []Sort{Bool}, Bool)
	f.andSym = f.Symbol(AndName, []Sort{Bool, Bool}, Bool)
	f.orSym = f.Symbol(OrName, []Sort{Bool, Bool}, Bool)
	return f
}

func (f *Factory) id() uint64 {
	f.nextID++
	return f.nextID
}

// Symbol returns the symbol with the given signature, creating it on first
// use.
func (f *Factory) Symbol(name string, domain []Sort, codomain Sort) *Symbol {
	key := symbolKey(name, domain, codomain)

	f.mu.Lock()
	defer f.mu.Unlock()

	if s, ok := f.symbols[key]; ok {
		return s
	}
	d := make([]Sort, len(domain))
	copy(d, domain)
	s := &Symbol{Name: name, Domain: d, Codomain: codomain, id: f.id()}
	f.symbols[key] = s
	return s
}

func symbolKey(name string, domain []Sort, codomain Sort) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte(':')
	for _, d := range domain {
		sb.WriteString(string(d))
		sb.WriteByte('#')
	}
	sb.WriteString("->")
	sb.WriteString(string(codomain))
	return sb.String()
}

// Var returns the variable with the given name and sort.
func (f *Factory) Var(name string, sort Sort) *Variable {
	key := name + ":" + string(sort)

	f.mu.Lock()
	defer f.mu.Unlock()

	if v, ok := f.vars[key]; ok {
		return v
	}
	v := &Variable{Name: name, Sort: sort, id: f.id()}
	f.vars[key] = v
	return v
}

// Variable returns the term consisting of v alone.
func (f *Factory) Variable(v *Variable) *Term {
	key := "v" + strconv.FormatUint(v.id, 10)

	f.mu.Lock()
	defer f.mu.Unlock()

	if t, ok := f.terms[key]; ok {
		return t
	}
	t := &Term{v: v, id: f.id()}
	f.terms[key] = t
	return t
}

// Apply returns sym applied to args. The number and sorts of the arguments
// must match the domain of sym.
func (f *Factory) Apply(sym *Symbol, args ...*Term) (*Term, error) {
	if len(args) != len(sym.Domain) {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrArity, sym.Name, len(sym.Domain), len(args))
	}
	for i, a := range args {
		if a.Sort() != sym.Domain[i] {
			return nil, fmt.Errorf("%w: argument %d of %s has sort %s, expected %s", ErrSort, i, sym.Name, a.Sort(), sym.Domain[i])
		}
	}
	return f.apply(sym, args), nil
}

// MustApply is like Apply but panics on error.
func (f *Factory) MustApply(sym *Symbol, args ...*Term) *Term {
	t, err := f.Apply(sym, args...)
	if err != nil {
		panic(err)
	}
	return t
}

func (f *Factory) apply(sym *Symbol, args []*Term) *Term {
	var sb strings.Builder
	sb.WriteString("a")
	sb.WriteString(strconv.FormatUint(sym.id, 10))
	for _, a := range args {
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatUint(a.id, 10))
	}
	key := sb.String()

	f.mu.Lock()
	defer f.mu.Unlock()

	if t, ok := f.terms[key]; ok {
		return t
	}
	cp := make([]*Term, len(args))
	copy(cp, args)
	t := &Term{sym: sym, args: cp, id: f.id()}
	f.terms[key] = t
	return t
}

// TrueSymbol returns the Boolean constant true.
func (f *Factory) TrueSymbol() *Symbol { return f.trueSym }

// FalseSymbol returns the Boolean constant false.
func (f *Factory) FalseSymbol() *Symbol { return f.falseSym }

// NotSymbol returns Boolean negation.
func (f *Factory) NotSymbol() *Symbol { return f.notSym }

// AndSymbol returns Boolean conjunction.
func (f *Factory) AndSymbol() *Symbol { return f.andSym }

// OrSymbol returns Boolean disjunction.
func (f *Factory) OrSymbol() *Symbol { return f.orSym }

// EqSymbol returns the equality symbol on s.
func (f *Factory) EqSymbol(s Sort) *Symbol {
	return f.Symbol(EqName, []Sort{s, s}, Bool)
}

// IfSymbol returns the if-then-else symbol on s.
func (f *Factory) IfSymbol(s Sort) *Symbol {
	return f.Symbol(IfName, []Sort{Bool, s, s}, s)
}

// True returns the term true.
func (f *Factory) True() *Term { return f.apply(f.trueSym, nil) }

// False returns the term false.
func (f *Factory) False() *Term { return f.apply(f.falseSym, nil) }

// Not returns !t.
func (f *Factory) Not(t *Term) (*Term, error) { return f.Apply(f.notSym, t) }

// And returns a && b.
func (f *Factory) And(a, b *Term) (*Term, error) { return f.Apply(f.andSym, a, b) }

// Or returns a || b.
func (f *Factory) Or(a, b *Term) (*Term, error) { return f.Apply(f.orSym, a, b) }

// Equal returns a == b.
func (f *Factory) Equal(a, b *Term) (*Term, error) {
	return f.Apply(f.EqSymbol(a.Sort()), a, b)
}

// IfThenElse returns if(c, a, b).
func (f *Factory) IfThenElse(c, a, b *Term) (*Term, error) {
	return f.Apply(f.IfSymbol(a.Sort()), c, a, b)
}

// IsBuiltin reports whether sym is one of the symbols the factory
// predefines or derives per sort.
func (f *Factory) IsBuiltin(sym *Symbol) bool {
	switch sym {
	case f.trueSym, f.falseSym, f.notSym, f.andSym, f.orSym:
		return true
	}
	return (sym.Name == EqName && sym.Arity() == 2) || (sym.Name == IfName && sym.Arity() == 3)
}
