package jitty

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gnoswap-labs/guardorder/internal/term"
)

// Term is a term in the jitty rewrite format: an operator index into the
// store's symbol table followed by the arguments, or a bound data
// variable. Terms are hash-consed by their Store, so identical terms are
// the same pointer.
type Term struct {
	id   uint64
	op   int
	v    *term.Variable
	args []*Term
}

// ID returns the creation index of t within its store.
func (t *Term) ID() uint64 { return t.id }

func (t *Term) String() string {
	if t.v != nil {
		return t.v.Name
	}
	var sb strings.Builder
	sb.WriteString("#")
	sb.WriteString(strconv.Itoa(t.op))
	if len(t.args) > 0 {
		sb.WriteString("(")
		for i, a := range t.args {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(a.String())
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// Store owns the symbol table and the intern table of the jitty format.
// Operator indices start at 1; 0 marks variables.
type Store struct {
	mu sync.Mutex

	factory *term.Factory
	symbols []*term.Symbol
	ops     map[*term.Symbol]int
	terms   map[string]*Term
	nextID  uint64
}

// NewStore creates an empty store converting to and from terms of f.
func NewStore(f *term.Factory) *Store {
	return &Store{
		factory: f,
		symbols: []*term.Symbol{nil},
		ops:     make(map[*term.Symbol]int),
		terms:   make(map[string]*Term),
	}
}

// Operator returns the index of sym, assigning one on first use.
func (s *Store) Operator(sym *term.Symbol) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.operator(sym)
}

func (s *Store) operator(sym *term.Symbol) int {
	if op, ok := s.ops[sym]; ok {
		return op
	}
	op := len(s.symbols)
	s.symbols = append(s.symbols, sym)
	s.ops[sym] = op
	return op
}

// Symbol returns the symbol with index op.
func (s *Store) Symbol(op int) *term.Symbol {
	s.mu.Lock()
	defer s.mu.Unlock()
	if op <= 0 || op >= len(s.symbols) {
		panic(fmt.Sprintf("jitty: unknown operator %d", op))
	}
	return s.symbols[op]
}

func (s *Store) intern(key string, mk func() *Term) *Term {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.terms[key]; ok {
		return t
	}
	t := mk()
	s.nextID++
	t.id = s.nextID
	s.terms[key] = t
	return t
}

func (s *Store) variable(v *term.Variable) *Term {
	key := "v" + strconv.FormatUint(v.ID(), 10)
	return s.intern(key, func() *Term { return &Term{v: v} })
}

func (s *Store) apply(op int, args []*Term) *Term {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(op))
	for _, a := range args {
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatUint(a.id, 10))
	}
	return s.intern(sb.String(), func() *Term {
		cp := make([]*Term, len(args))
		copy(cp, args)
		return &Term{op: op, args: cp}
	})
}

// ToRewriteFormat converts t to the jitty format.
func (s *Store) ToRewriteFormat(t *term.Term) *Term {
	if t.IsVariable() {
		return s.variable(t.Variable())
	}
	args := make([]*Term, t.Arity())
	for i := range args {
		args[i] = s.ToRewriteFormat(t.Arg(i))
	}
	return s.apply(s.Operator(t.Symbol()), args)
}

// FromRewriteFormat converts e back to a semantic term.
func (s *Store) FromRewriteFormat(e *Term) *term.Term {
	if e.v != nil {
		return s.factory.Variable(e.v)
	}
	args := make([]*term.Term, len(e.args))
	for i, a := range e.args {
		args[i] = s.FromRewriteFormat(a)
	}
	return s.factory.MustApply(s.Symbol(e.op), args...)
}

// decodeHead converts only the head of e back to semantic form.
func (s *Store) decodeHead(e *Term) *term.Symbol {
	if e.v != nil {
		return nil
	}
	return s.Symbol(e.op)
}

func (s *Store) AsVariable(e *Term) (*term.Variable, bool) {
	return e.v, e.v != nil
}

func (s *Store) Head(e *Term) *term.Symbol { return s.decodeHead(e) }

func (s *Store) NumArgs(e *Term) int { return len(e.args) }

func (s *Store) Arg(e *Term, i int) *Term { return e.args[i] }

func (s *Store) Build(sym *term.Symbol, args []*Term) *Term {
	return s.apply(s.Operator(sym), args)
}

func (s *Store) Equal(a, b *Term) bool { return a == b }
