package term

import (
	"fmt"
	"strings"
)

// Sort is the name of a data sort.
type Sort string

// Bool is the sort of guards.
const Bool Sort = "Bool"

// Names of the predefined symbols.
const (
	TrueName  = "true"
	FalseName = "false"
	NotName   = "!"
	AndName   = "&&"
	OrName    = "||"
	EqName    = "=="
	IfName    = "if"
)

// Symbol is a function symbol. Symbols are interned by a Factory, so two
// symbols are the same symbol exactly when they are the same pointer.
type Symbol struct {
	Name     string
	Domain   []Sort
	Codomain Sort

	id uint64
}

// Arity returns the number of arguments the symbol takes.
func (s *Symbol) Arity() int { return len(s.Domain) }

// ID returns the session index of the symbol.
func (s *Symbol) ID() uint64 { return s.id }

func (s *Symbol) String() string {
	if len(s.Domain) == 0 {
		return s.Name + ": " + string(s.Codomain)
	}
	parts := make([]string, len(s.Domain))
	for i, d := range s.Domain {
		parts[i] = string(d)
	}
	return s.Name + ": " + strings.Join(parts, " # ") + " -> " + string(s.Codomain)
}

// Variable is a sorted data variable.
type Variable struct {
	Name string
	Sort Sort

	id uint64
}

// ID returns the session index of the variable.
func (v *Variable) ID() uint64 { return v.id }

func (v *Variable) String() string {
	return v.Name + ": " + string(v.Sort)
}

// Term is an immutable data expression: either a variable or the
// application of a symbol to arguments. Constants are applications
// without arguments.
type Term struct {
	sym  *Symbol
	v    *Variable
	args []*Term

	id uint64
}

// IsVariable reports whether t is a variable.
func (t *Term) IsVariable() bool { return t.v != nil }

// Variable returns the variable of t, or nil if t is an application.
func (t *Term) Variable() *Variable { return t.v }

// Symbol returns the head symbol of t, or nil if t is a variable.
func (t *Term) Symbol() *Symbol { return t.sym }

// Arity returns the number of arguments of t.
func (t *Term) Arity() int { return len(t.args) }

// Arg returns the i-th argument of t. It panics when i is outside
// [0, Arity()).
func (t *Term) Arg(i int) *Term {
	if i < 0 || i >= len(t.args) {
		panic(fmt.Sprintf("term: argument %d out of range for %s (arity %d)", i, t, len(t.args)))
	}
	return t.args[i]
}

// Args returns a copy of the arguments of t.
func (t *Term) Args() []*Term {
	out := make([]*Term, len(t.args))
	copy(out, t.args)
	return out
}

// Sort returns the sort of t.
func (t *Term) Sort() Sort {
	if t.v != nil {
		return t.v.Sort
	}
	return t.sym.Codomain
}

// ID returns the creation index of t. It is unique and stable within the
// Factory that built t and carries no other meaning.
func (t *Term) ID() uint64 { return t.id }

// Occurs reports whether sub is a subterm of t, t itself included.
func (t *Term) Occurs(sub *Term) bool {
	if t == sub {
		return true
	}
	for _, a := range t.args {
		if a.Occurs(sub) {
			return true
		}
	}
	return false
}

// Vars returns the variables of t in order of first occurrence.
func (t *Term) Vars() []*Variable {
	var out []*Variable
	seen := make(map[*Variable]struct{})
	t.collectVars(seen, &out)
	return out
}

func (t *Term) collectVars(seen map[*Variable]struct{}, out *[]*Variable) {
	if t.v != nil {
		if _, ok := seen[t.v]; !ok {
			seen[t.v] = struct{}{}
			*out = append(*out, t.v)
		}
		return
	}
	for _, a := range t.args {
		a.collectVars(seen, out)
	}
}

func (t *Term) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Term) write(sb *strings.Builder) {
	if t.v != nil {
		sb.WriteString(t.v.Name)
		return
	}
	switch {
	case len(t.args) == 2 && isInfix(t.sym.Name):
		sb.WriteString("(")
		t.args[0].write(sb)
		sb.WriteString(" " + t.sym.Name + " ")
		t.args[1].write(sb)
		sb.WriteString(")")
		return
	case len(t.args) == 1 && t.sym.Name == NotName:
		sb.WriteString("!")
		t.args[0].write(sb)
		return
	}
	if t.sym.Name == IfName && len(t.args) == 3 {
		sb.WriteString(iteName)
	} else {
		sb.WriteString(t.sym.Name)
	}
	if len(t.args) == 0 {
		return
	}
	sb.WriteString("(")
	for i, a := range t.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		a.write(sb)
	}
	sb.WriteString(")")
}

func isInfix(name string) bool {
	return name == EqName || name == AndName || name == OrName
}
