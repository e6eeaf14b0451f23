package term

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"
)

// iteName is how if-then-else is spelled in source, since "if" is a Go
// keyword.
const iteName = "ite"

// Scope resolves identifiers to declared variables and function symbols.
type Scope struct {
	f     *Factory
	funcs map[string][]*Symbol
	vars  map[string]*Variable
}

// NewScope creates an empty scope over f.
func NewScope(f *Factory) *Scope {
	return &Scope{
		f:     f,
		funcs: make(map[string][]*Symbol),
		vars:  make(map[string]*Variable),
	}
}

// DeclareFunction makes sym resolvable by name. Symbols sharing a name are
// overloads.
func (s *Scope) DeclareFunction(sym *Symbol) {
	for _, existing := range s.funcs[sym.Name] {
		if existing == sym {
			return
		}
	}
	s.funcs[sym.Name] = append(s.funcs[sym.Name], sym)
}

// DeclareVariable makes v resolvable by name. A variable shadows a
// constant of the same name.
func (s *Scope) DeclareVariable(v *Variable) {
	s.vars[v.Name] = v
}

// Parse reads a term written in Go expression syntax, e.g.
//
//	f(x) == g(a, a) && !b
//
// if-then-else is written ite(c, t, e).
func (s *Scope) Parse(src string) (*Term, error) {
	expr, err := parser.ParseExpr(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return s.convert(expr)
}

func (s *Scope) convert(expr ast.Expr) (*Term, error) {
	expr = astutil.Unparen(expr)
	switch e := expr.(type) {
	case *ast.Ident:
		return s.ident(e.Name)

	case *ast.UnaryExpr:
		if e.Op != token.NOT {
			return nil, fmt.Errorf("%w: unsupported operator %s", ErrSyntax, e.Op)
		}
		x, err := s.convert(e.X)
		if err != nil {
			return nil, err
		}
		return s.f.Not(x)

	case *ast.BinaryExpr:
		x, err := s.convert(e.X)
		if err != nil {
			return nil, err
		}
		y, err := s.convert(e.Y)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case token.EQL:
			return s.f.Equal(x, y)
		case token.NEQ:
			eq, err := s.f.Equal(x, y)
			if err != nil {
				return nil, err
			}
			return s.f.Not(eq)
		case token.LAND:
			return s.f.And(x, y)
		case token.LOR:
			return s.f.Or(x, y)
		}
		return nil, fmt.Errorf("%w: unsupported operator %s", ErrSyntax, e.Op)

	case *ast.CallExpr:
		fun, ok := e.Fun.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("%w: call of non-identifier", ErrSyntax)
		}
		args := make([]*Term, len(e.Args))
		for i, a := range e.Args {
			t, err := s.convert(a)
			if err != nil {
				return nil, err
			}
			args[i] = t
		}
		return s.call(fun.Name, args)
	}

	return nil, fmt.Errorf("%w: unsupported expression %T", ErrSyntax, expr)
}

func (s *Scope) ident(name string) (*Term, error) {
	if v, ok := s.vars[name]; ok {
		return s.f.Variable(v), nil
	}
	switch name {
	case TrueName:
		return s.f.True(), nil
	case FalseName:
		return s.f.False(), nil
	}

	var found *Symbol
	for _, sym := range s.funcs[name] {
		if sym.Arity() != 0 {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: constant %s", ErrAmbiguous, name)
		}
		found = sym
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIdentifier, name)
	}
	return s.f.Apply(found)
}

func (s *Scope) call(name string, args []*Term) (*Term, error) {
	if name == iteName && len(args) == 3 {
		return s.f.IfThenElse(args[0], args[1], args[2])
	}

	candidates := s.funcs[name]
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIdentifier, name)
	}

	var arityMatch bool
	for _, sym := range candidates {
		if sym.Arity() != len(args) {
			continue
		}
		arityMatch = true
		if sortsMatch(sym, args) {
			return s.f.Apply(sym, args...)
		}
	}
	if !arityMatch {
		return nil, fmt.Errorf("%w: no %s with %d arguments", ErrArity, name, len(args))
	}
	return nil, fmt.Errorf("%w: no %s accepting the given argument sorts", ErrSort, name)
}

func sortsMatch(sym *Symbol, args []*Term) bool {
	for i, a := range args {
		if a.Sort() != sym.Domain[i] {
			return false
		}
	}
	return true
}
