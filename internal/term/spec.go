package term

// Specification is an equational data specification: the sorts, function
// symbols, variables and equations a rewriter is built from.
type Specification struct {
	Factory   *Factory
	Sorts     []Sort
	Functions []*Symbol
	Variables []*Variable
	Equations []Equation

	scope *Scope
}

// NewSpecification creates an empty specification with a fresh Factory.
func NewSpecification() *Specification {
	f := NewFactory()
	return &Specification{
		Factory: f,
		Sorts:   []Sort{Bool},
		scope:   NewScope(f),
	}
}

// AddSort declares a sort.
func (s *Specification) AddSort(sort Sort) {
	for _, existing := range s.Sorts {
		if existing == sort {
			return
		}
	}
	s.Sorts = append(s.Sorts, sort)
}

// AddFunction declares a function symbol and returns it.
func (s *Specification) AddFunction(name string, domain []Sort, codomain Sort) *Symbol {
	sym := s.Factory.Symbol(name, domain, codomain)
	for _, existing := range s.Functions {
		if existing == sym {
			return sym
		}
	}
	s.Functions = append(s.Functions, sym)
	s.scope.DeclareFunction(sym)
	return sym
}

// AddVariable declares a variable and returns it.
func (s *Specification) AddVariable(name string, sort Sort) *Variable {
	v := s.Factory.Var(name, sort)
	for _, existing := range s.Variables {
		if existing == v {
			return v
		}
	}
	s.Variables = append(s.Variables, v)
	s.scope.DeclareVariable(v)
	return v
}

// AddEquation appends an equation.
func (s *Specification) AddEquation(eq Equation) {
	s.Equations = append(s.Equations, eq)
}

// Scope returns the scope resolving the declared symbols and variables.
func (s *Specification) Scope() *Scope { return s.scope }

// Parse reads a term over the specification's declarations.
func (s *Specification) Parse(src string) (*Term, error) {
	return s.scope.Parse(src)
}

// MustParse is like Parse but panics on error.
func (s *Specification) MustParse(src string) *Term {
	t, err := s.scope.Parse(src)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseEquation reads lhs = rhs [if cond]. An empty cond means true. The
// equation's variables are those occurring in its sides.
func (s *Specification) ParseEquation(lhs, rhs, cond string) (Equation, error) {
	l, err := s.scope.Parse(lhs)
	if err != nil {
		return Equation{}, err
	}
	r, err := s.scope.Parse(rhs)
	if err != nil {
		return Equation{}, err
	}
	eq := Equation{LHS: l, RHS: r}
	if cond != "" {
		c, err := s.scope.Parse(cond)
		if err != nil {
			return Equation{}, err
		}
		eq.Condition = c
	}
	eq.Vars = equationVars(eq)
	return eq, nil
}

func equationVars(eq Equation) []*Variable {
	seen := make(map[*Variable]struct{})
	var out []*Variable
	for _, t := range []*Term{eq.LHS, eq.RHS, eq.Condition} {
		if t == nil {
			continue
		}
		for _, v := range t.Vars() {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}
	return out
}
