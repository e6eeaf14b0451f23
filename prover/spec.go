package prover

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/guardorder/internal/term"
)

// specFile is the YAML layout of an equational specification:
//
//	sorts: [Nat]
//	functions:
//	  - {name: zero, codomain: Nat}
//	  - {name: succ, domain: [Nat], codomain: Nat}
//	variables:
//	  - {name: n, sort: Nat}
//	equations:
//	  - {lhs: "plus(n, zero)", rhs: "n"}
//
// Bool is always declared.
type specFile struct {
	Sorts     []string       `yaml:"sorts"`
	Functions []functionDecl `yaml:"functions"`
	Variables []variableDecl `yaml:"variables"`
	Equations []equationDecl `yaml:"equations"`
}

type functionDecl struct {
	Name     string   `yaml:"name"`
	Domain   []string `yaml:"domain,omitempty"`
	Codomain string   `yaml:"codomain"`
}

type variableDecl struct {
	Name string `yaml:"name"`
	Sort string `yaml:"sort"`
}

type equationDecl struct {
	LHS       string `yaml:"lhs"`
	RHS       string `yaml:"rhs"`
	Condition string `yaml:"condition,omitempty"`
}

// LoadSpecification reads a YAML equational specification from path.
func LoadSpecification(path string) (*term.Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	spec, err := ParseSpecification(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// ParseSpecification reads a YAML equational specification.
func ParseSpecification(data []byte) (*term.Specification, error) {
	var file specFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpecification, err)
	}

	spec := term.NewSpecification()
	sorts := map[term.Sort]bool{term.Bool: true}
	for _, name := range file.Sorts {
		if name == "" {
			return nil, fmt.Errorf("%w: empty sort name", ErrInvalidSpecification)
		}
		sorts[term.Sort(name)] = true
		spec.AddSort(term.Sort(name))
	}
	sortOf := func(name, context string) (term.Sort, error) {
		s := term.Sort(name)
		if !sorts[s] {
			return "", fmt.Errorf("%w: unknown sort %q in %s", ErrInvalidSpecification, name, context)
		}
		return s, nil
	}

	for _, fn := range file.Functions {
		if fn.Name == "" {
			return nil, fmt.Errorf("%w: function without a name", ErrInvalidSpecification)
		}
		domain := make([]term.Sort, len(fn.Domain))
		for i, d := range fn.Domain {
			s, err := sortOf(d, "function "+fn.Name)
			if err != nil {
				return nil, err
			}
			domain[i] = s
		}
		codomain, err := sortOf(fn.Codomain, "function "+fn.Name)
		if err != nil {
			return nil, err
		}
		spec.AddFunction(fn.Name, domain, codomain)
	}

	for _, v := range file.Variables {
		if v.Name == "" {
			return nil, fmt.Errorf("%w: variable without a name", ErrInvalidSpecification)
		}
		s, err := sortOf(v.Sort, "variable "+v.Name)
		if err != nil {
			return nil, err
		}
		spec.AddVariable(v.Name, s)
	}

	for i, e := range file.Equations {
		eq, err := spec.ParseEquation(e.LHS, e.RHS, e.Condition)
		if err != nil {
			return nil, fmt.Errorf("%w: equation %d: %w", ErrInvalidSpecification, i+1, err)
		}
		spec.AddEquation(eq)
	}

	return spec, nil
}
