package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/guardorder/internal/term"
)

func TestLoadSpecification(t *testing.T) {
	spec, err := LoadSpecification("testdata/nat.yaml")
	require.NoError(t, err)

	assert.Equal(t, []term.Sort{term.Bool, "Nat"}, spec.Sorts)
	assert.Len(t, spec.Functions, 4)
	assert.Len(t, spec.Variables, 4)
	assert.Len(t, spec.Equations, 11)

	eq := spec.Equations[1]
	assert.Equal(t, "plus(n, succ(m))", eq.LHS.String())
	assert.Equal(t, "succ(plus(n, m))", eq.RHS.String())
	assert.Nil(t, eq.Condition)
}

func TestParseSpecificationCondition(t *testing.T) {
	src := `
sorts: [D]
functions:
  - {name: a, codomain: D}
  - {name: f, domain: [D, D], codomain: D}
variables:
  - {name: x, sort: D}
  - {name: y, sort: D}
equations:
  - lhs: f(x, y)
    rhs: x
    condition: x == y
`
	spec, err := ParseSpecification([]byte(src))
	require.NoError(t, err)
	require.Len(t, spec.Equations, 1)
	require.NotNil(t, spec.Equations[0].Condition)
	assert.Equal(t, "(x == y)", spec.Equations[0].Condition.String())
}

func TestParseSpecificationErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"malformed yaml", "sorts: [D\n"},
		{"unknown codomain", "functions:\n  - {name: a, codomain: D}\n"},
		{"unknown domain", "sorts: [D]\nfunctions:\n  - {name: f, domain: [E], codomain: D}\n"},
		{"unknown variable sort", "variables:\n  - {name: x, sort: D}\n"},
		{"nameless function", "sorts: [D]\nfunctions:\n  - {codomain: D}\n"},
		{"unparsable equation", "sorts: [D]\nfunctions:\n  - {name: a, codomain: D}\nequations:\n  - {lhs: \"a(\", rhs: a}\n"},
		{"undeclared symbol", "sorts: [D]\nfunctions:\n  - {name: a, codomain: D}\nequations:\n  - {lhs: b, rhs: a}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpecification([]byte(tt.src))
			assert.ErrorIs(t, err, ErrInvalidSpecification)
		})
	}
}
