package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/guardorder/internal/term"
)

func ruleSpec() *term.Specification {
	s := term.NewSpecification()
	d := term.Sort("D")
	s.AddSort(d)
	s.AddFunction("a", nil, d)
	s.AddFunction("f", []term.Sort{d}, d)
	s.AddFunction("g", []term.Sort{d, d}, d)
	s.AddVariable("x", d)
	s.AddVariable("y", d)
	return s
}

func mustEquation(t *testing.T, s *term.Specification, lhs, rhs, cond string) term.Equation {
	t.Helper()
	eq, err := s.ParseEquation(lhs, rhs, cond)
	require.NoError(t, err)
	return eq
}

func TestRuleSetAddRemove(t *testing.T) {
	s := ruleSpec()
	rs := NewRuleSet()
	eq := mustEquation(t, s, "f(x)", "g(x, x)", "")

	require.NoError(t, rs.Add(eq))
	assert.True(t, rs.Contains(eq))
	assert.Equal(t, 1, rs.Len())

	err := rs.Add(mustEquation(t, s, "f(x)", "g(x, x)", ""))
	assert.ErrorIs(t, err, ErrDuplicateRule)
	assert.Equal(t, 1, rs.Len())

	other := mustEquation(t, s, "g(x, y)", "x", "")
	require.NoError(t, rs.Add(other))
	eqs := rs.Equations()
	require.Len(t, eqs, 2)
	assert.Equal(t, eq.Key(), eqs[0].Key())
	assert.Equal(t, other.Key(), eqs[1].Key())

	assert.True(t, rs.Remove(eq))
	assert.False(t, rs.Remove(eq))
	assert.False(t, rs.Contains(eq))
	assert.Equal(t, 1, rs.Len())
}

func TestValidate(t *testing.T) {
	s := ruleSpec()
	tests := []struct {
		name          string
		lhs, rhs, cnd string
		ok            bool
	}{
		{"plain", "f(x)", "g(x, x)", "", true},
		{"conditional", "g(x, y)", "x", "x == y", true},
		{"variable left side", "x", "a", "", false},
		{"unbound right side", "f(x)", "y", "", false},
		{"unbound condition", "f(x)", "x", "x == y", false},
		{"sort mismatch", "f(x)", "x == x", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(mustEquation(t, s, tt.lhs, tt.rhs, tt.cnd))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidRule)
			}
		})
	}
}
