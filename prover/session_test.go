package prover

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gnoswap-labs/guardorder/internal/order"
	"github.com/gnoswap-labs/guardorder/internal/rewrite"
	"github.com/gnoswap-labs/guardorder/internal/term"
)

func newSessions(t *testing.T) (*term.Specification, map[rewrite.Strategy]Session) {
	t.Helper()
	spec, err := LoadSpecification("testdata/nat.yaml")
	require.NoError(t, err)

	sessions := make(map[rewrite.Strategy]Session)
	for _, s := range rewrite.Strategies() {
		session, err := New(spec, Config{Strategy: s.String()}, zaptest.NewLogger(t))
		require.NoError(t, err)
		require.Equal(t, s, session.Strategy())
		sessions[s] = session
	}
	return spec, sessions
}

func TestNewRejectsUnknownStrategy(t *testing.T) {
	_, err := New(term.NewSpecification(), Config{Strategy: "outermost"}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, rewrite.ErrUnknownStrategy)
}

func TestSessionNormalize(t *testing.T) {
	spec, sessions := newSessions(t)
	tests := []struct {
		in, want string
	}{
		{"plus(succ(zero), succ(zero))", "succ(succ(zero))"},
		{"lt(zero, succ(zero))", "true"},
		{"lt(succ(succ(zero)), succ(zero))", "false"},
		{"succ(zero) == succ(succ(zero))", "false"},
		{"plus(n, succ(zero))", "succ(n)"},
		{"!lt(zero, zero)", "true"},
	}
	for s, session := range sessions {
		t.Run(s.String(), func(t *testing.T) {
			for _, tt := range tests {
				assert.Equal(t, tt.want, session.Normalize(spec.MustParse(tt.in)).String(), tt.in)
			}
		})
	}
}

func TestSessionAssignments(t *testing.T) {
	spec, sessions := newSessions(t)
	a, err := ParseAssignment(spec, "n = succ(zero)")
	require.NoError(t, err)
	in := spec.MustParse("plus(n, n)")

	for s, session := range sessions {
		t.Run(s.String(), func(t *testing.T) {
			assert.Equal(t, "succ(succ(zero))", session.Normalize(in, a).String())
			assert.Equal(t, "plus(n, n)", session.Normalize(in).String())
		})
	}
}

func TestParseAssignmentErrors(t *testing.T) {
	spec, err := LoadSpecification("testdata/nat.yaml")
	require.NoError(t, err)

	for _, src := range []string{"n", "k=zero", "n=true", "n=succ("} {
		_, err := ParseAssignment(spec, src)
		assert.ErrorIs(t, err, ErrInvalidAssignment, src)
	}
}

func TestSessionRules(t *testing.T) {
	spec, sessions := newSessions(t)
	eq, err := spec.ParseEquation("plus(zero, n)", "n", "")
	require.NoError(t, err)
	in := spec.MustParse("plus(zero, m)")

	for s, session := range sessions {
		t.Run(s.String(), func(t *testing.T) {
			before := len(session.Rules())
			assert.Equal(t, "plus(zero, m)", session.Normalize(in).String())
			require.True(t, session.AddRule(eq))
			assert.Len(t, session.Rules(), before+1)
			assert.Equal(t, "m", session.Normalize(in).String())
			session.RemoveRule(eq)
			assert.Len(t, session.Rules(), before)
			assert.Equal(t, "plus(zero, m)", session.Normalize(in).String())
		})
	}
}

func TestSessionGuards(t *testing.T) {
	spec, sessions := newSessions(t)
	parse := func(srcs ...string) []*term.Term {
		out := make([]*term.Term, len(srcs))
		for i, src := range srcs {
			out[i] = spec.MustParse(src)
		}
		return out
	}
	guards := parse("lt(n, m)", "succ(n) == m", "b", "n == m")
	want := []string{"b", "(n == m)", "(succ(n) == m)", "lt(n, m)"}

	for s, session := range sessions {
		t.Run(s.String(), func(t *testing.T) {
			assert.Equal(t, order.ClassVariable, session.GuardClass(guards[2]))
			assert.Equal(t, order.ClassVariableEquality, session.GuardClass(guards[3]))
			assert.Equal(t, order.ClassEquality, session.GuardClass(guards[1]))
			assert.Equal(t, order.ClassOther, session.GuardClass(guards[0]))

			in := append([]*term.Term(nil), guards...)
			sorted := session.SortGuards(in)
			got := make([]string, len(sorted))
			for i, g := range sorted {
				got[i] = g.String()
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("SortGuards mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, guards, in, "input slice is left alone")

			assert.Equal(t, order.Smaller, session.CompareGuard(guards[3], guards[1]))
		})
	}
}

func TestSessionTermOrder(t *testing.T) {
	spec, sessions := newSessions(t)
	n := spec.MustParse("n")
	sn := spec.MustParse("succ(n)")
	zero := spec.MustParse("zero")

	for s, session := range sessions {
		t.Run(s.String(), func(t *testing.T) {
			assert.Equal(t, order.Smaller, session.CompareTerm(n, sn))
			assert.Equal(t, order.Smaller, session.CompareTerm(zero, n))
			assert.Equal(t, order.Equal, session.CompareTerm(sn, sn))
			assert.True(t, session.LPOGreater(sn, n))
			assert.False(t, session.LPOGreater(n, sn))
			assert.False(t, session.LPOGreater(sn, sn))
		})
	}
}

func TestSessionFullFlag(t *testing.T) {
	spec, err := LoadSpecification("testdata/nat.yaml")
	require.NoError(t, err)
	g2 := spec.MustParse("succ(n) == n")
	g1 := spec.MustParse("n == succ(n)")

	session, err := New(spec, Config{Strategy: "innermost", Full: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, order.Smaller, session.CompareGuard(g1, g2))

	session.SetReverse(true)
	assert.Equal(t, order.Bigger, session.CompareGuard(g1, g2))
}
