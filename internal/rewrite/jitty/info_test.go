package jitty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/guardorder/internal/rewrite"
	"github.com/gnoswap-labs/guardorder/internal/term"
)

func newInfo(t *testing.T) (*term.Specification, *Rewriter, *Info) {
	t.Helper()
	s := term.NewSpecification()
	d := term.Sort("D")
	s.AddSort(d)
	s.AddFunction("a", nil, d)
	s.AddFunction("b", nil, d)
	s.AddFunction("f", []term.Sort{d}, d)
	s.AddFunction("g", []term.Sort{d, d}, d)
	s.AddVariable("x", d)
	s.AddVariable("p", term.Bool)
	s.AddVariable("q", term.Bool)
	rw, err := NewRewriter(s, rewrite.Jitty, nil)
	require.NoError(t, err)
	return s, rw, NewInfo(rw)
}

func TestInfoArity(t *testing.T) {
	s, rw, info := newInfo(t)
	tests := []struct {
		src  string
		want int
	}{
		{"true", 0},
		{"false", 0},
		{"x", 0},
		{"a", 0},
		{"f(a)", 1},
		{"g(a, x)", 2},
		{"ite(p, a, b)", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, info.Arity(rw.ToRewriteFormat(s.MustParse(tt.src))), tt.src)
	}
}

func TestInfoPredicates(t *testing.T) {
	s, rw, info := newInfo(t)
	enc := func(src string) *Term { return rw.ToRewriteFormat(s.MustParse(src)) }

	assert.True(t, info.IsTrue(enc("true")))
	assert.False(t, info.IsTrue(enc("false")))
	assert.True(t, info.IsFalse(enc("false")))
	assert.True(t, info.IsVariable(enc("x")))
	assert.False(t, info.IsVariable(enc("a")))

	assert.True(t, info.IsIfThenElseBool(enc("ite(p, q, p)")))
	assert.False(t, info.IsIfThenElseBool(enc("ite(p, a, b)")), "if on D")

	assert.True(t, info.IsEquality(enc("a == x")))
	assert.True(t, info.IsEquality(enc("p == q")))
	assert.False(t, info.IsEquality(enc("p && q")))
	assert.False(t, info.IsEquality(enc("g(a, b)")))

	assert.True(t, info.HasTypeBool(enc("p && q")))
	assert.True(t, info.HasTypeBool(enc("p")))
	assert.False(t, info.HasTypeBool(enc("f(x)")))
	assert.True(t, info.HasTypeBoolExpr(s.MustParse("a == b")))
}

func TestInfoArgumentAndIdentity(t *testing.T) {
	s, rw, info := newInfo(t)
	gax := rw.ToRewriteFormat(s.MustParse("g(a, x)"))

	assert.Same(t, rw.ToRewriteFormat(s.MustParse("x")), info.Argument(gax, 1))
	assert.Panics(t, func() { info.Argument(gax, 2) })
	assert.Panics(t, func() { info.Argument(rw.ToRewriteFormat(s.MustParse("true")), 0) })

	again := rw.ToRewriteFormat(s.MustParse("g(a, x)"))
	assert.True(t, info.Same(gax, again))
	assert.Equal(t, info.Address(gax), info.Address(again))
	assert.NotEqual(t, info.Address(gax), info.Address(info.Argument(gax, 0)))

	assert.Equal(t, info.Operator(gax), info.Operator(rw.ToRewriteFormat(s.MustParse("g(b, b)"))))
	assert.NotEqual(t, info.Operator(gax), info.Operator(rw.ToRewriteFormat(s.MustParse("f(a)"))))
}

func TestStoreRoundTrip(t *testing.T) {
	s, rw, _ := newInfo(t)
	for _, src := range []string{"x", "true", "g(f(a), x)", "ite(p, a, b)", "!(a == x) || p"} {
		in := s.MustParse(src)
		assert.Same(t, in, rw.FromRewriteFormat(rw.ToRewriteFormat(in)), src)
	}
}
