package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryInterning(t *testing.T) {
	f := NewFactory()
	d := Sort("D")
	a := f.MustApply(f.Symbol("a", nil, d))
	g := f.Symbol("g", []Sort{d, d}, d)

	t1 := f.MustApply(g, a, a)
	t2 := f.MustApply(g, a, a)
	assert.Same(t, t1, t2)
	assert.Equal(t, t1.ID(), t2.ID())

	x1 := f.Variable(f.Var("x", d))
	x2 := f.Variable(f.Var("x", d))
	assert.Same(t, x1, x2)

	// same name, different sort
	y := f.Variable(f.Var("x", Bool))
	assert.NotSame(t, x1, y)

	assert.Same(t, f.Symbol("g", []Sort{d, d}, d), g)
}

func TestCreationOrder(t *testing.T) {
	f := NewFactory()
	d := Sort("D")
	a := f.MustApply(f.Symbol("a", nil, d))
	b := f.MustApply(f.Symbol("b", nil, d))
	assert.Less(t, a.ID(), b.ID())
}

func TestApplyErrors(t *testing.T) {
	f := NewFactory()
	d := Sort("D")
	a := f.MustApply(f.Symbol("a", nil, d))
	g := f.Symbol("g", []Sort{d, d}, d)

	_, err := f.Apply(g, a)
	assert.ErrorIs(t, err, ErrArity)

	_, err = f.Apply(g, a, f.True())
	assert.ErrorIs(t, err, ErrSort)
}

func TestArgOutOfRangePanics(t *testing.T) {
	f := NewFactory()
	assert.Panics(t, func() { f.True().Arg(0) })

	x := f.Variable(f.Var("x", Bool))
	n, err := f.Not(x)
	require.NoError(t, err)
	assert.Same(t, x, n.Arg(0))
	assert.Panics(t, func() { n.Arg(1) })
	assert.Panics(t, func() { n.Arg(-1) })
}

func TestOccursAndVars(t *testing.T) {
	f := NewFactory()
	d := Sort("D")
	x := f.Variable(f.Var("x", d))
	y := f.Variable(f.Var("y", d))
	h := f.Symbol("h", []Sort{d, d}, d)
	k := f.Symbol("k", []Sort{d}, d)

	inner := f.MustApply(k, y)
	outer := f.MustApply(h, x, inner)

	assert.True(t, outer.Occurs(outer))
	assert.True(t, outer.Occurs(y))
	assert.True(t, outer.Occurs(inner))
	assert.False(t, inner.Occurs(x))

	vars := outer.Vars()
	require.Len(t, vars, 2)
	assert.Equal(t, "x", vars[0].Name)
	assert.Equal(t, "y", vars[1].Name)
}

func TestBuiltins(t *testing.T) {
	f := NewFactory()
	d := Sort("D")
	x := f.Variable(f.Var("x", d))
	y := f.Variable(f.Var("y", d))

	eq, err := f.Equal(x, y)
	require.NoError(t, err)
	assert.Equal(t, Bool, eq.Sort())
	assert.Same(t, f.EqSymbol(d), eq.Symbol())
	assert.True(t, f.IsBuiltin(eq.Symbol()))

	ite, err := f.IfThenElse(eq, x, y)
	require.NoError(t, err)
	assert.Equal(t, d, ite.Sort())
	assert.Equal(t, 3, ite.Arity())

	assert.False(t, f.IsBuiltin(f.Symbol("f", []Sort{d}, d)))
	assert.Equal(t, "(x == y)", eq.String())
}
