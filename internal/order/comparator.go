package order

import "sort"

// Comparator orders terms and guards given in a backend's internal
// encoding. Its only state besides the introspector are the two flags
// below; configure it before use and do not change the flags while
// another goroutine is comparing.
type Comparator[T any] struct {
	info Introspector[T]

	// full makes the arguments of equalities take part in guard
	// comparison.
	full bool
	// reverse weighs the second argument pair of two equalities before
	// the first.
	reverse bool
}

// NewComparator creates a comparator with both flags cleared.
func NewComparator[T any](info Introspector[T]) *Comparator[T] {
	return &Comparator[T]{info: info}
}

// SetFull sets the full flag.
func (c *Comparator[T]) SetFull(full bool) { c.full = full }

// SetReverse sets the reverse flag.
func (c *Comparator[T]) SetReverse(reverse bool) { c.reverse = reverse }

// Full returns the full flag.
func (c *Comparator[T]) Full() bool { return c.full }

// Reverse returns the reverse flag.
func (c *Comparator[T]) Reverse() bool { return c.reverse }

// Introspector returns the introspector c was built on.
func (c *Comparator[T]) Introspector() Introspector[T] { return c.info }

// CompareTerm orders t1 and t2: strict subterms first, then non-variables
// before variables, then by identity.
func (c *Comparator[T]) CompareTerm(t1, t2 T) Ordering {
	return Lexico(
		Lexico(
			c.compareTermOccurs(t1, t2),
			c.compareTermType(t1, t2),
		),
		c.compareAddress(t1, t2),
	)
}

// CompareGuard orders g1 and g2: by structural class, then (with full set)
// by the arguments of equalities, then by identity.
func (c *Comparator[T]) CompareGuard(g1, g2 T) Ordering {
	return Lexico(
		Lexico(
			c.compareGuardStructure(g1, g2),
			c.compareGuardEquality(g1, g2),
		),
		c.compareAddress(g1, g2),
	)
}

// GuardStructure classifies g.
func (c *Comparator[T]) GuardStructure(g T) GuardClass {
	if c.info.IsVariable(g) {
		return ClassVariable
	}
	if c.info.IsEquality(g) {
		if c.info.IsVariable(c.info.Argument(g, 0)) && c.info.IsVariable(c.info.Argument(g, 1)) {
			return ClassVariableEquality
		}
		return ClassEquality
	}
	return ClassOther
}

// LPOGreater reports whether t1 is greater than t2 in the recursive path
// ordering.
func (c *Comparator[T]) LPOGreater(t1, t2 T) bool {
	return c.lpo1(t1, t2)
}

// Occurs reports whether sub is a subterm of t, t itself included.
func (c *Comparator[T]) Occurs(sub, t T) bool {
	if c.info.Same(sub, t) {
		return true
	}
	return c.occursStrict(sub, t)
}

func (c *Comparator[T]) occursStrict(sub, t T) bool {
	n := c.info.Arity(t)
	for i := 0; i < n; i++ {
		if c.Occurs(sub, c.info.Argument(t, i)) {
			return true
		}
	}
	return false
}

// SortTerms sorts ts in place by CompareTerm. CompareTerm is not
// transitive, so the result is a best-effort order that may depend on the
// input order when ts contains a cycle.
func (c *Comparator[T]) SortTerms(ts []T) {
	sort.SliceStable(ts, func(i, j int) bool {
		return c.CompareTerm(ts[i], ts[j]) == Smaller
	})
}

// SortGuards sorts gs in place by CompareGuard. Like SortTerms it is a
// best-effort order.
func (c *Comparator[T]) SortGuards(gs []T) {
	sort.SliceStable(gs, func(i, j int) bool {
		return c.CompareGuard(gs[i], gs[j]) == Smaller
	})
}

func (c *Comparator[T]) compareAddress(t1, t2 T) Ordering {
	return compareUint(c.info.Address(t1), c.info.Address(t2))
}

func (c *Comparator[T]) compareTermOccurs(t1, t2 T) Ordering {
	if c.occursStrict(t1, t2) {
		return Smaller
	}
	if c.occursStrict(t2, t1) {
		return Bigger
	}
	return Equal
}

func (c *Comparator[T]) compareTermType(t1, t2 T) Ordering {
	v1, v2 := c.info.IsVariable(t1), c.info.IsVariable(t2)
	if v1 && !v2 {
		return Bigger
	}
	if !v1 && v2 {
		return Smaller
	}
	return Equal
}

func (c *Comparator[T]) compareGuardStructure(g1, g2 T) Ordering {
	s1, s2 := c.GuardStructure(g1), c.GuardStructure(g2)
	if s1 < s2 {
		return Smaller
	}
	if s1 > s2 {
		return Bigger
	}
	return Equal
}

func (c *Comparator[T]) compareGuardEquality(g1, g2 T) Ordering {
	if !c.full || !c.info.IsEquality(g1) || !c.info.IsEquality(g2) {
		return Equal
	}
	g1a0, g1a1 := c.info.Argument(g1, 0), c.info.Argument(g1, 1)
	g2a0, g2a1 := c.info.Argument(g2, 0), c.info.Argument(g2, 1)
	if c.reverse {
		return Lexico(c.CompareTerm(g1a1, g2a1), c.CompareTerm(g1a0, g2a0))
	}
	return Lexico(c.CompareTerm(g1a0, g2a0), c.CompareTerm(g1a1, g2a1))
}
