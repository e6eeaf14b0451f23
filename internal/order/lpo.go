package order

// The recursive path ordering. lpo1 and its helpers are mutually
// recursive and pure; the order in which alternatives are tried only
// affects how early a scan stops.

func (c *Comparator[T]) lpo1(t1, t2 T) bool {
	v1, v2 := c.info.IsVariable(t1), c.info.IsVariable(t2)
	switch {
	case v1 && v2:
		return c.compareAddress(t1, t2) == Bigger
	case v1:
		// a bare variable never exceeds a compound term
		return false
	case v2:
		return c.delta1(t1, t2)
	}
	return c.alpha1(t1, t2) || c.beta1(t1, t2) || c.gamma1(t1, t2)
}

// alpha1: some argument of t1 is t2 or lpo-greater than t2.
func (c *Comparator[T]) alpha1(t1, t2 T) bool {
	n := c.info.Arity(t1)
	for i := 0; i < n; i++ {
		arg := c.info.Argument(t1, i)
		if c.info.Same(arg, t2) || c.lpo1(arg, t2) {
			return true
		}
	}
	return false
}

// beta1: the head of t1 is bigger than the head of t2 and t1 majorizes t2.
func (c *Comparator[T]) beta1(t1, t2 T) bool {
	return c.info.Operator(t1) > c.info.Operator(t2) && c.majo1(t1, t2)
}

// gamma1: same head, t1 is lexicographically bigger on the arguments and
// t1 majorizes t2.
func (c *Comparator[T]) gamma1(t1, t2 T) bool {
	return c.info.Operator(t1) == c.info.Operator(t2) && c.lex1(t1, t2) && c.majo1(t1, t2)
}

// delta1: t2 occurs in t1.
func (c *Comparator[T]) delta1(t1, t2 T) bool {
	return c.Occurs(t2, t1)
}

// majo1: t1 is lpo-greater than every argument of t2.
func (c *Comparator[T]) majo1(t1, t2 T) bool {
	n := c.info.Arity(t2)
	for i := 0; i < n; i++ {
		if !c.lpo1(t1, c.info.Argument(t2, i)) {
			return false
		}
	}
	return true
}

// lex1: at the first position where the arguments differ, the argument of
// t1 is lpo-greater. t1 and t2 share their head, so their arities agree.
func (c *Comparator[T]) lex1(t1, t2 T) bool {
	n := c.info.Arity(t1)
	for i := 0; i < n; i++ {
		a1, a2 := c.info.Argument(t1, i), c.info.Argument(t2, i)
		if c.info.Same(a1, a2) {
			continue
		}
		return c.lpo1(a1, a2)
	}
	return false
}
