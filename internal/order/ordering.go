package order

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Smaller Ordering = iota - 1
	Equal
	Bigger
)

func (o Ordering) String() string {
	switch o {
	case Smaller:
		return "smaller"
	case Equal:
		return "equal"
	case Bigger:
		return "bigger"
	default:
		return "?"
	}
}

// Inverse swaps Smaller and Bigger.
func (o Ordering) Inverse() Ordering {
	return -o
}

// Lexico returns r1 unless it is Equal, in which case it returns r2.
func Lexico(r1, r2 Ordering) Ordering {
	if r1 != Equal {
		return r1
	}
	return r2
}

func compareUint(a, b uint64) Ordering {
	switch {
	case a < b:
		return Smaller
	case a > b:
		return Bigger
	}
	return Equal
}

// GuardClass is the structural class of a guard. Classes are ordered
// from simplest to most complex.
type GuardClass int

const (
	// ClassVariable is a guard that is a single variable.
	ClassVariable GuardClass = iota
	// ClassVariableEquality is an equality of two variables.
	ClassVariableEquality
	// ClassEquality is an equality with at least one non-variable operand.
	ClassEquality
	// ClassOther is any other guard.
	ClassOther
)

func (c GuardClass) String() string {
	switch c {
	case ClassVariable:
		return "variable"
	case ClassVariableEquality:
		return "variable-equality"
	case ClassEquality:
		return "equality"
	case ClassOther:
		return "other"
	default:
		return "?"
	}
}
