package term

import (
	"strconv"
	"strings"
)

// Equation is a rewrite equation lhs = rhs, applicable when Condition
// holds. A nil Condition means true.
type Equation struct {
	Vars      []*Variable
	Condition *Term
	LHS       *Term
	RHS       *Term
}

// Key identifies the equation structurally. Equations over the same
// Factory with equal keys are duplicates.
func (e Equation) Key() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(e.LHS.ID(), 10))
	sb.WriteByte('=')
	sb.WriteString(strconv.FormatUint(e.RHS.ID(), 10))
	if e.Condition != nil {
		sb.WriteByte('|')
		sb.WriteString(strconv.FormatUint(e.Condition.ID(), 10))
	}
	return sb.String()
}

func (e Equation) String() string {
	if e.Condition == nil {
		return e.LHS.String() + " = " + e.RHS.String()
	}
	return e.Condition.String() + " -> " + e.LHS.String() + " = " + e.RHS.String()
}
