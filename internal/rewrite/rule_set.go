package rewrite

import (
	"fmt"

	"github.com/gnoswap-labs/guardorder/internal/term"
)

// RuleSet is the live collection of equations of a Rewriter. It makes no
// confluence or termination guarantee; that is up to whoever adds rules.
type RuleSet struct {
	keys []string
	eqs  map[string]term.Equation
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{eqs: make(map[string]term.Equation)}
}

// Add inserts eq. It fails with ErrDuplicateRule if an equal equation is
// present and with ErrInvalidRule if eq cannot serve as a rewrite rule.
func (rs *RuleSet) Add(eq term.Equation) error {
	if err := Validate(eq); err != nil {
		return err
	}
	key := eq.Key()
	if _, ok := rs.eqs[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, eq)
	}
	rs.eqs[key] = eq
	rs.keys = append(rs.keys, key)
	return nil
}

// Remove deletes eq and reports whether it was present.
func (rs *RuleSet) Remove(eq term.Equation) bool {
	key := eq.Key()
	if _, ok := rs.eqs[key]; !ok {
		return false
	}
	delete(rs.eqs, key)
	for i, k := range rs.keys {
		if k == key {
			rs.keys = append(rs.keys[:i], rs.keys[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether eq is in the set.
func (rs *RuleSet) Contains(eq term.Equation) bool {
	_, ok := rs.eqs[eq.Key()]
	return ok
}

// Len returns the number of equations.
func (rs *RuleSet) Len() int { return len(rs.keys) }

// Equations returns the equations in insertion order.
func (rs *RuleSet) Equations() []term.Equation {
	out := make([]term.Equation, len(rs.keys))
	for i, k := range rs.keys {
		out[i] = rs.eqs[k]
	}
	return out
}

// Validate checks that eq can be used left to right: its left side is not
// a variable, both sides have the same sort, the condition is Boolean, and
// every variable of the right side and condition occurs on the left.
func Validate(eq term.Equation) error {
	if eq.LHS == nil || eq.RHS == nil {
		return fmt.Errorf("%w: missing side", ErrInvalidRule)
	}
	if eq.LHS.IsVariable() {
		return fmt.Errorf("%w: left side %s is a variable", ErrInvalidRule, eq.LHS)
	}
	if eq.LHS.Sort() != eq.RHS.Sort() {
		return fmt.Errorf("%w: sides have sorts %s and %s", ErrInvalidRule, eq.LHS.Sort(), eq.RHS.Sort())
	}
	if eq.Condition != nil && eq.Condition.Sort() != term.Bool {
		return fmt.Errorf("%w: condition has sort %s", ErrInvalidRule, eq.Condition.Sort())
	}

	bound := make(map[*term.Variable]struct{})
	for _, v := range eq.LHS.Vars() {
		bound[v] = struct{}{}
	}
	for _, t := range []*term.Term{eq.RHS, eq.Condition} {
		if t == nil {
			continue
		}
		for _, v := range t.Vars() {
			if _, ok := bound[v]; !ok {
				return fmt.Errorf("%w: variable %s does not occur in the left side", ErrInvalidRule, v.Name)
			}
		}
	}
	return nil
}
