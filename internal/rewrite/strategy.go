package rewrite

import (
	"fmt"
	"strings"
)

// Strategy selects the rewriting backend. It is fixed when a Rewriter is
// built.
type Strategy int

const (
	Innermost Strategy = iota
	InnermostCompiling
	Jitty
	JittyCompiling
	InnermostProver
	InnermostCompilingProver
	JittyProver
	JittyCompilingProver
)

var strategyNames = map[Strategy]string{
	Innermost:                "innermost",
	InnermostCompiling:       "innermost_compiling",
	Jitty:                    "jitty",
	JittyCompiling:           "jitty_compiling",
	InnermostProver:          "innermost_with_prover",
	InnermostCompilingProver: "innermost_compiling_with_prover",
	JittyProver:              "jitty_with_prover",
	JittyCompilingProver:     "jitty_compiling_with_prover",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the strategy with the given name. Dashes are
// accepted in place of underscores.
func ParseStrategy(name string) (Strategy, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for s, n := range strategyNames {
		if n == norm {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategies returns all strategies in declaration order.
func Strategies() []Strategy {
	return []Strategy{
		Innermost, InnermostCompiling, Jitty, JittyCompiling,
		InnermostProver, InnermostCompilingProver, JittyProver, JittyCompilingProver,
	}
}

// Family groups strategies sharing an internal term encoding.
type Family int

const (
	FamilyInnermost Family = iota
	FamilyJitty
)

func (f Family) String() string {
	switch f {
	case FamilyInnermost:
		return "innermost"
	case FamilyJitty:
		return "jitty"
	default:
		return "?"
	}
}

// Family returns the encoding family of s.
func (s Strategy) Family() Family {
	switch s {
	case Jitty, JittyCompiling, JittyProver, JittyCompilingProver:
		return FamilyJitty
	}
	return FamilyInnermost
}

// Compiling reports whether s precompiles its rule index.
func (s Strategy) Compiling() bool {
	switch s {
	case InnermostCompiling, JittyCompiling, InnermostCompilingProver, JittyCompilingProver:
		return true
	}
	return false
}

// Prover reports whether s is prover assisted.
func (s Strategy) Prover() bool {
	switch s {
	case InnermostProver, InnermostCompilingProver, JittyProver, JittyCompilingProver:
		return true
	}
	return false
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}
