package prover

import (
	"fmt"
	"strings"

	"github.com/google/mangle/ast"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/guardorder/internal/order"
	"github.com/gnoswap-labs/guardorder/internal/rewrite"
	"github.com/gnoswap-labs/guardorder/internal/rewrite/innermost"
	"github.com/gnoswap-labs/guardorder/internal/rewrite/jitty"
	"github.com/gnoswap-labs/guardorder/internal/term"
)

// Assignment binds a variable to a value for one Normalize call.
type Assignment struct {
	Var   *term.Variable
	Value *term.Term
}

// NewAssignment checks that value has the sort of v.
func NewAssignment(v *term.Variable, value *term.Term) (Assignment, error) {
	if v == nil || value == nil {
		return Assignment{}, fmt.Errorf("%w: missing variable or value", ErrInvalidAssignment)
	}
	if value.Sort() != v.Sort {
		return Assignment{}, fmt.Errorf("%w: %s has sort %s, %s has sort %s",
			ErrInvalidAssignment, v.Name, v.Sort, value, value.Sort())
	}
	return Assignment{Var: v, Value: value}, nil
}

// ParseAssignment reads "name=term", where name is a variable declared in
// spec.
func ParseAssignment(spec *term.Specification, src string) (Assignment, error) {
	name, expr, ok := strings.Cut(src, "=")
	if !ok {
		return Assignment{}, fmt.Errorf("%w: %q is not of the form name=term", ErrInvalidAssignment, src)
	}
	name = strings.TrimSpace(name)

	var v *term.Variable
	for _, candidate := range spec.Variables {
		if candidate.Name == name {
			v = candidate
			break
		}
	}
	if v == nil {
		return Assignment{}, fmt.Errorf("%w: unknown variable %q", ErrInvalidAssignment, name)
	}

	value, err := spec.Parse(expr)
	if err != nil {
		return Assignment{}, fmt.Errorf("%w: %w", ErrInvalidAssignment, err)
	}
	return NewAssignment(v, value)
}

// Session is a rewriter and a comparator working on one internal
// encoding. All terms going in and out are semantic terms of the
// session's specification.
type Session interface {
	Strategy() rewrite.Strategy
	Specification() *term.Specification

	Normalize(t *term.Term, assignments ...Assignment) *term.Term
	AddRule(eq term.Equation) bool
	RemoveRule(eq term.Equation)
	Rules() []term.Equation

	SetFull(full bool)
	SetReverse(reverse bool)
	CompareTerm(t1, t2 *term.Term) order.Ordering
	CompareGuard(g1, g2 *term.Term) order.Ordering
	GuardClass(g *term.Term) order.GuardClass
	LPOGreater(t1, t2 *term.Term) bool
	// SortGuards returns gs in case-split order. gs is not modified.
	SortGuards(gs []*term.Term) []*term.Term
}

// New creates a session for spec. The strategy in config decides which
// backend family encodes terms internally.
func New(spec *term.Specification, config Config, logger *zap.Logger) (Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	strategy, err := rewrite.ParseStrategy(config.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var s Session
	switch strategy.Family() {
	case rewrite.FamilyJitty:
		rw, err := jitty.NewRewriter(spec, strategy, logger)
		if err != nil {
			return nil, err
		}
		s = newSession[*jitty.Term](spec, rw.Rewriter, jitty.NewInfo(rw))
	default:
		rw, err := innermost.NewRewriter(spec, strategy, logger)
		if err != nil {
			return nil, err
		}
		s = newSession[ast.BaseTerm](spec, rw.Rewriter, innermost.NewInfo(rw))
	}
	s.SetFull(config.Full)
	s.SetReverse(config.Reverse)

	logger.Info("session started",
		zap.Stringer("strategy", strategy),
		zap.Int("equations", len(spec.Equations)),
		zap.Bool("full", config.Full),
		zap.Bool("reverse", config.Reverse),
	)
	return s, nil
}

type session[T any] struct {
	spec *term.Specification
	rw   *rewrite.Rewriter[T]
	cmp  *order.Comparator[T]
}

func newSession[T any](spec *term.Specification, rw *rewrite.Rewriter[T], info order.Introspector[T]) *session[T] {
	return &session[T]{spec: spec, rw: rw, cmp: order.NewComparator(info)}
}

func (s *session[T]) Strategy() rewrite.Strategy { return s.rw.Strategy() }

func (s *session[T]) Specification() *term.Specification { return s.spec }

func (s *session[T]) Normalize(t *term.Term, assignments ...Assignment) *term.Term {
	subs := make([]rewrite.Substitution[T], len(assignments))
	for i, a := range assignments {
		subs[i] = s.rw.MakeSubstitution(a.Var, a.Value)
	}
	return s.rw.Normalize(t, subs...)
}

func (s *session[T]) AddRule(eq term.Equation) bool { return s.rw.AddRule(eq) }

func (s *session[T]) RemoveRule(eq term.Equation) { s.rw.RemoveRule(eq) }

func (s *session[T]) Rules() []term.Equation { return s.rw.Rules() }

func (s *session[T]) SetFull(full bool) { s.cmp.SetFull(full) }

func (s *session[T]) SetReverse(reverse bool) { s.cmp.SetReverse(reverse) }

func (s *session[T]) CompareTerm(t1, t2 *term.Term) order.Ordering {
	return s.cmp.CompareTerm(s.rw.ToRewriteFormat(t1), s.rw.ToRewriteFormat(t2))
}

func (s *session[T]) CompareGuard(g1, g2 *term.Term) order.Ordering {
	return s.cmp.CompareGuard(s.rw.ToRewriteFormat(g1), s.rw.ToRewriteFormat(g2))
}

func (s *session[T]) GuardClass(g *term.Term) order.GuardClass {
	return s.cmp.GuardStructure(s.rw.ToRewriteFormat(g))
}

func (s *session[T]) LPOGreater(t1, t2 *term.Term) bool {
	return s.cmp.LPOGreater(s.rw.ToRewriteFormat(t1), s.rw.ToRewriteFormat(t2))
}

func (s *session[T]) SortGuards(gs []*term.Term) []*term.Term {
	enc := make([]T, len(gs))
	for i, g := range gs {
		enc[i] = s.rw.ToRewriteFormat(g)
	}
	s.cmp.SortGuards(enc)
	out := make([]*term.Term, len(enc))
	for i, e := range enc {
		out[i] = s.rw.FromRewriteFormat(e)
	}
	return out
}
