package rewrite

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/guardorder/internal/term"
)

// Substitution binds a variable to a value in the internal encoding for
// the duration of one Normalize or Rewrite call.
type Substitution[T any] struct {
	Variable *term.Variable
	Value    T
}

// Rewriter reduces terms to normal form under a mutable set of equations.
// Its strategy, and with it the internal encoding T, is fixed at
// construction. A Rewriter is not safe for concurrent mutation.
type Rewriter[T any] struct {
	strategy Strategy
	factory  *term.Factory
	codec    Codec[T]
	rules    *RuleSet
	engine   *engine[T]
	logger   *zap.Logger
}

// New creates a rewriter for spec using codec as internal encoding. The
// equations of spec are added as initial rules; rejected equations are
// logged and skipped.
func New[T any](spec *term.Specification, strategy Strategy, codec Codec[T], logger *zap.Logger) (*Rewriter[T], error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Rewriter[T]{
		strategy: strategy,
		factory:  spec.Factory,
		codec:    codec,
		rules:    NewRuleSet(),
		engine:   newEngine(codec, strategy, spec.Factory),
		logger:   logger,
	}
	for _, eq := range spec.Equations {
		r.AddRule(eq)
	}

	logger.Debug("rewriter created",
		zap.Stringer("strategy", strategy),
		zap.Int("rules", r.rules.Len()),
	)
	return r, nil
}

// Strategy returns the strategy r was built with.
func (r *Rewriter[T]) Strategy() Strategy { return r.strategy }

// Factory returns the session the rewriter builds semantic terms in.
func (r *Rewriter[T]) Factory() *term.Factory { return r.factory }

// Rules returns the current equations in insertion order.
func (r *Rewriter[T]) Rules() []term.Equation { return r.rules.Equations() }

// Normalize returns the normal form of t. The substitutions apply to this
// call only.
func (r *Rewriter[T]) Normalize(t *term.Term, subs ...Substitution[T]) *term.Term {
	return r.codec.FromRewriteFormat(r.Rewrite(r.codec.ToRewriteFormat(t), subs...))
}

// Rewrite is Normalize on the internal encoding.
func (r *Rewriter[T]) Rewrite(e T, subs ...Substitution[T]) T {
	if len(subs) > 0 {
		sigma := make(binding[T], len(subs))
		for _, s := range subs {
			sigma[s.Variable] = s.Value
		}
		e = r.engine.instantiate(e, sigma)
	}
	return r.engine.normalize(e)
}

// MakeSubstitution binds v to e, converting e to the internal encoding.
func (r *Rewriter[T]) MakeSubstitution(v *term.Variable, e *term.Term) Substitution[T] {
	return Substitution[T]{Variable: v, Value: r.codec.ToRewriteFormat(e)}
}

// AddRule adds eq to the rule set. It returns false, without error, when
// eq is a duplicate or cannot be used as a rewrite rule.
func (r *Rewriter[T]) AddRule(eq term.Equation) bool {
	if err := r.rules.Add(eq); err != nil {
		if errors.Is(err, ErrDuplicateRule) {
			r.logger.Debug("rule already present", zap.Stringer("equation", eq))
		} else {
			r.logger.Warn("rule rejected", zap.Stringer("equation", eq), zap.Error(err))
		}
		return false
	}
	r.engine.add(eq)
	r.logger.Debug("rule added", zap.Stringer("equation", eq))
	return true
}

// RemoveRule removes eq if present.
func (r *Rewriter[T]) RemoveRule(eq term.Equation) {
	if !r.rules.Remove(eq) {
		return
	}
	r.engine.remove(eq.Key())
	r.logger.Debug("rule removed", zap.Stringer("equation", eq))
}

// ToRewriteFormat converts t to the internal encoding.
func (r *Rewriter[T]) ToRewriteFormat(t *term.Term) T { return r.codec.ToRewriteFormat(t) }

// FromRewriteFormat converts e back to a semantic term.
func (r *Rewriter[T]) FromRewriteFormat(e T) *term.Term { return r.codec.FromRewriteFormat(e) }
