// Package order implements the term and guard orderings a BDD-based prover
// uses to decide which guard to case-split on next.
//
// All comparisons work directly on a rewriter's internal term encoding
// through an Introspector, so terms never need to be converted back to
// their semantic form while being ordered.
//
// Key components:
//
// Comparator: three-way comparison of terms (CompareTerm) and guards
// (CompareGuard), the structural class of a guard (GuardStructure) and
// the recursive path ordering (LPOGreater). Its two flags change how
// equality guards are compared:
//
//   - full: equalities of the same class are compared on their arguments
//     before falling back to identity.
//   - reverse: with full set, the second arguments decide first.
//
// Ordering and Lexico: the result type of three-way comparisons and its
// lexicographic combination.
//
// GuardClass: variables first, then equalities of two variables, then
// other equalities, then everything else.
//
// Ties left by the structural criteria are broken by the session identity
// of a term, which is stable for the lifetime of the backend that created
// it but not across runs.
//
// CompareTerm and CompareGuard are total and antisymmetric but not
// transitive. With y created before x, CompareTerm gives x < f(x) (strict
// subterm), f(x) < y (non-variable before variable) and y < x (identity).
// SortTerms and SortGuards therefore produce a best-effort order.
package order
