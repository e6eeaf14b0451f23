// Package rewrite normalizes terms under a mutable set of conditional
// equations. The strategy is fixed when a Rewriter is built; its family
// (innermost or jitty) decides the evaluation order and, through the
// backend packages innermost and jitty, the internal term encoding.
package rewrite
