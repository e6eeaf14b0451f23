// Package term provides sorted first-order terms, equations and
// specifications. Terms built by one Factory are hash-consed: structurally
// equal terms are the same pointer.
package term
