// Package expr holds the symbolic values produced by coefficient
// substitution: sums of signed, integer-weighted products of opaque symbol
// names.
//
// Scalars never become numbers. "x1*x2 + y1*y2" is a two-term Expr whose
// factors are the strings "x1", "x2", "y1", "y2". Like terms (same multiset
// of factors) are collected as they are added, so cancelling terms vanish and
// repeated terms gain an integer coefficient.
//
// Term order is the order of first appearance, which makes rendering
// deterministic for a deterministic sequence of operations.
package expr
