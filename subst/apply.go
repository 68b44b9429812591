// SPDX-License-Identifier: MIT
// Package: ga/subst
//
// apply.go - substitution of coefficient vectors into rule tables.
//
// Design contract:
//   - Apply visits the left support outermost and the right support innermost,
//     so emitted terms keep the order lhs factor, rhs factor.
//   - Both operands and the table share one basis, else ErrBasisMismatch.
//   - Sandwich is two Apply passes: tmp = t(lhs, rhs), then t(tmp, rev(lhs)).
//     The intermediate is returned for display, named "<name>_tmp".

package subst

import (
	"fmt"

	"github.com/Daniel-G-W-Hug/ga-sub006/expr"
	"github.com/Daniel-G-W-Hug/ga-sub006/rules"
)

// Apply substitutes lhs and rhs into t and returns the per-blade result,
// named name.
// Stage 1 (Validate): all three share one basis.
// Stage 2 (Execute): left support outer, right support inner; every
// surviving pair adds sign·lhs[i]·rhs[j] to the output blade.
// Complexity: O(|supp(lhs)| * |supp(rhs)|) expression products.
func Apply(name string, t *rules.Table, lhs, rhs Vector) (Vector, error) {
	b := t.Basis()
	if lhs.basis != b || rhs.basis != b {
		return Vector{}, fmt.Errorf("Apply(%s, %s, %s): %w", t.Name(), lhs.name, rhs.name, ErrBasisMismatch)
	}
	out := make([]expr.Expr, b.Len())
	right := rhs.Support()
	for _, i := range lhs.Support() {
		for _, j := range right {
			e, err := t.At(i, j)
			if err != nil {
				return Vector{}, fmt.Errorf("Apply(%s): %w", t.Name(), err)
			}
			if e.IsZero() {
				continue
			}
			term := lhs.coeffs[i].Mul(rhs.coeffs[j]).Scale(e.Sign)
			out[e.Blade] = out[e.Blade].Add(term)
		}
	}

	return Vector{name: name, basis: b, coeffs: out}, nil
}

// Sandwich computes t(t(lhs, rhs), rev(lhs)): the first pass yields the
// intermediate vector (returned as well, named name+"_tmp"), which becomes
// the left operand of the second pass against the reversed rotor.
func Sandwich(name string, t *rules.Table, rev *rules.Unary, lhs, rhs Vector) (result, intermediate Vector, err error) {
	intermediate, err = Apply(name+"_tmp", t, lhs, rhs)
	if err != nil {
		return Vector{}, Vector{}, fmt.Errorf("Sandwich: %w", err)
	}
	reversed, err := lhs.Transform(rev)
	if err != nil {
		return Vector{}, Vector{}, fmt.Errorf("Sandwich: %w", err)
	}
	result, err = Apply(name, t, intermediate, reversed)
	if err != nil {
		return Vector{}, Vector{}, fmt.Errorf("Sandwich: %w", err)
	}

	return result, intermediate, nil
}
