// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
)

// Unary maps every blade of one basis to a SignedBlade. Complements, duals,
// bulk/weight projections and (regressive) reversion are all Unary tables.
type Unary struct {
	name  string
	basis *basis.Basis
	cells []SignedBlade
}

// NewUnary evaluates fill once per blade.
// Complexity: O(n) calls to fill.
func NewUnary(name string, b *basis.Basis, fill func(i int) SignedBlade) *Unary {
	u := &Unary{name: name, basis: b, cells: make([]SignedBlade, b.Len())}
	for i := range u.cells {
		u.cells[i] = normalize(fill(i))
	}

	return u
}

// Identity maps every blade to itself with sign +1.
func Identity(b *basis.Basis) *Unary {
	return NewUnary("id", b, func(i int) SignedBlade { return SignedBlade{Blade: i, Sign: 1} })
}

// Name returns the table key ("rcmpl", "lbulk_dual", ...).
func (u *Unary) Name() string { return u.name }

// Basis returns the basis the table is indexed by.
func (u *Unary) Basis() *basis.Basis { return u.basis }

// Len returns the number of blades.
func (u *Unary) Len() int { return len(u.cells) }

// At returns the image of blade i.
func (u *Unary) At(i int) (SignedBlade, error) {
	if i < 0 || i >= len(u.cells) {
		return zero, fmt.Errorf("Unary.At(%d): %w", i, ErrOutOfRange)
	}

	return u.cells[i], nil
}

// Apply maps a signed blade through the table; zero stays zero.
func (u *Unary) Apply(s SignedBlade) SignedBlade {
	if s.IsZero() {
		return zero
	}

	return u.cells[s.Blade].Scale(s.Sign)
}

// Then returns the composition "u, then next": (u.Then(next))(x) = next(u(x)).
// Both tables must share a basis.
// Complexity: O(n).
func (u *Unary) Then(next *Unary) (*Unary, error) {
	if u.basis != next.basis {
		return nil, rulesErrorf("Unary.Then", ErrBasisMismatch)
	}

	return NewUnary(u.name+"|"+next.name, u.basis, func(i int) SignedBlade {
		return next.Apply(u.cells[i])
	}), nil
}

// Equal reports whether both tables map every blade identically.
func (u *Unary) Equal(o *Unary) bool {
	if u.basis != o.basis || len(u.cells) != len(o.cells) {
		return false
	}
	for i := range u.cells {
		if u.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// Labels returns "name -> image" display pairs in basis order.
func (u *Unary) Labels() [][2]string {
	out := make([][2]string, len(u.cells))
	for i, c := range u.cells {
		out[i] = [2]string{u.basis.Name(i), c.Label(u.basis)}
	}

	return out
}

// gradeSign builds a grade-diagonal table: blade i maps to itself with the
// sign returned by f(grade, dim).
func gradeSign(name string, b *basis.Basis, f func(k, n int) int) *Unary {
	n := b.Dim()

	return NewUnary(name, b, func(i int) SignedBlade {
		return SignedBlade{Blade: i, Sign: f(b.MustBlade(i).Grade, n)}
	})
}

func parity(m int) int {
	if m%2 == 0 {
		return 1
	}

	return -1
}

// Reverse is reversion: (-1)^(k(k-1)/2) on grade k.
func Reverse(b *basis.Basis) *Unary {
	return gradeSign("rev", b, func(k, _ int) int { return parity(k * (k - 1) / 2) })
}

// RegressiveReverse is the regressive (anti-)reversion:
// (-1)^((n-k)(n-k-1)/2) on grade k of an n-dimensional algebra.
func RegressiveReverse(b *basis.Basis) *Unary {
	return gradeSign("rrev", b, func(k, n int) int { return parity((n - k) * (n - k - 1) / 2) })
}

// Involution is grade involution: (-1)^k on grade k.
func Involution(b *basis.Basis) *Unary {
	return gradeSign("gr_inv", b, func(k, _ int) int { return parity(k) })
}
