// SPDX-License-Identifier: MIT
// Package: ga/rules
//
// complement.go - complements, bulk/weight projections and duals.
//
// Design contract (strict):
//   - Complements are solved from the wedge table against the configured
//     pseudoscalar: A ^ rcmpl(A) = +I and lcmpl(A) ^ A = +I.
//   - lcmpl(rcmpl(A)) = rcmpl(lcmpl(A)) = A on every blade.
//   - Bulk and weight split the basis by the null generator; their duals
//     exist for degenerate signatures only (ErrNotDegenerate otherwise).

package rules

import (
	"fmt"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
)

// RightComplement solves A ∧ rcmpl(A) = +I for every blade A using the wedge
// table: the only candidate is the blade over the complementary generator
// mask, and the wedge sign fixes the complement's sign.
// Complexity: O(n).
func RightComplement(wdg *Table) (*Unary, error) {
	return complement("rcmpl", wdg, func(a, x int) SignedBlade { return wdg.at(a, x) })
}

// LeftComplement solves lcmpl(A) ∧ A = +I for every blade A.
// Complexity: O(n).
func LeftComplement(wdg *Table) (*Unary, error) {
	return complement("lcmpl", wdg, func(a, x int) SignedBlade { return wdg.at(x, a) })
}

func complement(name string, wdg *Table, wedge func(a, x int) SignedBlade) (*Unary, error) {
	b := wdg.basis
	full := uint(b.Len() - 1)
	ps := b.Pseudoscalar()

	var err error
	u := NewUnary(name, b, func(a int) SignedBlade {
		x := b.ByMask(full &^ b.MustBlade(a).Mask)
		e := wedge(a, x)
		if e.IsZero() || e.Blade != ps {
			if err == nil {
				err = fmt.Errorf("%s(%s): %w", name, b.Name(a), ErrNoComplement)
			}
			return zero
		}
		// A ∧ X = s·I  ⇒  A ∧ (s·X) = I.
		return SignedBlade{Blade: x, Sign: e.Sign}
	})
	if err != nil {
		return nil, err
	}

	return u, nil
}

// Bulk projects onto the blades free of null generators (identity on the
// bulk, zero on everything touching a null direction).
func Bulk(b *basis.Basis) *Unary {
	null := b.Signature().NullMask()

	return NewUnary("bulk", b, func(i int) SignedBlade {
		if b.MustBlade(i).Mask&null != 0 {
			return zero
		}
		return SignedBlade{Blade: i, Sign: 1}
	})
}

// Weight projects onto the blades containing a null generator.
func Weight(b *basis.Basis) *Unary {
	null := b.Signature().NullMask()

	return NewUnary("weight", b, func(i int) SignedBlade {
		if b.MustBlade(i).Mask&null == 0 {
			return zero
		}
		return SignedBlade{Blade: i, Sign: 1}
	})
}

// Duals groups the right and left variant of one duality.
type Duals struct {
	Right *Unary
	Left  *Unary
}

// BulkDuals returns rbulk_dual = rcmpl∘bulk and lbulk_dual = lcmpl∘bulk.
// Only degenerate algebras carry them; otherwise ErrNotDegenerate.
// Complexity: O(n).
func BulkDuals(rc, lc *Unary) (Duals, error) {
	return duals("bulk_dual", Bulk, rc, lc)
}

// WeightDuals returns rweight_dual = rcmpl∘weight and lweight_dual = lcmpl∘weight.
// Only degenerate algebras carry them; otherwise ErrNotDegenerate.
// Complexity: O(n).
func WeightDuals(rc, lc *Unary) (Duals, error) {
	return duals("weight_dual", Weight, rc, lc)
}

func duals(name string, project func(*basis.Basis) *Unary, rc, lc *Unary) (Duals, error) {
	if rc.basis != lc.basis {
		return Duals{}, rulesErrorf("duals", ErrBasisMismatch)
	}
	if !rc.basis.Signature().Degenerate() {
		return Duals{}, fmt.Errorf("%s for %s: %w", name, rc.basis.Signature(), ErrNotDegenerate)
	}
	p := project(rc.basis)
	right, err := p.Then(rc)
	if err != nil {
		return Duals{}, err
	}
	left, err := p.Then(lc)
	if err != nil {
		return Duals{}, err
	}
	right.name, left.name = "r"+name, "l"+name

	return Duals{Right: right, Left: left}, nil
}
