// SPDX-License-Identifier: MIT

package rules

// Wedge derives the outer-product table: the geometric entry survives only
// when no generator was contracted, i.e. grade(A)+grade(B) == grade(result).
// Complexity: O(n^2).
func Wedge(gpr *Table) *Table {
	b := gpr.basis

	return NewTable("wdg", b, func(i, j int) SignedBlade {
		e := gpr.at(i, j)
		if e.IsZero() {
			return zero
		}
		if b.MustBlade(i).Grade+b.MustBlade(j).Grade != b.MustBlade(e.Blade).Grade {
			return zero
		}

		return e
	})
}

// Dot derives the inner-product table: equal-grade pairs contracting fully
// to the scalar. For basis blades that is the scalar part of the geometric
// entry.
// Complexity: O(n^2).
func Dot(gpr *Table) *Table {
	b := gpr.basis

	return NewTable("dot", b, func(i, j int) SignedBlade {
		if b.MustBlade(i).Grade != b.MustBlade(j).Grade {
			return zero
		}
		e := gpr.at(i, j)
		if e.IsZero() || e.Blade != b.Scalar() {
			return zero
		}

		return e
	})
}

// Commutator derives (AB - BA)/2 from the geometric table. For basis blades
// AB = ±BA on the same blade, so the entry is AB when the pair anticommutes
// and zero otherwise.
// Complexity: O(n^2).
func Commutator(gpr *Table) *Table {
	return NewTable("cmt", gpr.basis, func(i, j int) SignedBlade {
		ab, ba := gpr.at(i, j), gpr.at(j, i)
		if ab.IsZero() || ab.Sign != -ba.Sign {
			return zero
		}

		return ab
	})
}
