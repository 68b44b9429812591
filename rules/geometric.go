// SPDX-License-Identifier: MIT

package rules

import "github.com/Daniel-G-W-Hug/ga-sub006/basis"

// Geometric builds the geometric-product table of b.
//
// For blades A and B the generator sequences (in name order) are
// concatenated and bubble-sorted; every transposition flips the sign. Equal
// neighbours are then merged and the sign is multiplied by that generator's
// square, so a null generator annihilates the product. The surviving mask is
// mapped back to its configured blade, whose orientation is folded into the
// sign.
// Complexity: O(n^2 * dim^2) for n = 2^dim blades.
func Geometric(b *basis.Basis) *Table {
	sig := b.Signature()

	return NewTable("gpr", b, func(i, j int) SignedBlade {
		return bladeProduct(sig, b, b.MustBlade(i), b.MustBlade(j))
	})
}

// bladeProduct computes A*B for two oriented basis blades.
func bladeProduct(sig basis.Signature, b *basis.Basis, a, c basis.Blade) SignedBlade {
	seq := make([]int, 0, len(a.Gens)+len(c.Gens))
	seq = append(seq, a.Gens...)
	seq = append(seq, c.Gens...)

	sign := 1
	// Bubble sort; each swap of neighbours anticommutes two generators.
	for end := len(seq) - 1; end > 0; end-- {
		for k := 0; k < end; k++ {
			if seq[k] > seq[k+1] {
				seq[k], seq[k+1] = seq[k+1], seq[k]
				sign = -sign
			}
		}
	}

	// Merge equal neighbours: e_g e_g = square(g).
	var mask uint
	for k := 0; k < len(seq); k++ {
		if k+1 < len(seq) && seq[k] == seq[k+1] {
			sign *= sig.Square(seq[k])
			if sign == 0 {
				return zero
			}
			k++
			continue
		}
		mask |= 1 << uint(seq[k])
	}

	idx := b.ByMask(mask)
	res := b.MustBlade(idx)

	return SignedBlade{Blade: idx, Sign: sign * res.Orientation}
}
