// SPDX-License-Identifier: MIT

package basis

import (
	"math/bits"
	"strconv"
	"strings"
)

// ScalarName is the display name of the grade-0 blade.
const ScalarName = "1"

// Blade is one basis element of an algebra. It is immutable and owned by
// its Basis; other packages refer to blades by Index.
type Blade struct {
	Index       int    // position in the basis display order
	Name        string // configured display name, e.g. "e31"
	Gens        []int  // 0-based generators in name order, e.g. [2 0]
	Mask        uint   // bit g set for every generator g in Gens
	Grade       int    // popcount(Mask)
	Orientation int    // +1 if Gens is an even permutation of ascending order, else -1
}

// HasGenerators reports whether every generator in mask is part of the blade.
func (b Blade) HasGenerators(mask uint) bool { return b.Mask&mask == mask && mask != 0 }

// parseBladeName turns "1" or "e<digits>" into 0-based generator indices.
// Digits are 1-based generator numbers and must be distinct and <= dim.
// Complexity: O(len(name)^2) for the distinctness check, len <= MaxDim.
func parseBladeName(name string, dim int) ([]int, error) {
	if name == ScalarName {
		return []int{}, nil
	}
	if len(name) < 2 || name[0] != 'e' {
		return nil, basisErrorf("parseBladeName", "%q: %w", name, ErrBadBladeName)
	}
	digits := name[1:]
	if len(digits) > dim {
		return nil, basisErrorf("parseBladeName", "%q has more than %d generators: %w", name, dim, ErrBadBladeName)
	}
	gens := make([]int, 0, len(digits))
	var seen uint
	for _, r := range digits {
		if r < '1' || r > '9' {
			return nil, basisErrorf("parseBladeName", "%q: %w", name, ErrBadBladeName)
		}
		g := int(r-'1') // 1-based digit → 0-based generator
		if g >= dim {
			return nil, basisErrorf("parseBladeName", "%q references e%d beyond dim %d: %w", name, g+1, dim, ErrBadBladeName)
		}
		if seen&(1<<uint(g)) != 0 {
			return nil, basisErrorf("parseBladeName", "%q repeats e%d: %w", name, g+1, ErrBadBladeName)
		}
		seen |= 1 << uint(g)
		gens = append(gens, g)
	}

	return gens, nil
}

// permutationSign returns +1 when gens has an even number of inversions.
func permutationSign(gens []int) int {
	inv := 0
	for i := 0; i < len(gens); i++ {
		for j := i + 1; j < len(gens); j++ {
			if gens[i] > gens[j] {
				inv++
			}
		}
	}
	if inv%2 == 0 {
		return 1
	}

	return -1
}

func maskOf(gens []int) uint {
	var m uint
	for _, g := range gens {
		m |= 1 << uint(g)
	}

	return m
}

// CanonicalName renders a mask with ascending generator digits ("e13").
func CanonicalName(mask uint) string {
	if mask == 0 {
		return ScalarName
	}
	var sb strings.Builder
	sb.WriteByte('e')
	for g := 0; g < bits.UintSize; g++ {
		if mask&(1<<uint(g)) != 0 {
			sb.WriteString(strconv.Itoa(g + 1))
		}
	}

	return sb.String()
}

// defaultNames lists the canonical names of all blades of a dim-generator
// algebra ordered by grade, then by ascending generator combination.
// Complexity: O(2^dim * dim).
func defaultNames(dim int) []string {
	names := make([]string, 0, 1<<uint(dim))
	for grade := 0; grade <= dim; grade++ {
		var combos func(start int, acc []int)
		combos = func(start int, acc []int) {
			if len(acc) == grade {
				names = append(names, CanonicalName(maskOf(acc)))
				return
			}
			for g := start; g < dim; g++ {
				combos(g+1, append(acc, g))
			}
		}
		combos(0, nil)
	}

	return names
}
