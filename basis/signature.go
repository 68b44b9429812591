// SPDX-License-Identifier: MIT

package basis

import "fmt"

// Supported dimension bounds (total generator count).
const (
	MinDim = 2
	MaxDim = 4
)

// Signature counts the generators squaring to +1 (P), -1 (N) and 0 (Z).
type Signature struct {
	P int `yaml:"p"`
	N int `yaml:"n"`
	Z int `yaml:"z"`
}

// Dim returns the total number of generators.
func (s Signature) Dim() int { return s.P + s.N + s.Z }

// Degenerate reports whether the algebra carries a null generator.
func (s Signature) Degenerate() bool { return s.Z > 0 }

// Validate checks the signature against the supported configurations.
// Complexity: O(1).
func (s Signature) Validate() error {
	if s.P < 0 || s.N < 0 || s.Z < 0 {
		return basisErrorf("Validate", "negative count in %s: %w", s, ErrInvalidSignature)
	}
	if d := s.Dim(); d < MinDim || d > MaxDim {
		return basisErrorf("Validate", "dimension %d of %s not in [%d,%d]: %w",
			d, s, MinDim, MaxDim, ErrInvalidSignature)
	}
	if s.N != 0 {
		return basisErrorf("Validate", "negative-square generators unsupported in %s: %w", s, ErrInvalidSignature)
	}
	if s.Z > 1 {
		return basisErrorf("Validate", "at most one null generator, got %s: %w", s, ErrInvalidSignature)
	}

	return nil
}

// Square returns e_g^2 for the 0-based generator g: +1 for the first P
// generators, -1 for the next N, 0 for the trailing Z.
// Complexity: O(1).
func (s Signature) Square(g int) int {
	switch {
	case g < s.P:
		return 1
	case g < s.P+s.N:
		return -1
	default:
		return 0
	}
}

// NullMask returns the bit mask of the null generators.
func (s Signature) NullMask() uint {
	var m uint
	for g := s.P + s.N; g < s.Dim(); g++ {
		m |= 1 << uint(g)
	}

	return m
}

// String renders the signature as "(P,N,Z)".
func (s Signature) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.P, s.N, s.Z)
}
