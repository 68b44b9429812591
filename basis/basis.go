// SPDX-License-Identifier: MIT

package basis

import "fmt"

// Basis holds the blades of one algebra in display order.
// It is immutable after New and safe for concurrent reads.
type Basis struct {
	sig    Signature
	blades []Blade
	byMask []int          // mask → blade index
	byName map[string]int // display name → blade index
}

// New validates sig and builds its 2^dim blades.
// Stage 1 (Validate): signature, then every name, then coverage of all masks.
// Stage 2 (Execute): record orientation and grade per blade.
// Complexity: O(2^dim * dim^2).
func New(sig Signature, opts ...Option) (*Basis, error) {
	if err := sig.Validate(); err != nil {
		return nil, fmt.Errorf("basis.New: %w", err)
	}
	cfg := newBasisConfig(opts...)
	dim := sig.Dim()
	size := 1 << uint(dim)
	names := cfg.names
	if names == nil {
		names = defaultNames(dim)
	}
	if len(names) != size {
		return nil, basisErrorf("New", "%d names for %d blades: %w", len(names), size, ErrIncompleteBasis)
	}

	b := &Basis{
		sig:    sig,
		blades: make([]Blade, size),
		byMask: make([]int, size),
		byName: make(map[string]int, size),
	}
	for m := range b.byMask {
		b.byMask[m] = -1
	}
	for i, name := range names {
		gens, err := parseBladeName(name, dim)
		if err != nil {
			return nil, fmt.Errorf("basis.New: %w", err)
		}
		mask := maskOf(gens)
		if prev := b.byMask[mask]; prev >= 0 {
			return nil, basisErrorf("New", "%q and %q: %w", names[prev], name, ErrDuplicateBlade)
		}
		b.byMask[mask] = i
		b.byName[name] = i
		b.blades[i] = Blade{
			Index:       i,
			Name:        name,
			Gens:        gens,
			Mask:        mask,
			Grade:       len(gens),
			Orientation: permutationSign(gens),
		}
	}

	return b, nil
}

// Signature returns the algebra signature.
func (b *Basis) Signature() Signature { return b.sig }

// Dim returns the number of generators.
func (b *Basis) Dim() int { return b.sig.Dim() }

// Len returns the number of blades, 2^Dim.
func (b *Basis) Len() int { return len(b.blades) }

// Blade returns the blade at index i, or ErrOutOfRange.
func (b *Basis) Blade(i int) (Blade, error) {
	if i < 0 || i >= len(b.blades) {
		return Blade{}, basisErrorf("Blade", "%d: %w", i, ErrOutOfRange)
	}

	return b.blades[i], nil
}

// MustBlade returns the blade at index i and panics when i is out of range.
// Intended for loops over [0, Len()).
func (b *Basis) MustBlade(i int) Blade {
	blade, err := b.Blade(i)
	if err != nil {
		panic(err)
	}

	return blade
}

// Blades returns a copy of all blades in display order.
func (b *Basis) Blades() []Blade {
	out := make([]Blade, len(b.blades))
	copy(out, b.blades)

	return out
}

// Index looks a blade up by display name.
func (b *Basis) Index(name string) (int, bool) {
	i, ok := b.byName[name]

	return i, ok
}

// Name returns the display name of blade i ("?" when out of range).
func (b *Basis) Name(i int) string {
	if i < 0 || i >= len(b.blades) {
		return "?"
	}

	return b.blades[i].Name
}

// ByMask returns the index of the blade covering mask.
func (b *Basis) ByMask(mask uint) int { return b.byMask[mask] }

// Scalar returns the index of the grade-0 blade.
func (b *Basis) Scalar() int { return b.byMask[0] }

// Pseudoscalar returns the index of the top-grade blade.
func (b *Basis) Pseudoscalar() int { return b.byMask[len(b.byMask)-1] }

// Names returns the display names in basis order.
func (b *Basis) Names() []string {
	out := make([]string, len(b.blades))
	for i, bl := range b.blades {
		out[i] = bl.Name
	}

	return out
}

// Grades returns the distinct grades 0..Dim.
func (b *Basis) Grades() []int {
	out := make([]int, b.Dim()+1)
	for g := range out {
		out[g] = g
	}

	return out
}
