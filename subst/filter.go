// SPDX-License-Identifier: MIT

package subst

import (
	"fmt"
	"strings"
)

// Filter is a named set of admissible grades.
type Filter struct {
	Name   string
	Grades []int
}

// Admits reports whether grade g belongs to the filter.
func (f Filter) Admits(g int) bool {
	for _, k := range f.Grades {
		if k == g {
			return true
		}
	}

	return false
}

// Check fails with ErrKindMismatch when v has support outside f. The zero
// vector passes every filter.
func (f Filter) Check(v Vector) error {
	for _, g := range v.Grades() {
		if !f.Admits(g) {
			return fmt.Errorf("%s carries grade %d outside %s: %w", v.Name(), g, f, ErrKindMismatch)
		}
	}

	return nil
}

// Select masks v with f and fails with ErrKindMismatch when nothing is left.
func (f Filter) Select(v Vector) (Vector, error) {
	m := v.Masked(f)
	if m.IsZero() {
		return Vector{}, fmt.Errorf("%s has no coefficients in %s: %w", v.Name(), f, ErrKindMismatch)
	}

	return m, nil
}

// String renders "vec[1]".
func (f Filter) String() string {
	parts := make([]string, len(f.Grades))
	for i, g := range f.Grades {
		parts[i] = fmt.Sprint(g)
	}

	return f.Name + "[" + strings.Join(parts, ",") + "]"
}

// DefaultFilters returns the standard grade filters of a dim-generator
// algebra: s, vec, bivec, trivec (dim >= 3), ps, mv_e, mv_u and mv.
func DefaultFilters(dim int) []Filter {
	var even, odd, all []int
	for g := 0; g <= dim; g++ {
		all = append(all, g)
		if g%2 == 0 {
			even = append(even, g)
		} else {
			odd = append(odd, g)
		}
	}
	out := []Filter{
		{Name: "s", Grades: []int{0}},
		{Name: "vec", Grades: []int{1}},
		{Name: "bivec", Grades: []int{2}},
	}
	if dim >= 3 {
		out = append(out, Filter{Name: "trivec", Grades: []int{3}})
	}
	out = append(out,
		Filter{Name: "ps", Grades: []int{dim}},
		Filter{Name: "mv_e", Grades: even},
		Filter{Name: "mv_u", Grades: odd},
		Filter{Name: "mv", Grades: all},
	)

	return out
}
