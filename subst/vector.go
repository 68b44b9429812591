// SPDX-License-Identifier: MIT

package subst

import (
	"fmt"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
	"github.com/Daniel-G-W-Hug/ga-sub006/expr"
	"github.com/Daniel-G-W-Hug/ga-sub006/rules"
)

// Vector is a named coefficient vector: one expression per basis blade,
// the zero expression marking an absent coefficient. Vectors are values;
// every method returns a new Vector.
type Vector struct {
	name   string
	basis  *basis.Basis
	coeffs []expr.Expr
}

// NewVector wraps coeffs (one per blade, in basis order).
func NewVector(name string, b *basis.Basis, coeffs []expr.Expr) (Vector, error) {
	if len(coeffs) != b.Len() {
		return Vector{}, fmt.Errorf("NewVector(%q): %d coefficients for %d blades: %w",
			name, len(coeffs), b.Len(), ErrLengthMismatch)
	}

	return Vector{name: name, basis: b, coeffs: append([]expr.Expr(nil), coeffs...)}, nil
}

// ParseVector builds a vector from coefficient literals (see expr.Parse).
func ParseVector(name string, b *basis.Basis, literals []string) (Vector, error) {
	if len(literals) != b.Len() {
		return Vector{}, fmt.Errorf("ParseVector(%q): %d coefficients for %d blades: %w",
			name, len(literals), b.Len(), ErrLengthMismatch)
	}
	coeffs := make([]expr.Expr, len(literals))
	for i, lit := range literals {
		e, err := expr.Parse(lit)
		if err != nil {
			return Vector{}, fmt.Errorf("ParseVector(%q)[%s]: %w", name, b.Name(i), err)
		}
		coeffs[i] = e
	}

	return Vector{name: name, basis: b, coeffs: coeffs}, nil
}

// Name returns the vector's key.
func (v Vector) Name() string { return v.name }

// Basis returns the basis the coefficients are indexed by.
func (v Vector) Basis() *basis.Basis { return v.basis }

// Len returns the number of coefficients (== number of blades).
func (v Vector) Len() int { return len(v.coeffs) }

// Coeff returns the coefficient of blade i; out-of-range indices read as zero.
func (v Vector) Coeff(i int) expr.Expr {
	if i < 0 || i >= len(v.coeffs) {
		return expr.Zero()
	}

	return v.coeffs[i]
}

// Support lists the blades with a nonzero coefficient, in basis order.
func (v Vector) Support() []int {
	out := make([]int, 0, len(v.coeffs))
	for i, c := range v.coeffs {
		if !c.IsZero() {
			out = append(out, i)
		}
	}

	return out
}

// IsZero reports an empty support.
func (v Vector) IsZero() bool { return len(v.Support()) == 0 }

// Grades lists the distinct grades of the support in ascending order.
func (v Vector) Grades() []int {
	seen := make([]bool, v.basis.Dim()+1)
	for _, i := range v.Support() {
		seen[v.basis.MustBlade(i).Grade] = true
	}
	out := make([]int, 0, len(seen))
	for g, ok := range seen {
		if ok {
			out = append(out, g)
		}
	}

	return out
}

// Masked drops every coefficient whose blade grade the filter excludes.
func (v Vector) Masked(f Filter) Vector {
	out := make([]expr.Expr, len(v.coeffs))
	for i, c := range v.coeffs {
		if f.Admits(v.basis.MustBlade(i).Grade) {
			out[i] = c
		}
	}

	return Vector{name: v.name, basis: v.basis, coeffs: out}
}

// Transform maps the vector through a unary table: the coefficient of blade
// i moves to u(i) with u's sign. Used for reversion of rotors.
func (v Vector) Transform(u *rules.Unary) (Vector, error) {
	if u.Basis() != v.basis {
		return Vector{}, fmt.Errorf("Vector.Transform(%s): %w", u.Name(), ErrBasisMismatch)
	}
	out := make([]expr.Expr, len(v.coeffs))
	for i, c := range v.coeffs {
		if c.IsZero() {
			continue
		}
		s := u.Apply(rules.SignedBlade{Blade: i, Sign: 1})
		if s.IsZero() {
			continue
		}
		out[s.Blade] = out[s.Blade].Add(c.Scale(s.Sign))
	}

	return Vector{name: v.name, basis: v.basis, coeffs: out}, nil
}

// Strings renders every coefficient ("0" for absent ones).
func (v Vector) Strings() []string {
	out := make([]string, len(v.coeffs))
	for i, c := range v.coeffs {
		out[i] = c.String()
	}

	return out
}
