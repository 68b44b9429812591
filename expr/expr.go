// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrBadSymbol indicates an unparsable coefficient literal.
var ErrBadSymbol = errors.New("expr: bad symbol")

// Term is Coeff * Factors[0] * Factors[1] * ...; the factor order is kept for
// display only, equality of terms ignores it.
type Term struct {
	Coeff   int
	Factors []string
}

// key identifies the factor multiset.
func (t Term) key() string {
	f := append([]string(nil), t.Factors...)
	sort.Strings(f)

	return strings.Join(f, "*")
}

// Expr is an immutable sum of terms. The zero value is the zero expression.
type Expr struct {
	terms []Term
}

// Zero returns the zero expression.
func Zero() Expr { return Expr{} }

// Const returns the constant k.
func Const(k int) Expr {
	if k == 0 {
		return Expr{}
	}

	return Expr{terms: []Term{{Coeff: k}}}
}

// Symbol returns the single-factor expression name.
func Symbol(name string) Expr {
	return Expr{terms: []Term{{Coeff: 1, Factors: []string{name}}}}
}

// Parse reads a coefficient literal: "", "0" or "_" (absent, zero, also
// accepted with a "-" prefix), a symbol name, or a symbol name prefixed
// with "-".
func Parse(s string) (Expr, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "0", "_":
		return Zero(), nil
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg, s = true, strings.TrimSpace(s[1:])
		if s == "0" || s == "_" {
			return Zero(), nil
		}
	}
	if s == "" || strings.ContainsAny(s, " +-*()") {
		return Zero(), fmt.Errorf("Parse(%q): %w", s, ErrBadSymbol)
	}
	e := Symbol(s)
	if neg {
		e = e.Neg()
	}

	return e, nil
}

// IsZero reports whether the expression has no terms.
func (e Expr) IsZero() bool { return len(e.terms) == 0 }

// Len returns the number of terms.
func (e Expr) Len() int { return len(e.terms) }

// Terms returns a copy of the terms.
func (e Expr) Terms() []Term {
	out := make([]Term, len(e.terms))
	for i, t := range e.terms {
		out[i] = Term{Coeff: t.Coeff, Factors: append([]string(nil), t.Factors...)}
	}

	return out
}

// Add returns e + o with like terms collected.
// Complexity: O(len(e) + len(o)) map operations.
func (e Expr) Add(o Expr) Expr {
	if o.IsZero() {
		return e
	}
	if e.IsZero() {
		return o
	}
	var acc accumulator
	for _, t := range e.terms {
		acc.add(t)
	}
	for _, t := range o.terms {
		acc.add(t)
	}

	return acc.expr()
}

// Neg returns -e.
func (e Expr) Neg() Expr { return e.Scale(-1) }

// Scale returns k*e.
func (e Expr) Scale(k int) Expr {
	if k == 0 || e.IsZero() {
		return Expr{}
	}
	out := make([]Term, len(e.terms))
	for i, t := range e.terms {
		out[i] = Term{Coeff: t.Coeff * k, Factors: t.Factors}
	}

	return Expr{terms: out}
}

// Mul returns e*o, distributing left terms over right terms (left outer)
// and collecting like terms.
// Complexity: O(len(e) * len(o)).
func (e Expr) Mul(o Expr) Expr {
	if e.IsZero() || o.IsZero() {
		return Expr{}
	}
	var acc accumulator
	for _, l := range e.terms {
		for _, r := range o.terms {
			f := make([]string, 0, len(l.Factors)+len(r.Factors))
			f = append(f, l.Factors...)
			f = append(f, r.Factors...)
			acc.add(Term{Coeff: l.Coeff * r.Coeff, Factors: f})
		}
	}

	return acc.expr()
}

// Equal reports whether both expressions hold the same terms in the same
// order with the same factor order.
func (e Expr) Equal(o Expr) bool { return e.String() == o.String() }

// String renders e as "a*b - 2*c*d"; the zero expression renders as "0".
func (e Expr) String() string {
	if e.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, t := range e.terms {
		c := t.Coeff
		switch {
		case i == 0 && c < 0:
			sb.WriteString("-")
		case i > 0 && c < 0:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		if c < 0 {
			c = -c
		}
		writeTerm(&sb, c, t.Factors)
	}

	return sb.String()
}

func writeTerm(sb *strings.Builder, c int, factors []string) {
	if len(factors) == 0 {
		sb.WriteString(strconv.Itoa(c))
		return
	}
	if c != 1 {
		sb.WriteString(strconv.Itoa(c))
		sb.WriteString("*")
	}
	sb.WriteString(strings.Join(factors, "*"))
}

// accumulator collects like terms in order of first appearance.
type accumulator struct {
	terms []Term
	index map[string]int
}

func (a *accumulator) add(t Term) {
	if t.Coeff == 0 {
		return
	}
	if a.index == nil {
		a.index = make(map[string]int)
	}
	k := t.key()
	if i, ok := a.index[k]; ok {
		a.terms[i].Coeff += t.Coeff
		return
	}
	a.index[k] = len(a.terms)
	a.terms = append(a.terms, Term{Coeff: t.Coeff, Factors: t.Factors})
}

// expr drops cancelled terms.
func (a *accumulator) expr() Expr {
	out := make([]Term, 0, len(a.terms))
	for _, t := range a.terms {
		if t.Coeff != 0 {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return Expr{}
	}

	return Expr{terms: out}
}
