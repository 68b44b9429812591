// SPDX-License-Identifier: MIT
package expr_test

import (
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub006/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sym(s string) expr.Expr { return expr.Symbol(s) }

func TestString(t *testing.T) {
	cases := []struct {
		name string
		e    expr.Expr
		want string
	}{
		{"zero", expr.Zero(), "0"},
		{"symbol", sym("x1"), "x1"},
		{"negated", sym("x1").Neg(), "-x1"},
		{"product", sym("x1").Mul(sym("x2")), "x1*x2"},
		{"sum", sym("x1").Mul(sym("x2")).Add(sym("y1").Mul(sym("y2"))), "x1*x2 + y1*y2"},
		{"difference", sym("x1").Mul(sym("y2")).Add(sym("y1").Mul(sym("x2")).Neg()), "x1*y2 - y1*x2"},
		{"coefficient", sym("a").Mul(sym("b")).Scale(2), "2*a*b"},
		{"leading negative coefficient", sym("a").Scale(-3).Add(sym("b")), "-3*a + b"},
		{"constant", expr.Const(-2), "-2"},
		{"const zero", expr.Const(0), "0"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.e.String())
		})
	}
}

func TestAdd_CollectsLikeTerms(t *testing.T) {
	xy := sym("x").Mul(sym("y"))
	yx := sym("y").Mul(sym("x"))

	// commuting factors are like terms; first appearance fixes display order.
	assert.Equal(t, "2*x*y", xy.Add(yx).String())
	assert.True(t, xy.Add(yx.Neg()).IsZero())
	assert.Equal(t, 1, xy.Add(sym("z")).Add(yx.Neg()).Len())
	assert.Equal(t, "z", xy.Add(sym("z")).Add(yx.Neg()).String())
}

func TestMul_Distributes(t *testing.T) {
	// (s*x + b*y) * (s - b) collects nothing but keeps left-outer order.
	l := sym("s").Mul(sym("x")).Add(sym("b").Mul(sym("y")))
	r := sym("s").Add(sym("b").Neg())
	assert.Equal(t, "s*x*s - s*x*b + b*y*s - b*y*b", l.Mul(r).String())

	// (a + b)(a - b) = a*a - b*b
	p := sym("a").Add(sym("b")).Mul(sym("a").Add(sym("b").Neg()))
	assert.Equal(t, "a*a - b*b", p.String())

	assert.True(t, sym("a").Mul(expr.Zero()).IsZero())
	assert.Equal(t, "3*a", expr.Const(3).Mul(sym("a")).String())
}

func TestParse(t *testing.T) {
	for _, in := range []string{"", "0", "_", "  ", "-0", "- _", " -0 "} {
		e, err := expr.Parse(in)
		require.NoError(t, err)
		assert.True(t, e.IsZero(), in)
	}
	e, err := expr.Parse("A.c0")
	require.NoError(t, err)
	assert.Equal(t, "A.c0", e.String())

	e, err = expr.Parse("-R.c3")
	require.NoError(t, err)
	assert.Equal(t, "-R.c3", e.String())

	for _, bad := range []string{"-", "a b", "a*b", "x+y", "(x)"} {
		_, err = expr.Parse(bad)
		require.ErrorIs(t, err, expr.ErrBadSymbol, bad)
	}
}

func TestImmutable(t *testing.T) {
	a := sym("a").Add(sym("b"))
	_ = a.Scale(5)
	_ = a.Mul(sym("c"))
	terms := a.Terms()
	terms[0].Factors[0] = "mutated"
	assert.Equal(t, "a + b", a.String())
	assert.True(t, a.Equal(sym("a").Add(sym("b"))))
	assert.False(t, a.Equal(sym("b").Add(sym("a"))))
}
