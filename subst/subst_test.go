// SPDX-License-Identifier: MIT
package subst_test

import (
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
	"github.com/Daniel-G-W-Hug/ga-sub006/compose"
	"github.com/Daniel-G-W-Hug/ga-sub006/expr"
	"github.com/Daniel-G-W-Hug/ga-sub006/rules"
	"github.com/Daniel-G-W-Hug/ga-sub006/subst"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ega2d(t *testing.T) *compose.Engine {
	t.Helper()
	b, err := basis.New(basis.Signature{P: 2}, basis.WithNames("1", "e1", "e2", "e12"))
	require.NoError(t, err)
	e, err := compose.New(b)
	require.NoError(t, err)

	return e
}

func pga2dp(t *testing.T) *compose.Engine {
	t.Helper()
	b, err := basis.New(basis.Signature{P: 2, Z: 1},
		basis.WithNames("1", "e1", "e2", "e3", "e23", "e31", "e12", "e321"))
	require.NoError(t, err)
	e, err := compose.New(b)
	require.NoError(t, err)

	return e
}

func vec(t *testing.T, name string, b *basis.Basis, lits ...string) subst.Vector {
	t.Helper()
	v, err := subst.ParseVector(name, b, lits)
	require.NoError(t, err)

	return v
}

func table(t *testing.T, e *compose.Engine, pt compose.ProductType) *rules.Table {
	t.Helper()
	tbl, err := e.Table(pt)
	require.NoError(t, err)

	return tbl
}

func TestApply_GeometricProductOfVectors(t *testing.T) {
	e := ega2d(t)
	b := e.Basis()
	v1 := vec(t, "v1", b, "_", "x1", "y1", "_")
	v2 := vec(t, "v2", b, "_", "x2", "y2", "_")

	got, err := subst.Apply("gpr", table(t, e, compose.Geometric), v1, v2)
	require.NoError(t, err)
	want := []string{"x1*x2 + y1*y2", "0", "0", "x1*y2 - y1*x2"}
	if diff := cmp.Diff(want, got.Strings()); diff != "" {
		t.Errorf("v1*v2 mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "gpr", got.Name())
	assert.Equal(t, []int{0, 2}, got.Grades())
}

func TestApply_WedgeWithPseudoscalarVanishes(t *testing.T) {
	e := ega2d(t)
	b := e.Basis()
	v := vec(t, "v", b, "_", "x", "y", "_")
	ps := vec(t, "ps", b, "_", "_", "_", "ps")

	got, err := subst.Apply("wdg", table(t, e, compose.Wedge), v, ps)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
	assert.Empty(t, got.Support())
}

func TestApply_WedgeOfVectorWithItselfCancels(t *testing.T) {
	e := ega2d(t)
	b := e.Basis()
	v := vec(t, "v", b, "_", "x", "y", "_")

	got, err := subst.Apply("wdg", table(t, e, compose.Wedge), v, v)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), got.Strings())
}

func TestApply_RegressiveWedgeOfBivectorsIsVector(t *testing.T) {
	e := pga2dp(t)
	b := e.Basis()
	B1 := vec(t, "B1", b, "_", "_", "_", "_", "x1", "y1", "z1", "_")
	B2 := vec(t, "B2", b, "_", "_", "_", "_", "x2", "y2", "z2", "_")

	got, err := subst.Apply("rwdg", table(t, e, compose.RegressiveWedge), B1, B2)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got.Grades())
	require.NoError(t, subst.Filter{Name: "vec", Grades: []int{1}}.Check(got))
	for _, i := range got.Support() {
		assert.Equal(t, 2, got.Coeff(i).Len(), b.Name(i))
	}
}

func TestApply_BasisMismatch(t *testing.T) {
	e2, e3 := ega2d(t), pga2dp(t)
	v := vec(t, "v", e2.Basis(), "_", "x", "y", "_")
	w := vec(t, "w", e3.Basis(), "_", "x", "y", "z", "_", "_", "_", "_")

	_, err := subst.Apply("gpr", table(t, e2, compose.Geometric), v, w)
	require.ErrorIs(t, err, subst.ErrBasisMismatch)
}

func TestParseVector_Errors(t *testing.T) {
	b := ega2d(t).Basis()

	_, err := subst.ParseVector("v", b, []string{"a", "b"})
	require.ErrorIs(t, err, subst.ErrLengthMismatch)

	_, err = subst.ParseVector("v", b, []string{"a", "b c", "_", "_"})
	require.ErrorIs(t, err, expr.ErrBadSymbol)

	_, err = subst.NewVector("v", b, []expr.Expr{expr.Symbol("a")})
	require.ErrorIs(t, err, subst.ErrLengthMismatch)
}

func TestParseVector_NegatedZeroIsAbsent(t *testing.T) {
	b := ega2d(t).Basis()
	v, err := subst.ParseVector("v", b, []string{"-0", "x", "-_", "_"})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, v.Support())
	assert.Equal(t, []string{"0", "x", "0", "0"}, v.Strings())
}

func TestVector_MaskAndCheck(t *testing.T) {
	b := ega2d(t).Basis()
	mv := vec(t, "A", b, "s", "x", "y", "ps")
	filters := map[string]subst.Filter{}
	for _, f := range subst.DefaultFilters(b.Dim()) {
		filters[f.Name] = f
	}

	even := mv.Masked(filters["mv_e"])
	assert.Equal(t, []string{"s", "0", "0", "ps"}, even.Strings())
	require.NoError(t, filters["mv_e"].Check(even))
	require.NoError(t, filters["mv"].Check(even))

	err := filters["vec"].Check(mv)
	require.ErrorIs(t, err, subst.ErrKindMismatch)

	scalar := mv.Masked(filters["s"])
	require.NoError(t, filters["vec"].Check(scalar.Masked(filters["vec"])), "zero passes")

	_, err = filters["vec"].Select(scalar)
	require.ErrorIs(t, err, subst.ErrKindMismatch)

	sel, err := filters["vec"].Select(mv)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, sel.Support())
}

func TestDefaultFilters(t *testing.T) {
	names := func(fs []subst.Filter) []string {
		out := make([]string, len(fs))
		for i, f := range fs {
			out[i] = f.Name
		}
		return out
	}
	assert.Equal(t, []string{"s", "vec", "bivec", "ps", "mv_e", "mv_u", "mv"}, names(subst.DefaultFilters(2)))
	f4 := subst.DefaultFilters(4)
	assert.Equal(t, []string{"s", "vec", "bivec", "trivec", "ps", "mv_e", "mv_u", "mv"}, names(f4))
	assert.Equal(t, "mv_e[0,2,4]", f4[5].String())
	assert.Equal(t, "mv_u[1,3]", f4[6].String())
}

func TestVector_TransformReverse(t *testing.T) {
	e := ega2d(t)
	b := e.Basis()
	R := vec(t, "R", b, "s", "_", "_", "b")
	rev, err := e.Unary(compose.Reverse)
	require.NoError(t, err)

	got, err := R.Transform(rev)
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "0", "0", "-b"}, got.Strings())
}

func TestSandwich_RotorOnVector(t *testing.T) {
	e := ega2d(t)
	b := e.Basis()
	R := vec(t, "R", b, "s", "_", "_", "b")
	v := vec(t, "v", b, "_", "x", "y", "_")
	tbl, rev, err := e.Sandwich(compose.Sandwich)
	require.NoError(t, err)

	got, tmp, err := subst.Sandwich("rotated", tbl, rev, R, v)
	require.NoError(t, err)
	assert.Equal(t, "rotated_tmp", tmp.Name())
	assert.Equal(t, []string{"0", "s*x + b*y", "s*y - b*x", "0"}, tmp.Strings())
	want := []string{"0", "s*x*s + 2*b*y*s - b*x*b", "-2*s*x*b - b*y*b + s*y*s", "0"}
	if diff := cmp.Diff(want, got.Strings()); diff != "" {
		t.Errorf("R*v*rev(R) mismatch (-want +got):\n%s", diff)
	}
}
