// SPDX-License-Identifier: MIT
package rules_test

import (
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
	"github.com/Daniel-G-W-Hug/ga-sub006/rules"
	"github.com/stretchr/testify/require"
)

// algebraFixture carries one algebra's basis and its base tables.
type algebraFixture struct {
	name string
	b    *basis.Basis
	gpr  *rules.Table
	wdg  *rules.Table
	dot  *rules.Table
	rc   *rules.Unary
	lc   *rules.Unary
}

// fixtures builds the four supported algebras with their configured names.
func fixtures(t *testing.T) []algebraFixture {
	t.Helper()

	defs := []struct {
		name  string
		sig   basis.Signature
		names []string
	}{
		{"ega2d", basis.Signature{P: 2}, []string{"1", "e1", "e2", "e12"}},
		{"ega3d", basis.Signature{P: 3}, []string{"1", "e1", "e2", "e3", "e23", "e31", "e12", "e123"}},
		{"pga2dp", basis.Signature{P: 2, Z: 1}, []string{"1", "e1", "e2", "e3", "e23", "e31", "e12", "e321"}},
		{"pga3dp", basis.Signature{P: 3, Z: 1}, []string{
			"1", "e1", "e2", "e3", "e4", "e41", "e42", "e43", "e23", "e31", "e12",
			"e423", "e431", "e412", "e321", "e1234"}},
	}
	out := make([]algebraFixture, 0, len(defs))
	for _, d := range defs {
		b, err := basis.New(d.sig, basis.WithNames(d.names...))
		require.NoError(t, err, d.name)
		gpr := rules.Geometric(b)
		wdg := rules.Wedge(gpr)
		rc, err := rules.RightComplement(wdg)
		require.NoError(t, err, d.name)
		lc, err := rules.LeftComplement(wdg)
		require.NoError(t, err, d.name)
		out = append(out, algebraFixture{
			name: d.name, b: b, gpr: gpr, wdg: wdg, dot: rules.Dot(gpr), rc: rc, lc: lc,
		})
	}

	return out
}

// at is a test accessor that fails the test on a bad index.
func at(t *testing.T, tbl *rules.Table, i, j int) rules.SignedBlade {
	t.Helper()
	e, err := tbl.At(i, j)
	require.NoError(t, err)

	return e
}

// mul multiplies two signed blades through tbl.
func mul(t *testing.T, tbl *rules.Table, x, y rules.SignedBlade) rules.SignedBlade {
	t.Helper()
	if x.IsZero() || y.IsZero() {
		return rules.SignedBlade{}
	}

	return at(t, tbl, x.Blade, y.Blade).Scale(x.Sign * y.Sign)
}

// idx resolves a blade name or fails.
func idx(t *testing.T, b *basis.Basis, name string) int {
	t.Helper()
	i, ok := b.Index(name)
	require.True(t, ok, name)

	return i
}

func sb(blade, sign int) rules.SignedBlade { return rules.SignedBlade{Blade: blade, Sign: sign} }
