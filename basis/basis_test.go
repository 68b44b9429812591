// SPDX-License-Identifier: MIT
// Package basis_test covers signature validation, name parsing and blade
// orientation.
package basis_test

import (
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		sig  basis.Signature
		ok   bool
	}{
		{"ega2d", basis.Signature{P: 2}, true},
		{"ega3d", basis.Signature{P: 3}, true},
		{"pga2dp", basis.Signature{P: 2, Z: 1}, true},
		{"pga3dp", basis.Signature{P: 3, Z: 1}, true},
		{"too small", basis.Signature{P: 1}, false},
		{"too large", basis.Signature{P: 5}, false},
		{"negative squares", basis.Signature{P: 2, N: 1}, false},
		{"two null", basis.Signature{P: 2, Z: 2}, false},
		{"negative count", basis.Signature{P: -1, Z: 3}, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.sig.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, basis.ErrInvalidSignature)
		})
	}
}

func TestSignature_Square(t *testing.T) {
	sig := basis.Signature{P: 3, Z: 1}
	assert.Equal(t, 1, sig.Square(0))
	assert.Equal(t, 1, sig.Square(2))
	assert.Equal(t, 0, sig.Square(3))
	assert.Equal(t, uint(0b1000), sig.NullMask())
	assert.True(t, sig.Degenerate())
	assert.Equal(t, "(3,0,1)", sig.String())
}

func TestNew_DefaultNames(t *testing.T) {
	b, err := basis.New(basis.Signature{P: 3})
	require.NoError(t, err)

	assert.Equal(t, 8, b.Len())
	assert.Equal(t, []string{"1", "e1", "e2", "e3", "e12", "e13", "e23", "e123"}, b.Names())
	assert.Equal(t, 0, b.Scalar())
	assert.Equal(t, 7, b.Pseudoscalar())
	for _, bl := range b.Blades() {
		assert.Equal(t, 1, bl.Orientation, bl.Name)
	}
}

func TestNew_OrientedNames(t *testing.T) {
	b, err := basis.New(basis.Signature{P: 2, Z: 1},
		basis.WithNames("1", "e1", "e2", "e3", "e23", "e31", "e12", "e321"))
	require.NoError(t, err)

	i, ok := b.Index("e31")
	require.True(t, ok)
	bl := b.MustBlade(i)
	assert.Equal(t, []int{2, 0}, bl.Gens)
	assert.Equal(t, uint(0b101), bl.Mask)
	assert.Equal(t, 2, bl.Grade)
	assert.Equal(t, -1, bl.Orientation)

	ps := b.MustBlade(b.Pseudoscalar())
	assert.Equal(t, "e321", ps.Name)
	assert.Equal(t, -1, ps.Orientation) // three inversions
	assert.True(t, ps.HasGenerators(b.Signature().NullMask()))
	assert.Equal(t, i, b.ByMask(0b101))
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := basis.New(basis.Signature{P: 1})
	require.ErrorIs(t, err, basis.ErrInvalidSignature)

	_, err = basis.New(basis.Signature{P: 2}, basis.WithNames("1", "e1", "e2"))
	require.ErrorIs(t, err, basis.ErrIncompleteBasis)

	_, err = basis.New(basis.Signature{P: 2}, basis.WithNames("1", "e1", "e2", "e21x"))
	require.ErrorIs(t, err, basis.ErrBadBladeName)

	_, err = basis.New(basis.Signature{P: 2}, basis.WithNames("1", "e1", "e3", "e12"))
	require.ErrorIs(t, err, basis.ErrBadBladeName)

	_, err = basis.New(basis.Signature{P: 2}, basis.WithNames("1", "e1", "e11", "e12"))
	require.ErrorIs(t, err, basis.ErrBadBladeName)

	_, err = basis.New(basis.Signature{P: 2}, basis.WithNames("1", "e12", "e2", "e21"))
	require.ErrorIs(t, err, basis.ErrDuplicateBlade)

	b, err := basis.New(basis.Signature{P: 2})
	require.NoError(t, err)
	_, err = b.Blade(4)
	require.ErrorIs(t, err, basis.ErrOutOfRange)
	assert.Equal(t, "?", b.Name(-1))
}

func TestWithNames_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { basis.WithNames() })
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "1", basis.CanonicalName(0))
	assert.Equal(t, "e13", basis.CanonicalName(0b101))
	assert.Equal(t, "e1234", basis.CanonicalName(0b1111))
}
