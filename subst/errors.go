// SPDX-License-Identifier: MIT
// Package: ga/subst
//
// errors.go: sentinel errors for the subst package.

package subst

import "errors"

// ErrLengthMismatch indicates a coefficient list whose length differs from
// the number of basis blades.
var ErrLengthMismatch = errors.New("subst: coefficient count does not match basis")

// ErrBasisMismatch indicates operands built over different bases.
var ErrBasisMismatch = errors.New("subst: basis mismatch")

// ErrKindMismatch indicates that a vector's nonzero support is not covered
// by a filter, or that a filter leaves an operand empty.
var ErrKindMismatch = errors.New("subst: kind mismatch")
