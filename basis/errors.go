// SPDX-License-Identifier: MIT
// Package: ga/basis
//
// errors.go: sentinel errors for the basis package.
//
// Callers branch with errors.Is; context is attached with %w at the call
// site (see basisErrorf), never baked into the sentinel text.

package basis

import (
	"errors"
	"fmt"
)

// ErrInvalidSignature indicates an (P, N, Z) signature outside the supported
// set: 2 <= P+N+Z <= 4, N == 0, Z in {0, 1}.
var ErrInvalidSignature = errors.New("basis: invalid signature")

// ErrBadBladeName indicates a blade name that is not "1" or "e" followed by
// distinct generator digits within 1..dim.
var ErrBadBladeName = errors.New("basis: bad blade name")

// ErrDuplicateBlade indicates that two configured names describe the same
// generator subset (e.g. "e13" and "e31").
var ErrDuplicateBlade = errors.New("basis: duplicate blade")

// ErrIncompleteBasis indicates that the configured names do not cover all
// 2^dim generator subsets.
var ErrIncompleteBasis = errors.New("basis: incomplete basis")

// ErrOutOfRange indicates a blade index outside [0, Len()).
var ErrOutOfRange = errors.New("basis: index out of range")

// basisErrorf prefixes err with the method name, keeping the sentinel
// reachable through errors.Is.
func basisErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
