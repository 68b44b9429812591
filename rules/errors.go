// SPDX-License-Identifier: MIT
// Package: ga/rules
//
// errors.go: sentinel errors for the rules package.
//
// Callers MUST use errors.Is; messages are stable and prefixed "rules:".

package rules

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a blade index outside the table's basis.
var ErrOutOfRange = errors.New("rules: index out of range")

// ErrBasisMismatch indicates that two tables combined into one operation
// were built over different bases.
var ErrBasisMismatch = errors.New("rules: basis mismatch")

// ErrNoComplement indicates that no blade wedges with the given blade into
// the pseudoscalar. It signals a corrupted wedge table.
var ErrNoComplement = errors.New("rules: no complement")

// ErrNotDegenerate indicates that bulk/weight duals were requested for an
// algebra without a null generator.
var ErrNotDegenerate = errors.New("rules: algebra is not degenerate")

// rulesErrorf wraps err with method context while preserving the sentinel.
func rulesErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
