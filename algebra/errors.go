// SPDX-License-Identifier: MIT
// Package: ga/algebra
//
// errors.go: sentinel errors for the configuration registry.

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAlgebra indicates a lookup of an algebra that is not registered.
	ErrUnknownAlgebra = errors.New("algebra: unknown algebra")

	// ErrUnknownKey indicates a coefficient or filter key absent from the
	// algebra's configuration.
	ErrUnknownKey = errors.New("algebra: unknown key")

	// ErrBadConfig indicates a malformed configuration document.
	ErrBadConfig = errors.New("algebra: bad config")
)

// configErrorf wraps ErrBadConfig with the document name and a reason.
func configErrorf(doc, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", doc, fmt.Sprintf(format, args...), ErrBadConfig)
}

// configWrap wraps ErrBadConfig around a decoder error, keeping both in the
// chain.
func configWrap(doc string, err error) error {
	return fmt.Errorf("%s: %w: %w", doc, err, ErrBadConfig)
}
