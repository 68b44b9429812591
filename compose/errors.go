// SPDX-License-Identifier: MIT
// Package: ga/compose
//
// errors.go: sentinel errors for the compose package.

package compose

import "errors"

// ErrUnknownProduct indicates a ProductType without a recipe.
var ErrUnknownProduct = errors.New("compose: unknown product type")

// ErrMissingTable indicates a recipe referencing a base or unary table the
// algebra does not carry (e.g. a bulk dual on a Euclidean algebra).
var ErrMissingTable = errors.New("compose: missing table")

// ErrNotSandwich indicates Sandwich was asked for a plain product.
var ErrNotSandwich = errors.New("compose: not a sandwich product")
