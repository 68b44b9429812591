// SPDX-License-Identifier: MIT
// Package: ga/generate
//
// options.go: functional options for New.

package generate

import "go.uber.org/zap"

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the diagnostics logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("generate: WithLogger(nil)")
	}

	return func(g *Generator) {
		g.log = l
	}
}

// WithTables toggles printing the basis product table once per product.
func WithTables(on bool) Option {
	return func(g *Generator) {
		g.tables = on
	}
}

// WithParallel toggles concurrent processing of algebras.
func WithParallel(on bool) Option {
	return func(g *Generator) {
		g.parallel = on
	}
}
