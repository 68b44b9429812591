// SPDX-License-Identifier: MIT
// Package: ga/basis
//
// options.go: functional options for New.
//
// Option constructors validate and panic on meaningless input; New itself
// never panics and reports problems through sentinel errors.

package basis

// Option customizes basis construction.
type Option func(*basisConfig)

// basisConfig is resolved once in New and never shared.
type basisConfig struct {
	names []string // display names in basis order; nil → canonical names
}

// WithNames fixes the display names (and thereby the order and orientation)
// of the basis blades. Panics on an empty list.
// Complexity: O(len(names)).
func WithNames(names ...string) Option {
	if len(names) == 0 {
		panic("basis: WithNames()")
	}
	cp := append([]string(nil), names...)

	return func(c *basisConfig) {
		c.names = cp
	}
}

func newBasisConfig(opts ...Option) basisConfig {
	var cfg basisConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
