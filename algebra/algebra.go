// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"sort"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
	"github.com/Daniel-G-W-Hug/ga-sub006/compose"
	"github.com/Daniel-G-W-Hug/ga-sub006/subst"
)

// DefaultFilter is used for operands and results declared without a filter.
const DefaultFilter = "mv"

// Algebra is a built configuration: basis, composed tables and filters.
// It is immutable after New.
type Algebra struct {
	cfg     Config
	basis   *basis.Basis
	engine  *compose.Engine
	filters []subst.Filter
	byName  map[string]int
}

// New builds the basis and every composed table of c. An empty c.Basis
// selects the canonical ascending names.
// Errors: basis.ErrInvalidSignature, basis.ErrBadBladeName and the other
// basis construction errors, wrapped with the algebra name.
func New(c Config) (*Algebra, error) {
	var opts []basis.Option
	if len(c.Basis) > 0 {
		opts = append(opts, basis.WithNames(c.Basis...))
	}
	b, err := basis.New(c.Signature, opts...)
	if err != nil {
		return nil, fmt.Errorf("algebra %s: %w", c.Name, err)
	}
	e, err := compose.New(b)
	if err != nil {
		return nil, fmt.Errorf("algebra %s: %w", c.Name, err)
	}
	a := &Algebra{cfg: c, basis: b, engine: e, byName: make(map[string]int)}
	for _, f := range subst.DefaultFilters(b.Dim()) {
		a.addFilter(f)
	}
	for _, f := range c.Filters {
		a.addFilter(subst.Filter{Name: f.Name, Grades: append([]int(nil), f.Grades...)})
	}

	return a, nil
}

func (a *Algebra) addFilter(f subst.Filter) {
	if i, ok := a.byName[f.Name]; ok {
		a.filters[i] = f
		return
	}
	a.byName[f.Name] = len(a.filters)
	a.filters = append(a.filters, f)
}

// Name returns the algebra's registry name.
func (a *Algebra) Name() string { return a.cfg.Name }

// Config returns the configuration the algebra was built from.
func (a *Algebra) Config() Config { return a.cfg }

// Basis returns the display basis.
func (a *Algebra) Basis() *basis.Basis { return a.basis }

// Engine returns the composed product tables.
func (a *Algebra) Engine() *compose.Engine { return a.engine }

// Products returns the product definitions in declaration order.
func (a *Algebra) Products() []ProductDefinition {
	return append([]ProductDefinition(nil), a.cfg.Products...)
}

// Filters returns the default filters followed by the configured extras.
func (a *Algebra) Filters() []subst.Filter { return append([]subst.Filter(nil), a.filters...) }

// Filter resolves a filter name; "" resolves to DefaultFilter.
func (a *Algebra) Filter(name string) (subst.Filter, error) {
	if name == "" {
		name = DefaultFilter
	}
	i, ok := a.byName[name]
	if !ok {
		return subst.Filter{}, fmt.Errorf("%s: filter %q: %w", a.cfg.Name, name, ErrUnknownKey)
	}

	return a.filters[i], nil
}

// Vector resolves a coefficient key and parses its literals.
func (a *Algebra) Vector(key string) (subst.Vector, error) {
	lits, ok := a.cfg.Coefficients[key]
	if !ok {
		return subst.Vector{}, fmt.Errorf("%s: coefficient %q: %w", a.cfg.Name, key, ErrUnknownKey)
	}
	v, err := subst.ParseVector(key, a.basis, lits)
	if err != nil {
		return subst.Vector{}, fmt.Errorf("%s: %w", a.cfg.Name, err)
	}

	return v, nil
}

// CoefficientKeys lists the coefficient vector names in sorted order.
func (a *Algebra) CoefficientKeys() []string {
	out := make([]string, 0, len(a.cfg.Coefficients))
	for k := range a.cfg.Coefficients {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
