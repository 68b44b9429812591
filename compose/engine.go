// SPDX-License-Identifier: MIT
// Package: ga/compose
//
// engine.go - eager construction of every table of one algebra.
//
// Design contract (strict):
//   - New builds base tables, unary tables and every plain recipe once; the
//     Engine is read-only afterwards and safe for concurrent readers.
//   - A recipe whose unary table is absent (bulk/weight duals on Z = 0) is
//     recorded as ErrMissingTable; it never fails New.
//   - Sandwich recipes own no table: they reuse their inner product's table
//     and name the reversion applied in the second pass.
//   - Composed tables are named by their ProductType.
//
// AI-Hints (practical):
//   - Add a product by adding a ProductType, an entry in order and a Recipe;
//     Engine needs no change unless a new unary table is involved.
//   - Use Available() to list products for one signature, Lookup for the
//     signature-independent recipe.

package compose

import (
	"fmt"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
	"github.com/Daniel-G-W-Hug/ga-sub006/rules"
)

// Engine owns every rule table of one algebra. It is filled completely by
// New and read-only afterwards.
type Engine struct {
	basis    *basis.Basis
	bases    map[BaseKey]*rules.Table
	unaries  map[UnaryKey]*rules.Unary
	products map[ProductType]*rules.Table
	missing  map[ProductType]error
}

// New builds the base tables, the complement and duality tables, and every
// composed product of b.
// Stage 1: geometric table and its grade filters.
// Stage 2: complements, reversions, and (Z = 1 only) bulk/weight duals.
// Stage 3: one table per recipe; recipes lacking a table are recorded.
// Complexity: O(R * n^2) for R recipes over n blades.
func New(b *basis.Basis) (*Engine, error) {
	e := &Engine{
		basis:    b,
		bases:    make(map[BaseKey]*rules.Table, 4),
		unaries:  make(map[UnaryKey]*rules.Unary, 11),
		products: make(map[ProductType]*rules.Table, len(order)),
		missing:  make(map[ProductType]error),
	}

	gpr := rules.Geometric(b)
	wdg := rules.Wedge(gpr)
	e.bases[BaseGeometric] = gpr
	e.bases[BaseWedge] = wdg
	e.bases[BaseDot] = rules.Dot(gpr)
	e.bases[BaseCommutator] = rules.Commutator(gpr)

	rc, err := rules.RightComplement(wdg)
	if err != nil {
		return nil, fmt.Errorf("compose.New: %w", err)
	}
	lc, err := rules.LeftComplement(wdg)
	if err != nil {
		return nil, fmt.Errorf("compose.New: %w", err)
	}
	e.unaries[RightComplement] = rc
	e.unaries[LeftComplement] = lc
	e.unaries[Reverse] = rules.Reverse(b)
	e.unaries[RegressiveReverse] = rules.RegressiveReverse(b)
	e.unaries[Involution] = rules.Involution(b)

	if b.Signature().Degenerate() {
		bulk, err := rules.BulkDuals(rc, lc)
		if err != nil {
			return nil, fmt.Errorf("compose.New: %w", err)
		}
		weight, err := rules.WeightDuals(rc, lc)
		if err != nil {
			return nil, fmt.Errorf("compose.New: %w", err)
		}
		e.unaries[RightBulkDual] = bulk.Right
		e.unaries[LeftBulkDual] = bulk.Left
		e.unaries[RightWeightDual] = weight.Right
		e.unaries[LeftWeightDual] = weight.Left
		e.unaries[BulkPart] = rules.Bulk(b)
		e.unaries[WeightPart] = rules.Weight(b)
	}

	for _, pt := range order {
		r := recipes[pt]
		if r.IsSandwich() {
			continue
		}
		t, err := e.compose(pt, r)
		if err != nil {
			e.missing[pt] = err
			continue
		}
		e.products[pt] = t
	}
	for _, pt := range order {
		r := recipes[pt]
		if !r.IsSandwich() {
			continue
		}
		if err := e.checkSandwich(pt, r); err != nil {
			e.missing[pt] = err
		}
	}

	return e, nil
}

// compose materializes one plain recipe.
func (e *Engine) compose(pt ProductType, r Recipe) (*rules.Table, error) {
	base, ok := e.bases[r.Base]
	if !ok {
		return nil, fmt.Errorf("%s: base %q: %w", pt, r.Base, ErrMissingTable)
	}
	left, err := e.chain(pt, r.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.chain(pt, r.Right)
	if err != nil {
		return nil, err
	}
	final, err := e.chain(pt, r.Final)
	if err != nil {
		return nil, err
	}

	return rules.NewTable(string(pt), e.basis, func(i, j int) rules.SignedBlade {
		a := left(rules.SignedBlade{Blade: i, Sign: 1})
		b := right(rules.SignedBlade{Blade: j, Sign: 1})
		if a.IsZero() || b.IsZero() {
			return rules.SignedBlade{}
		}
		entry, _ := base.At(a.Blade, b.Blade)

		return final(entry.Scale(a.Sign * b.Sign))
	}), nil
}

// chain resolves a list of unary keys into one mapping, applied in order.
func (e *Engine) chain(pt ProductType, keys []UnaryKey) (func(rules.SignedBlade) rules.SignedBlade, error) {
	steps := make([]*rules.Unary, 0, len(keys))
	for _, k := range keys {
		t, ok := e.unaries[k]
		if !ok {
			return nil, fmt.Errorf("%s: unary %q on %s: %w", pt, k, e.basis.Signature(), ErrMissingTable)
		}
		steps = append(steps, t)
	}

	return func(s rules.SignedBlade) rules.SignedBlade {
		for _, t := range steps {
			s = t.Apply(s)
		}
		return s
	}, nil
}

func (e *Engine) checkSandwich(pt ProductType, r Recipe) error {
	if _, ok := e.products[r.Inner]; !ok {
		return fmt.Errorf("%s: inner %q: %w", pt, r.Inner, ErrMissingTable)
	}
	if _, ok := e.unaries[r.Reverse]; !ok {
		return fmt.Errorf("%s: reverse %q: %w", pt, r.Reverse, ErrMissingTable)
	}

	return nil
}

// Basis returns the basis every table is indexed by.
func (e *Engine) Basis() *basis.Basis { return e.basis }

// Table returns the composed table of pt. For sandwich products it returns
// the inner product's table.
// Errors: ErrUnknownProduct, ErrMissingTable.
func (e *Engine) Table(pt ProductType) (*rules.Table, error) {
	r, ok := recipes[pt]
	if !ok {
		return nil, fmt.Errorf("Engine.Table(%q): %w", pt, ErrUnknownProduct)
	}
	if err, bad := e.missing[pt]; bad {
		return nil, fmt.Errorf("Engine.Table: %w", err)
	}
	if r.IsSandwich() {
		return e.products[r.Inner], nil
	}

	return e.products[pt], nil
}

// Sandwich returns the inner product table and the reversion applied to the
// rotor in the second pass.
// Errors: ErrUnknownProduct, ErrNotSandwich, ErrMissingTable.
func (e *Engine) Sandwich(pt ProductType) (*rules.Table, *rules.Unary, error) {
	r, ok := recipes[pt]
	if !ok {
		return nil, nil, fmt.Errorf("Engine.Sandwich(%q): %w", pt, ErrUnknownProduct)
	}
	if !r.IsSandwich() {
		return nil, nil, fmt.Errorf("Engine.Sandwich(%q): %w", pt, ErrNotSandwich)
	}
	if err, bad := e.missing[pt]; bad {
		return nil, nil, fmt.Errorf("Engine.Sandwich: %w", err)
	}

	return e.products[r.Inner], e.unaries[r.Reverse], nil
}

// Base returns one of the base tables.
func (e *Engine) Base(k BaseKey) (*rules.Table, error) {
	t, ok := e.bases[k]
	if !ok {
		return nil, fmt.Errorf("Engine.Base(%q): %w", k, ErrMissingTable)
	}

	return t, nil
}

// Unary returns a complement, dual, projection or reversion table.
func (e *Engine) Unary(k UnaryKey) (*rules.Unary, error) {
	t, ok := e.unaries[k]
	if !ok {
		return nil, fmt.Errorf("Engine.Unary(%q) on %s: %w", k, e.basis.Signature(), ErrMissingTable)
	}

	return t, nil
}

// Available lists, in catalogue order, the products this algebra supports.
func (e *Engine) Available() []ProductType {
	out := make([]ProductType, 0, len(order))
	for _, pt := range order {
		if _, bad := e.missing[pt]; !bad {
			out = append(out, pt)
		}
	}

	return out
}

// Unaries lists the unary tables carried by this algebra in a fixed order.
func (e *Engine) Unaries() []UnaryKey {
	all := []UnaryKey{
		RightComplement, LeftComplement, RightBulkDual, LeftBulkDual,
		RightWeightDual, LeftWeightDual, BulkPart, WeightPart,
		Reverse, RegressiveReverse, Involution,
	}
	out := make([]UnaryKey, 0, len(all))
	for _, k := range all {
		if _, ok := e.unaries[k]; ok {
			out = append(out, k)
		}
	}

	return out
}
