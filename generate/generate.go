// SPDX-License-Identifier: MIT
// Package: ga/generate
//
// generate.go - the driver: resolve, then write, one product definition at
// a time.
//
// Design contract:
//   - Every case of a definition is resolved before any of it is written; a
//     failing case skips the whole definition and leaves one diagnostic line.
//   - Algebras that cannot be built are skipped, logged at Error and their
//     errors returned together after the run.
//   - Parallel mode buffers per algebra and writes in request order, so its
//     output equals the sequential output byte for byte.

package generate

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Daniel-G-W-Hug/ga-sub006/algebra"
	"github.com/Daniel-G-W-Hug/ga-sub006/compose"
	"github.com/Daniel-G-W-Hug/ga-sub006/format"
	"github.com/Daniel-G-W-Hug/ga-sub006/rules"
	"github.com/Daniel-G-W-Hug/ga-sub006/subst"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Generator emits product expressions for the algebras of a registry.
type Generator struct {
	reg      *algebra.Registry
	log      *zap.Logger
	tables   bool
	parallel bool
}

// New returns a Generator over reg. Tables are printed and algebras are
// processed sequentially unless options say otherwise.
func New(reg *algebra.Registry, opts ...Option) *Generator {
	g := &Generator{reg: reg, log: zap.NewNop(), tables: true}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// result is the buffered output of one algebra.
type result struct {
	out    bytes.Buffer
	report Report
	err    error
}

// All writes the expressions of the named algebras (every registered one
// when names is empty) to w, in the given order.
// Errors from algebras that could not be built are combined and returned
// after everything else has been written; a write error or a cancelled
// context stops the run.
func (g *Generator) All(ctx context.Context, w io.Writer, names ...string) (Report, error) {
	if len(names) == 0 {
		names = g.reg.Names()
	}
	results := make([]*result, len(names))
	for i := range results {
		results[i] = &result{}
	}

	if g.parallel {
		eg, egCtx := errgroup.WithContext(ctx)
		for i, name := range names {
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				results[i].report, results[i].err = g.Algebra(&results[i].out, name)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return Report{}, err
		}
	}

	var (
		report Report
		errs   error
	)
	for i, name := range names {
		res := results[i]
		if !g.parallel {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			res.report, res.err = g.Algebra(&res.out, name)
		}
		if res.err != nil {
			g.log.Error("skipping algebra", zap.String("algebra", name), zap.Error(res.err))
			res.report.Skipped = append(res.report.Skipped, Skip{Algebra: name, Err: res.err})
			if err := format.Skipped(&res.out, name, "*", res.err); err != nil {
				return report, err
			}
			errs = multierr.Append(errs, res.err)
		}
		report.add(res.report)
		if _, err := res.out.WriteTo(w); err != nil {
			return report, fmt.Errorf("generate: write %s: %w", name, err)
		}
	}

	return report, errs
}

// Algebra writes every product definition of one algebra to w. It fails
// only when the algebra cannot be built or w fails; failing definitions are
// skipped and recorded in the report.
func (g *Generator) Algebra(w io.Writer, name string) (Report, error) {
	a, err := g.reg.Build(name)
	if err != nil {
		return Report{}, err
	}
	g.log.Debug("built algebra",
		zap.String("algebra", name),
		zap.Int("blades", a.Basis().Len()),
		zap.Int("products", len(a.Config().Products)))

	if err := format.Algebra(w, name, a.Basis()); err != nil {
		return Report{}, err
	}
	report := Report{Algebras: 1}
	for _, def := range a.Products() {
		p, err := g.resolve(a, def)
		if err != nil {
			fields := []zap.Field{zap.String("algebra", name), zap.String("product", def.Product)}
			if p.failed != "" {
				fields = append(fields, zap.String("case", p.failed))
			}
			g.log.Warn("skipping product definition", append(fields, zap.Error(err))...)
			report.Skipped = append(report.Skipped, Skip{Algebra: name, Product: def.Product, Err: err})
			if err := format.Skipped(w, name, def.Product, err); err != nil {
				return report, err
			}
			continue
		}
		if err := g.write(w, a, p); err != nil {
			return report, err
		}
		report.Emitted += len(p.cases)
		report.Disabled += p.disabled
	}

	return report, nil
}

// plan is a fully resolved product definition, ready to be written.
type plan struct {
	product  string
	table    *rules.Table
	cases    []resolved
	disabled int
	failed   string // desc of the case that failed to resolve
}

// resolved is one case: a single step for plain products, two for
// sandwiches (intermediate, then result).
type resolved struct {
	header string
	steps  []step
}

type step struct {
	call string
	v    subst.Vector
}

// resolve computes every enabled case of def without writing anything.
func (g *Generator) resolve(a *algebra.Algebra, def algebra.ProductDefinition) (plan, error) {
	p := plan{product: def.Product}
	pt := compose.ProductType(def.Product)
	recipe, ok := compose.Lookup(pt)
	if !ok {
		return p, fmt.Errorf("product %q: %w", def.Product, compose.ErrUnknownProduct)
	}
	var (
		rev *rules.Unary
		err error
	)
	if recipe.IsSandwich() {
		p.table, rev, err = a.Engine().Sandwich(pt)
	} else {
		p.table, err = a.Engine().Table(pt)
	}
	if err != nil {
		return p, err
	}

	for _, c := range def.Cases {
		if !c.IsEnabled() {
			p.disabled++
			continue
		}
		r, err := g.resolveCase(a, p.table, rev, def.Product, c)
		if err != nil {
			p.failed = c.Desc
			return p, fmt.Errorf("case %q: %w", c.Desc, err)
		}
		p.cases = append(p.cases, r)
	}

	return p, nil
}

func (g *Generator) resolveCase(a *algebra.Algebra, t *rules.Table, rev *rules.Unary, product string, c algebra.ProductCase) (resolved, error) {
	lhs, err := operand(a, c.LHS, c.LHSFilter)
	if err != nil {
		return resolved{}, err
	}
	rhs, err := operand(a, c.RHS, c.RHSFilter)
	if err != nil {
		return resolved{}, err
	}
	resultFilter, err := a.Filter(c.ResultFilter)
	if err != nil {
		return resolved{}, err
	}

	var result subst.Vector
	r := resolved{header: c.Desc}
	if rev == nil {
		result, err = subst.Apply(product, t, lhs, rhs)
		if err != nil {
			return resolved{}, err
		}
		r.steps = []step{{call: fmt.Sprintf("%s(%s, %s)", product, c.LHS, c.RHS), v: result}}
	} else {
		var tmp subst.Vector
		result, tmp, err = subst.Sandwich(product, t, rev, lhs, rhs)
		if err != nil {
			return resolved{}, err
		}
		r.steps = []step{
			{call: fmt.Sprintf("tmp = %s(%s, %s)", t.Name(), c.LHS, c.RHS), v: tmp},
			{call: fmt.Sprintf("%s(%s, %s) = %s(tmp, %s(%s))", product, c.LHS, c.RHS, t.Name(), rev.Name(), c.LHS), v: result},
		}
	}
	if err := resultFilter.Check(result); err != nil {
		return resolved{}, err
	}

	return r, nil
}

// operand resolves a coefficient key and masks it with its filter.
func operand(a *algebra.Algebra, key, filter string) (subst.Vector, error) {
	v, err := a.Vector(key)
	if err != nil {
		return subst.Vector{}, err
	}
	f, err := a.Filter(filter)
	if err != nil {
		return subst.Vector{}, err
	}

	return f.Select(v)
}

func (g *Generator) write(w io.Writer, a *algebra.Algebra, p plan) error {
	var table *rules.Table
	if g.tables {
		table = p.table
	}
	if err := format.Product(w, a.Name(), p.product, table); err != nil {
		return err
	}
	for _, r := range p.cases {
		header := r.header
		for _, st := range r.steps {
			if err := format.Case(w, header, st.call, st.v); err != nil {
				return err
			}
			header = ""
		}
		g.log.Debug("emitted case",
			zap.String("algebra", a.Name()),
			zap.String("product", p.product),
			zap.String("case", r.header))
	}

	return nil
}
