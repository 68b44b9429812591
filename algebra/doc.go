// Package algebra is the configuration registry of the generator.
//
// Every supported algebra is described by one YAML document embedded from
// data/: its signature, display basis, named coefficient vectors, optional
// extra filters, and the product definitions with their cases. Additional
// documents of the same schema may be merged from files at run time; a
// document whose name is already registered replaces the earlier one.
//
// Registry.Build turns one Config into an Algebra: the Basis, the composed
// tables of every product, and the filter set. Building is independent per
// algebra, so a bad signature only disables that algebra.
//
// Coefficient and filter keys are resolved lazily. An unknown key surfaces as
// ErrUnknownKey when a product case references it, so the caller can skip the
// enclosing product definition and continue.
package algebra
