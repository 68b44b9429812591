// Package compose derives every secondary product of an algebra from its
// base rule tables.
//
// A Recipe is data: the unary tables applied to the left and right operand
// blades, the base table looked up on the transformed blades, and the unary
// tables applied to the result. For example the regressive wedge is
//
//	Recipe{Left: {rcmpl}, Right: {rcmpl}, Base: wdg, Final: {lcmpl}}
//
// i.e. rwdg(A,B) = lcmpl( rcmpl(A) ∧ rcmpl(B) ). The ProductType tag selects
// the recipe; nothing is duplicated per algebra.
//
// An Engine builds all base tables of one basis, then materializes every
// recipe whose unary tables exist. Recipes that need a missing table (bulk or
// weight duals on a non-degenerate algebra) are remembered as configuration
// errors and reported by Table with ErrMissingTable.
//
// Sandwich products are not tables: they are two passes of an inner product
// (see package subst). Table returns the inner product's table for them and
// Sandwich additionally returns the reversion to apply to the rotor.
package compose
