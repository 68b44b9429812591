// SPDX-License-Identifier: MIT

package compose

// ProductType tags a composition recipe.
type ProductType string

// Product catalogue.
const (
	Geometric              ProductType = "gpr"
	Commutator             ProductType = "cmt"
	Wedge                  ProductType = "wdg"
	Dot                    ProductType = "dot"
	RegressiveWedge        ProductType = "rwdg"
	RegressiveDot          ProductType = "rdot"
	RegressiveGeometric    ProductType = "rgpr"
	LeftContraction        ProductType = "lcontract"
	RightContraction       ProductType = "rcontract"
	LeftExpansion          ProductType = "lexpand"
	RightExpansion         ProductType = "rexpand"
	LeftBulkContraction    ProductType = "lbulk_contract"
	RightBulkContraction   ProductType = "rbulk_contract"
	LeftWeightContraction  ProductType = "lweight_contract"
	RightWeightContraction ProductType = "rweight_contract"
	LeftBulkExpansion      ProductType = "lbulk_expand"
	RightBulkExpansion     ProductType = "rbulk_expand"
	LeftWeightExpansion    ProductType = "lweight_expand"
	RightWeightExpansion   ProductType = "rweight_expand"
	Sandwich               ProductType = "sandwich_gpr"
	RegressiveSandwich     ProductType = "sandwich_rgpr"
)

// BaseKey names a base table built directly from the geometric table.
type BaseKey string

// Base tables.
const (
	BaseGeometric  BaseKey = "gpr"
	BaseWedge      BaseKey = "wdg"
	BaseDot        BaseKey = "dot"
	BaseCommutator BaseKey = "cmt"
)

// UnaryKey names a blade → signed blade table.
type UnaryKey string

// Unary tables.
const (
	RightComplement   UnaryKey = "rcmpl"
	LeftComplement    UnaryKey = "lcmpl"
	RightBulkDual     UnaryKey = "rbulk_dual"
	LeftBulkDual      UnaryKey = "lbulk_dual"
	RightWeightDual   UnaryKey = "rweight_dual"
	LeftWeightDual    UnaryKey = "lweight_dual"
	Reverse           UnaryKey = "rev"
	RegressiveReverse UnaryKey = "rrev"
	Involution        UnaryKey = "gr_inv"
	BulkPart          UnaryKey = "bulk"
	WeightPart        UnaryKey = "weight"
)

// Recipe is the pipeline of one product. For plain products the table
// entry of (A, B) is Final( Base( Left(A), Right(B) ) ), each list applied
// front to back. Sandwich recipes set Inner and Reverse instead.
type Recipe struct {
	Left  []UnaryKey
	Right []UnaryKey
	Base  BaseKey
	Final []UnaryKey

	Inner   ProductType // sandwich only: product applied twice
	Reverse UnaryKey    // sandwich only: applied to the rotor for the second pass
}

// IsSandwich reports whether the recipe is a two-pass sandwich.
func (r Recipe) IsSandwich() bool { return r.Inner != "" }

// Unaries lists every unary table the recipe touches.
func (r Recipe) Unaries() []UnaryKey {
	out := make([]UnaryKey, 0, len(r.Left)+len(r.Right)+len(r.Final)+1)
	out = append(out, r.Left...)
	out = append(out, r.Right...)
	out = append(out, r.Final...)
	if r.Reverse != "" {
		out = append(out, r.Reverse)
	}

	return out
}

func u(keys ...UnaryKey) []UnaryKey { return keys }

// order fixes the catalogue order for listings and eager construction;
// sandwiches come last because they reuse earlier tables.
var order = []ProductType{
	Geometric, Commutator, Wedge, Dot,
	RegressiveWedge, RegressiveDot, RegressiveGeometric,
	LeftContraction, RightContraction, LeftExpansion, RightExpansion,
	LeftBulkContraction, RightBulkContraction, LeftWeightContraction, RightWeightContraction,
	LeftBulkExpansion, RightBulkExpansion, LeftWeightExpansion, RightWeightExpansion,
	Sandwich, RegressiveSandwich,
}

var recipes = map[ProductType]Recipe{
	Geometric:  {Base: BaseGeometric},
	Commutator: {Base: BaseCommutator},
	Wedge:      {Base: BaseWedge},
	Dot:        {Base: BaseDot},

	// regressive products: lcmpl( rcmpl(A) ∘ rcmpl(B) )
	RegressiveWedge:     {Left: u(RightComplement), Right: u(RightComplement), Base: BaseWedge, Final: u(LeftComplement)},
	RegressiveDot:       {Left: u(RightComplement), Right: u(RightComplement), Base: BaseDot, Final: u(LeftComplement)},
	RegressiveGeometric: {Left: u(RightComplement), Right: u(RightComplement), Base: BaseGeometric, Final: u(LeftComplement)},

	// contractions: rwdg(lcmpl(A), B) and rwdg(A, rcmpl(B))
	LeftContraction:  {Left: u(LeftComplement, RightComplement), Right: u(RightComplement), Base: BaseWedge, Final: u(LeftComplement)},
	RightContraction: {Left: u(RightComplement), Right: u(RightComplement, RightComplement), Base: BaseWedge, Final: u(LeftComplement)},

	// expansions: wdg(lcmpl(A), B) and wdg(A, rcmpl(B))
	LeftExpansion:  {Left: u(LeftComplement), Base: BaseWedge},
	RightExpansion: {Right: u(RightComplement), Base: BaseWedge},

	// bulk/weight contractions: the dual replaces the single-sided complement
	LeftBulkContraction:    {Left: u(LeftBulkDual, RightComplement), Right: u(RightComplement), Base: BaseWedge, Final: u(LeftComplement)},
	RightBulkContraction:   {Left: u(RightComplement), Right: u(RightBulkDual, RightComplement), Base: BaseWedge, Final: u(LeftComplement)},
	LeftWeightContraction:  {Left: u(LeftWeightDual, RightComplement), Right: u(RightComplement), Base: BaseWedge, Final: u(LeftComplement)},
	RightWeightContraction: {Left: u(RightComplement), Right: u(RightWeightDual, RightComplement), Base: BaseWedge, Final: u(LeftComplement)},

	LeftBulkExpansion:    {Left: u(LeftBulkDual), Base: BaseWedge},
	RightBulkExpansion:   {Right: u(RightBulkDual), Base: BaseWedge},
	LeftWeightExpansion:  {Left: u(LeftWeightDual), Base: BaseWedge},
	RightWeightExpansion: {Right: u(RightWeightDual), Base: BaseWedge},

	Sandwich:           {Inner: Geometric, Reverse: Reverse},
	RegressiveSandwich: {Inner: RegressiveGeometric, Reverse: RegressiveReverse},
}

// Types returns the product catalogue in canonical order.
func Types() []ProductType { return append([]ProductType(nil), order...) }

// Lookup returns the recipe for pt.
func Lookup(pt ProductType) (Recipe, bool) {
	r, ok := recipes[pt]

	return r, ok
}
