// Package rules builds the blade-level rule tables of a geometric algebra.
//
// A Table maps every ordered pair of basis blades (A, B) to a SignedBlade:
// the resulting blade and a sign in {+1, -1, 0}. A Unary maps every blade to
// a SignedBlade and represents complements, duals, projections and reversion.
//
// Construction order follows the data dependencies:
//
//	Geometric(basis)         bubble-sort product with metric contraction
//	Wedge(gpr), Dot(gpr)     grade filters over the geometric table
//	Commutator(gpr)          antisymmetric part of the geometric table
//	RightComplement(wdg),
//	LeftComplement(wdg)      solved from the wedge table
//	BulkDuals, WeightDuals   degenerate algebras only (Z = 1)
//
// All tables are write-once: they are filled by their constructor and only
// read afterwards, so they may be shared freely between goroutines.
package rules
