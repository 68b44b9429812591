// Package ga generates the symbolic product expressions of small geometric
// algebras, for transcription into numeric geometric-algebra libraries.
//
// What is it?
//
//	A deterministic, table-driven generator that brings together:
//		• Basis model: signature (P,N,Z), oriented blade names (e31, e321)
//		• Rule tables: geometric product, wedge, dot, commutator
//		• Complements and duals: right/left complement, bulk/weight duals
//		• Composed products: regressive wedge/dot/geometric, contractions,
//		  expansions and their bulk/weight variants
//		• Symbolic substitution: named coefficient vectors, grade filters,
//		  rotor and motor sandwiches with like-term collection
//
// Packages:
//
//	basis/    Signature, Blade, Basis (display order and orientation)
//	rules/    Table and Unary: geometric/wedge/dot/commutator, complements, duals
//	compose/  product catalogue: recipe per ProductType, tables built once
//	expr/     integer-coefficient sums of products
//	subst/    coefficient vectors, filters, Apply and Sandwich
//	algebra/  YAML registry of ega2d, ega3d, pga2dp and pga3dp
//	format/   text output: tables, case blocks, skip diagnostics
//	generate/ driver with skip-and-report policy and parallel mode
//	config/   PRDXPR_* environment configuration
//	cmd/prdxpr/ command-line front end
//
// Quick example (ega2d, two vectors):
//
//	gpr(v1, v2):
//	    1   : x1*x2 + y1*y2
//	    e1  : 0
//	    e2  : 0
//	    e12 : x1*y2 - y1*x2
//
//	go run ./cmd/prdxpr generate ega2d
package ga
