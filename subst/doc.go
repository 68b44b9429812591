// Package subst substitutes named symbolic coefficient vectors into a rule
// table and emits one symbolic expression per output blade.
//
// For a table T and coefficient vectors L and R, output blade k receives
//
//	Σ sign · L[i] · R[j]   over all (i, j) with T(i, j) = ±k
//
// Pairs whose entry vanishes or whose coefficient is absent on either side
// are skipped, never emitted as zero terms. Output blades without surviving
// terms hold the zero expression.
//
// Filters are named grade sets ("vec", "mv_e", ...). Masking a vector with a
// filter drops the coefficients outside it; Check reports a vector whose
// support leaves a filter.
//
// Sandwich runs the substitution twice: T(T(L, R), rev(L)), where rev is the
// reversion table passed by the caller.
package subst
