// Package generate drives the product-expression generator.
//
// For every requested algebra the Generator builds the algebra from the
// registry, then walks its product definitions in order. A definition is
// resolved completely before anything is written: product table, coefficient
// vectors, filters and every enabled case result. If any of these fails, the
// whole definition is skipped; a diagnostic line
//
//	// skipped <algebra>/<product>: <error>
//
// is written to the output, a warning is logged, and generation continues
// with the next definition. An algebra that cannot be built at all (invalid
// signature or basis) is skipped the same way and its error is returned
// from All after the remaining algebras have been written.
//
// With WithParallel(true) algebras are processed concurrently. Output is
// buffered per algebra and written in request order, so the text is
// byte-identical to a sequential run.
package generate
