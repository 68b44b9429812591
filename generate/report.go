// SPDX-License-Identifier: MIT

package generate

// Skip records one skipped product definition, or a whole algebra when
// Product is empty.
type Skip struct {
	Algebra string
	Product string
	Err     error
}

// Report summarizes a run.
type Report struct {
	Algebras int    // algebras written
	Emitted  int    // case blocks written
	Disabled int    // cases switched off in the configuration
	Skipped  []Skip // in output order
}

func (r *Report) add(o Report) {
	r.Algebras += o.Algebras
	r.Emitted += o.Emitted
	r.Disabled += o.Disabled
	r.Skipped = append(r.Skipped, o.Skipped...)
}
