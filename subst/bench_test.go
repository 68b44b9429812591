// SPDX-License-Identifier: MIT
package subst_test

import (
	"fmt"
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
	"github.com/Daniel-G-W-Hug/ga-sub006/compose"
	"github.com/Daniel-G-W-Hug/ga-sub006/subst"
)

// sinks to defeat dead-code elimination
var (
	sinkV subst.Vector
	sinkT subst.Vector
)

var benchSignatures = []basis.Signature{{P: 2}, {P: 3}, {P: 2, Z: 1}, {P: 3, Z: 1}}

func generalVector(b testing.TB, name string, bs *basis.Basis) subst.Vector {
	b.Helper()
	lits := make([]string, bs.Len())
	for i := range lits {
		lits[i] = fmt.Sprintf("%s.c%d", name, i)
	}
	v, err := subst.ParseVector(name, bs, lits)
	if err != nil {
		b.Fatal(err)
	}

	return v
}

func BenchmarkApply(b *testing.B) {
	b.ReportAllocs()
	for _, sig := range benchSignatures {
		bs, err := basis.New(sig)
		if err != nil {
			b.Fatal(err)
		}
		e, err := compose.New(bs)
		if err != nil {
			b.Fatal(err)
		}
		tbl, err := e.Table(compose.Geometric)
		if err != nil {
			b.Fatal(err)
		}
		A, B := generalVector(b, "A", bs), generalVector(b, "B", bs)
		b.Run(fmt.Sprintf("sig=%s", sig), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkV, _ = subst.Apply("gpr", tbl, A, B)
			}
		})
	}
}

func BenchmarkSandwich(b *testing.B) {
	b.ReportAllocs()
	for _, sig := range benchSignatures {
		bs, err := basis.New(sig)
		if err != nil {
			b.Fatal(err)
		}
		e, err := compose.New(bs)
		if err != nil {
			b.Fatal(err)
		}
		tbl, rev, err := e.Sandwich(compose.Sandwich)
		if err != nil {
			b.Fatal(err)
		}
		even := subst.Filter{Name: "mv_e", Grades: []int{0, 2, 4}}
		R := generalVector(b, "R", bs).Masked(even)
		v := generalVector(b, "v", bs).Masked(subst.Filter{Name: "vec", Grades: []int{1}})
		b.Run(fmt.Sprintf("sig=%s", sig), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkV, sinkT, _ = subst.Sandwich("r", tbl, rev, R, v)
			}
		})
	}
}
