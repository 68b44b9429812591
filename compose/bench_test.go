// SPDX-License-Identifier: MIT
package compose_test

import (
	"fmt"
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
	"github.com/Daniel-G-W-Hug/ga-sub006/compose"
)

// sink to defeat dead-code elimination
var sinkE *compose.Engine

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for _, sig := range []basis.Signature{{P: 2}, {P: 3}, {P: 2, Z: 1}, {P: 3, Z: 1}} {
		bs, err := basis.New(sig)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("sig=%s", sig), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkE, _ = compose.New(bs)
			}
		})
	}
}
