// SPDX-License-Identifier: MIT
package subst_test

import (
	"fmt"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
	"github.com/Daniel-G-W-Hug/ga-sub006/rules"
	"github.com/Daniel-G-W-Hug/ga-sub006/subst"
)

// ExampleApply substitutes two plane vectors into the geometric product:
// the scalar part is the dot product, the bivector part the wedge.
func ExampleApply() {
	b, err := basis.New(basis.Signature{P: 2}, basis.WithNames("1", "e1", "e2", "e12"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v1, _ := subst.ParseVector("v1", b, []string{"_", "x1", "y1", "_"})
	v2, _ := subst.ParseVector("v2", b, []string{"_", "x2", "y2", "_"})

	res, err := subst.Apply("gpr", rules.Geometric(b), v1, v2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, e := range res.Strings() {
		fmt.Printf("%-3s : %s\n", b.Name(i), e)
	}
	// Output:
	// 1   : x1*x2 + y1*y2
	// e1  : 0
	// e2  : 0
	// e12 : x1*y2 - y1*x2
}
