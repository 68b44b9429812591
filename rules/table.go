// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"
	"strings"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
)

// Table is a row-major n×n rule table over one basis: cell (i, j) holds the
// product of blade i (left) with blade j (right).
type Table struct {
	name  string
	basis *basis.Basis
	n     int           // number of blades
	cells []SignedBlade // flat backing storage, len == n*n
}

// newTable allocates an all-zero table over b.
// Complexity: O(n^2) time and memory.
func newTable(name string, b *basis.Basis) *Table {
	n := b.Len()

	return &Table{name: name, basis: b, n: n, cells: make([]SignedBlade, n*n)}
}

// NewTable builds a table by evaluating fill for every blade pair, in row
// order. Composition pipelines use it to materialize derived products.
// Complexity: O(n^2) calls to fill.
func NewTable(name string, b *basis.Basis, fill func(i, j int) SignedBlade) *Table {
	t := newTable(name, b)
	for i := 0; i < t.n; i++ {
		for j := 0; j < t.n; j++ {
			t.cells[i*t.n+j] = normalize(fill(i, j))
		}
	}

	return t
}

func normalize(s SignedBlade) SignedBlade {
	if s.Sign == 0 {
		return zero
	}

	return s
}

// Name returns the product key the table was built for.
func (t *Table) Name() string { return t.name }

// Basis returns the basis the table is indexed by.
func (t *Table) Basis() *basis.Basis { return t.basis }

// Len returns the number of blades per axis.
func (t *Table) Len() int { return t.n }

// indexOf computes the flat index for (i, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (t *Table) indexOf(i, j int) (int, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, fmt.Errorf("Table.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return i*t.n + j, nil
}

// At returns the entry for (blade i) ∘ (blade j).
// Complexity: O(1).
func (t *Table) At(i, j int) (SignedBlade, error) {
	idx, err := t.indexOf(i, j)
	if err != nil {
		return zero, err
	}

	return t.cells[idx], nil
}

// at is the unchecked accessor for in-package loops over [0, n).
func (t *Table) at(i, j int) SignedBlade { return t.cells[i*t.n+j] }

// Equal reports whether both tables share a basis and hold identical cells.
func (t *Table) Equal(o *Table) bool {
	if t.basis != o.basis || t.n != o.n {
		return false
	}
	for k := range t.cells {
		if t.cells[k] != o.cells[k] {
			return false
		}
	}

	return true
}

// Labels returns the table as display strings, row by row.
func (t *Table) Labels() [][]string {
	out := make([][]string, t.n)
	for i := 0; i < t.n; i++ {
		row := make([]string, t.n)
		for j := 0; j < t.n; j++ {
			row[j] = t.at(i, j).Label(t.basis)
		}
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer for debugging.
// Complexity: O(n^2).
func (t *Table) String() string {
	var sb strings.Builder
	for _, row := range t.Labels() {
		sb.WriteString("[")
		sb.WriteString(strings.Join(row, ", "))
		sb.WriteString("]\n")
	}

	return sb.String()
}
