// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/Daniel-G-W-Hug/ga-sub006/basis"
	"github.com/Daniel-G-W-Hug/ga-sub006/rules"
	"github.com/Daniel-G-W-Hug/ga-sub006/subst"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// CommentPrefix starts every non-expression line.
const CommentPrefix = "// "

var cell = lipgloss.NewStyle().Padding(0, 1)

func grid(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.ASCIIBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell }).
		Headers(headers...).
		Rows(rows...).
		String()
}

// Table renders a rule table: rows are left blades, columns right blades.
func Table(t *rules.Table) string {
	names := t.Basis().Names()
	labels := t.Labels()
	rows := make([][]string, len(labels))
	for i, r := range labels {
		rows[i] = append([]string{names[i]}, r...)
	}

	return grid(append([]string{t.Name()}, names...), rows)
}

// Unary renders a unary table as blade / image pairs.
func Unary(u *rules.Unary) string {
	labels := u.Labels()
	rows := make([][]string, len(labels))
	for i, l := range labels {
		rows[i] = []string{l[0], l[1]}
	}

	return grid([]string{"blade", u.Name()}, rows)
}

// Basis renders the blades of b with their grades and generator masks.
func Basis(b *basis.Basis) string {
	rows := make([][]string, 0, b.Len())
	for _, bl := range b.Blades() {
		rows = append(rows, []string{
			fmt.Sprint(bl.Index), bl.Name, fmt.Sprint(bl.Grade), fmt.Sprintf("%0*b", b.Dim(), bl.Mask),
		})
	}

	return grid([]string{"#", "blade", "grade", "mask"}, rows)
}

// Comment prefixes every line of s with CommentPrefix.
func Comment(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(CommentPrefix+l, " ")
	}

	return strings.Join(lines, "\n") + "\n"
}

// Algebra writes the banner opening an algebra's section.
func Algebra(w io.Writer, name string, b *basis.Basis) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s\n", CommentPrefix, strings.Repeat("=", 72))
	fmt.Fprintf(&sb, "%s%s: signature %s\n", CommentPrefix, name, b.Signature())
	fmt.Fprintf(&sb, "%sbasis: %s\n", CommentPrefix, strings.Join(b.Names(), " "))
	fmt.Fprintf(&sb, "%s%s\n\n", CommentPrefix, strings.Repeat("=", 72))
	_, err := io.WriteString(w, sb.String())

	return err
}

// Product writes the header of one product definition, followed by its
// table when t is not nil.
func Product(w io.Writer, algebra, product string, t *rules.Table) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s/%s\n", CommentPrefix, algebra, product)
	if t != nil {
		sb.WriteString(Comment(Table(t)))
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())

	return err
}

// Case writes one case block: the header, the call line and one line per
// output blade. Blades with no surviving terms print "0".
//
//	// vec * vec -> mv_e
//	gpr(v1, v2):
//	    1   : x1*x2 + y1*y2
//	    e1  : 0
func Case(w io.Writer, header, call string, v subst.Vector) error {
	b := v.Basis()
	width := 0
	for _, n := range b.Names() {
		if len(n) > width {
			width = len(n)
		}
	}
	var sb strings.Builder
	if header != "" {
		fmt.Fprintf(&sb, "%s%s\n", CommentPrefix, header)
	}
	fmt.Fprintf(&sb, "%s:\n", call)
	for i, e := range v.Strings() {
		fmt.Fprintf(&sb, "    %-*s : %s\n", width, b.Name(i), e)
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())

	return err
}

// Skipped writes the diagnostic line of a skipped product definition.
func Skipped(w io.Writer, algebra, product string, cause error) error {
	_, err := fmt.Fprintf(w, "%sskipped %s/%s: %v\n\n", CommentPrefix, algebra, product, cause)

	return err
}
