// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/Daniel-G-W-Hug/ga-sub006/compose"
	"github.com/Daniel-G-W-Hug/ga-sub006/format"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered algebras with their products and cases",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var tableCmd = &cobra.Command{
	Use:   "table <algebra> <product>",
	Short: "Print the basis product table of one product",
	Long: `Prints the basis product table of a product: rows are left blades,
columns right blades, cells the signed result blade or 0. For the sandwich
products the inner product table is printed, followed by the reversion
applied to the rotor.`,
	Args: cobra.ExactArgs(2),
	RunE: runTable,
}

var showCmd = &cobra.Command{
	Use:   "show <algebra>",
	Short: "Print basis, complement, dual and reversion tables of an algebra",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, name := range reg.Names() {
		c, err := reg.Config(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s basis: %s\n", name, c.Signature, strings.Join(c.Basis, " "))
		for _, def := range c.Products {
			fmt.Fprintf(out, "  %s\n", def.Product)
			for _, pc := range def.Cases {
				state := ""
				if !pc.IsEnabled() {
					state = " (disabled)"
				}
				fmt.Fprintf(out, "    %-40s %s, %s%s\n", pc.Desc, pc.LHS, pc.RHS, state)
			}
		}
	}

	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	a, err := reg.Build(args[0])
	if err != nil {
		return err
	}
	pt := compose.ProductType(args[1])
	out := cmd.OutOrStdout()

	recipe, ok := compose.Lookup(pt)
	if ok && recipe.IsSandwich() {
		t, rev, err := a.Engine().Sandwich(pt)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, format.Table(t))
		fmt.Fprintln(out, format.Unary(rev))
		return nil
	}
	t, err := a.Engine().Table(pt)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, format.Table(t))

	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	a, err := reg.Build(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	b := a.Basis()

	fmt.Fprintf(out, "%s signature %s\n", a.Name(), b.Signature())
	fmt.Fprintln(out, format.Basis(b))
	for _, k := range a.Engine().Unaries() {
		u, err := a.Engine().Unary(k)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, format.Unary(u))
	}
	products := make([]string, 0)
	for _, pt := range a.Engine().Available() {
		products = append(products, string(pt))
	}
	fmt.Fprintf(out, "products: %s\n", strings.Join(products, " "))
	filters := make([]string, 0)
	for _, f := range a.Filters() {
		filters = append(filters, f.String())
	}
	fmt.Fprintf(out, "filters: %s\n", strings.Join(filters, " "))

	return nil
}
