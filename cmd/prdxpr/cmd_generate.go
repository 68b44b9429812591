// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/Daniel-G-W-Hug/ga-sub006/generate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateCmd = &cobra.Command{
	Use:   "generate [algebra...]",
	Short: "Emit the symbolic expressions of every enabled product case",
	Long: `Emits, for each requested algebra (default: PRDXPR_ALGEBRAS, else all),
every enabled product case as one expression per basis blade.

A product definition that references an unknown coefficient or filter key,
an unsupported product, or produces a result outside its declared kind is
skipped with a "// skipped" line; generation continues with the next one.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = cfg.Algebras
	}
	tables, par := cfg.PrintTables, cfg.Parallel
	if cmd.Flags().Changed("tables") {
		tables = printTables
	}
	if cmd.Flags().Changed("parallel") {
		par = parallel
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	gen := generate.New(reg,
		generate.WithLogger(logger),
		generate.WithTables(tables),
		generate.WithParallel(par))
	rep, err := gen.All(ctx, cmd.OutOrStdout(), names...)
	logger.Info("generation finished",
		zap.Int("algebras", rep.Algebras),
		zap.Int("emitted", rep.Emitted),
		zap.Int("disabled", rep.Disabled),
		zap.Int("skipped", len(rep.Skipped)))

	return err
}
