// SPDX-License-Identifier: MIT

// Command prdxpr prints symbolic product expressions of geometric algebras.
//
//	prdxpr generate [algebra...]   emit every enabled product case
//	prdxpr list                    list algebras, products and cases
//	prdxpr table <algebra> <product>
//	prdxpr show <algebra>          basis, complements, duals, reversions
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Daniel-G-W-Hug/ga-sub006/algebra"
	"github.com/Daniel-G-W-Hug/ga-sub006/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configFile string

	// generate flags
	printTables bool
	parallel    bool

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "prdxpr",
	Short: "Symbolic product-expression generator for geometric algebras",
	Long: `prdxpr derives the basis product tables of ega2d, ega3d, pga2dp and pga3dp
and substitutes symbolic coefficient vectors into them. The output lists one
expression per basis blade and is meant to be transcribed into numeric code.

Environment: PRDXPR_ALGEBRAS, PRDXPR_PRINT_TABLES, PRDXPR_PARALLEL,
PRDXPR_CONFIG, PRDXPR_VERBOSE. Flags take precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = verbose
		}
		if cmd.Flags().Changed("config") {
			cfg.ConfigFile = configFile
		}

		zc := zap.NewProductionConfig()
		if cfg.Verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Extra YAML algebra file (adds or replaces algebras)")

	generateCmd.Flags().BoolVar(&printTables, "tables", true, "Print the basis product table once per product")
	generateCmd.Flags().BoolVar(&parallel, "parallel", false, "Process algebras concurrently")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(showCmd)
}

// loadRegistry returns the embedded algebras plus the configured extra file.
func loadRegistry() (*algebra.Registry, error) {
	reg, err := algebra.Default()
	if err != nil {
		return nil, err
	}
	if cfg.ConfigFile != "" {
		if err := reg.LoadFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
		logger.Debug("loaded algebra file", zap.String("path", cfg.ConfigFile))
	}

	return reg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
