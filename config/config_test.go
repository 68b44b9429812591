// SPDX-License-Identifier: MIT
package config_test

import (
	"testing"

	"github.com/Daniel-G-W-Hug/ga-sub006/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, config.Config{PrintTables: true}, cfg)
}

func TestLoadFrom_Values(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"PRDXPR_ALGEBRAS":     "ega2d,pga3dp",
		"PRDXPR_PRINT_TABLES": "false",
		"PRDXPR_PARALLEL":     "true",
		"PRDXPR_CONFIG":       "extra.yaml",
		"PRDXPR_VERBOSE":      "1",
	})
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Algebras:    []string{"ega2d", "pga3dp"},
		PrintTables: false,
		Parallel:    true,
		ConfigFile:  "extra.yaml",
		Verbose:     true,
	}, cfg)
}

func TestLoadFrom_BadBool(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"PRDXPR_PARALLEL": "sometimes"})
	require.Error(t, err)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("PRDXPR_ALGEBRAS", "ega3d")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"ega3d"}, cfg.Algebras)
}
