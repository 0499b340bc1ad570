package kstconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surmisekit/kst/blim"
	"github.com/surmisekit/kst/kstconfig"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := kstconfig.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, kstconfig.Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kst.yaml")
	content := "max_states: 500\nstrategy_order: [\"depth-first\"]\nblim_params:\n  g: 0.2\n  s: 0.3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := kstconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxStates)
	assert.Equal(t, []string{"depth-first"}, cfg.StrategyOrder)
	assert.Equal(t, blim.Params{G: 0.2, S: 0.3}, cfg.BLIMParams)
}

func TestLoad_OptionsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kst.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_states: 500\n"), 0o644))

	cfg, err := kstconfig.Load(path, kstconfig.WithMaxStates(999))
	require.NoError(t, err)
	assert.Equal(t, 999, cfg.MaxStates)
}

func TestLoad_ZeroMaxStatesOptionIsNoOp(t *testing.T) {
	cfg, err := kstconfig.Load("", kstconfig.WithMaxStates(0))
	require.NoError(t, err)
	assert.Equal(t, kstconfig.Default().MaxStates, cfg.MaxStates)
}
