package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultInputPath, c.InputPath)
	assert.Equal(t, DefaultOutputPath, c.OutputPath)
	assert.Equal(t, "educ_occ_score", c.PredictorColumn)
	assert.Equal(t, "median_mortgage_repayment", c.OutcomeColumn)
	assert.Equal(t, int64(0), c.Seed)
	assert.Equal(t, 800, c.DPI)
	assert.Equal(t, 10.0, c.WidthIn)
	assert.Equal(t, 7.0, c.HeightIn)
	assert.Equal(t, 770.0, c.AnnotateX)
	assert.Equal(t, 40000.0, c.AnnotateY)
	assert.False(t, c.ShowBand)
	assert.Equal(t, "info", c.LogLevel)
}

func TestSaveAndLoadRoundTripWithEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	c.InputPath = "/data/in.csv"
	c.Seed = 42
	c.DPI = 96
	require.NoError(t, Save(c, ""))

	home, _ := os.UserHomeDir()
	_, err = os.Stat(filepath.Join(home, ".mortgage-econ", "config.yaml"))
	require.NoError(t, err)

	t.Setenv("MORTGAGE_ECON_OUTPUT_PATH", "/tmp/env.png")
	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/data/in.csv", got.InputPath)
	assert.Equal(t, int64(42), got.Seed)
	assert.Equal(t, 96, got.DPI)
	assert.Equal(t, "/tmp/env.png", got.OutputPath)
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("predictor_column: seifa\nshow_band: true\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "seifa", c.PredictorColumn)
	assert.True(t, c.ShowBand)
	assert.Equal(t, "median_mortgage_repayment", c.OutcomeColumn)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
