package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.Asset = "VWCE.MI"
	return cfg
}

// TestValidate_Defaults tests that defaults plus an asset pass validation
func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

// TestValidate_Failures tests individual rejection reasons
func TestValidate_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing asset", func(c *Config) { c.Asset = "" }},
		{"unknown source", func(c *Config) { c.Source = "bloomberg" }},
		{"csv without dir", func(c *Config) { c.Source = "csv"; c.DataDir = "" }},
		{"bad start date", func(c *Config) { c.StartDate = "01/02/2020" }},
		{"non-positive amount", func(c *Config) { c.MonthlyAmount = 0 }},
		{"negative simulations", func(c *Config) { c.Simulations = -1 }},
		{"non-positive duration", func(c *Config) { c.Durations = []float64{1, 0} }},
		{"descending durations", func(c *Config) { c.Durations = []float64{5, 3} }},
		{"zero grid start", func(c *Config) { c.DurationStart = 0 }},
		{"stop before start", func(c *Config) { c.DurationStart = 10; c.DurationStop = 5 }},
		{"zero step", func(c *Config) { c.DurationStep = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// TestDurationGrid_Range tests grid expansion from start/stop/step
func TestDurationGrid_Range(t *testing.T) {
	cfg := validConfig()
	grid := cfg.DurationGrid()

	require.Len(t, grid, 30)
	assert.Equal(t, 1.0, grid[0])
	assert.Equal(t, 30.0, grid[29])

	cfg.DurationStart = 2
	cfg.DurationStop = 10
	cfg.DurationStep = 2
	assert.Equal(t, []float64{2, 4, 6, 8, 10}, cfg.DurationGrid())
}

// TestDurationGrid_Explicit tests that an explicit list wins over the range
func TestDurationGrid_Explicit(t *testing.T) {
	cfg := validConfig()
	cfg.Durations = []float64{1, 5, 10}

	assert.Equal(t, []float64{1, 5, 10}, cfg.DurationGrid())
}

// TestLoad tests JSON loading over defaults
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"asset": "SPY",
		"source": "csv",
		"data_dir": "testdata",
		"monthly_amount": 250,
		"durations": [1, 5, 10],
		"simulations": 1000,
		"seed": 7
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "SPY", cfg.Asset)
	assert.Equal(t, "csv", cfg.Source)
	assert.Equal(t, 250.0, cfg.MonthlyAmount)
	assert.Equal(t, []float64{1, 5, 10}, cfg.Durations)
	assert.Equal(t, 1000, cfg.Simulations)
	assert.Equal(t, int64(7), cfg.Seed)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultThreshold, cfg.Threshold)
}

// TestLoad_Invalid tests rejection of broken files
func TestLoad_Invalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err = Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"asset": ""}`), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}
