package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Default values applied before any config file or flag overrides.
const (
	DefaultSource        = "yahoo"
	DefaultDataDir       = "data"
	DefaultStartDate     = "1990-01-01"
	DefaultMonthlyAmount = 100.0
	DefaultThreshold     = 0.02 // representative inflation rate
	DefaultDurationStart = 1.0
	DefaultDurationStop  = 30.0
	DefaultDurationStep  = 1.0
)

// Config is the full configuration surface of a sweep: where prices come
// from, the investment parameters, and how sampling behaves.
type Config struct {
	// Asset is the id the provider understands: a ticker for yahoo, a file
	// stem for csv.
	Asset string `json:"asset"`

	// Source selects the price provider: "yahoo" or "csv".
	Source string `json:"source"`

	// DataDir is the directory holding <asset>.csv files for the csv source.
	DataDir string `json:"data_dir"`

	// StartDate bounds the fetched history, formatted 2006-01-02.
	StartDate string `json:"start_date"`

	// MonthlyAmount is the fixed contribution per period.
	MonthlyAmount float64 `json:"monthly_amount"`

	// Durations is the explicit grid in years. When empty, the grid is built
	// from DurationStart/DurationStop/DurationStep instead.
	Durations     []float64 `json:"durations,omitempty"`
	DurationStart float64   `json:"duration_start"`
	DurationStop  float64   `json:"duration_stop"`
	DurationStep  float64   `json:"duration_step"`

	// Simulations per duration; zero means exhaustive enumeration of every
	// valid starting point.
	Simulations int `json:"simulations"`

	// Threshold is the reference annualized return for the exceedance
	// probability, e.g. an inflation rate.
	Threshold float64 `json:"threshold"`

	// Seed drives reproducible stochastic starting-point selection.
	Seed int64 `json:"seed"`

	// Workers caps sweep parallelism across durations; negative uses all CPUs.
	Workers int `json:"workers"`

	// SkipShortDurations omits durations too long for the history instead of
	// failing the whole sweep.
	SkipShortDurations bool `json:"skip_short_durations"`

	// MetricsAddr, when set, exposes Prometheus metrics on that address for
	// the lifetime of the sweep.
	MetricsAddr string `json:"metrics_addr,omitempty"`
}

// NewDefaultConfig returns a config with all defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		Source:             DefaultSource,
		DataDir:            DefaultDataDir,
		StartDate:          DefaultStartDate,
		MonthlyAmount:      DefaultMonthlyAmount,
		DurationStart:      DefaultDurationStart,
		DurationStop:       DefaultDurationStop,
		DurationStep:       DefaultDurationStep,
		Threshold:          DefaultThreshold,
		Workers:            1,
		Seed:               42,
		SkipShortDurations: true,
	}
}

// Load reads a JSON config file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Start parses the configured start date.
func (c *Config) Start() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q: %w", c.StartDate, err)
	}
	return t, nil
}

// DurationGrid returns the explicit grid when present, otherwise expands
// start/stop/step into an ascending grid, stop included.
func (c *Config) DurationGrid() []float64 {
	if len(c.Durations) > 0 {
		out := make([]float64, len(c.Durations))
		copy(out, c.Durations)
		return out
	}

	var grid []float64
	// Half-step tolerance keeps the stop value in despite float stepping.
	for y := c.DurationStart; y <= c.DurationStop+c.DurationStep/2; y += c.DurationStep {
		grid = append(grid, y)
	}
	return grid
}
