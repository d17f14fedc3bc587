package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/apalladino/pac-sim/pkg/config"
)

// PACFlags holds all command line flags for the backtest command.
type PACFlags struct {
	// Configuration
	ConfigFile *string
	Asset      *string
	Source     *string
	DataDir    *string
	StartDate  *string

	// Investment parameters
	MonthlyAmount *float64
	Durations     *string
	YearsStart    *float64
	YearsStop     *float64
	YearsStep     *float64

	// Sampling
	Simulations *int
	Threshold   *float64
	Seed        *int64
	Workers     *int
	FailFast    *bool

	// Single-run inspection
	InspectYears *float64
	InspectStart *int

	// Output options
	OutputDir   *string
	ConsoleOnly *bool
	NoCharts    *bool
	NoCSV       *bool
	NoExcel     *bool
	MetricsAddr *string
	EnvFile     *string

	// Help and version
	ShowVersion *bool
}

// NewPACFlags creates and registers all command line flags.
func NewPACFlags() *PACFlags {
	return &PACFlags{
		ConfigFile: flag.String("config", "", "Path to JSON configuration file"),
		Asset:      flag.String("asset", "", "Asset id (ticker for yahoo, file stem for csv)"),
		Source:     flag.String("source", config.DefaultSource, "Price source (yahoo, csv)"),
		DataDir:    flag.String("data-dir", config.DefaultDataDir, "Directory with <asset>.csv files for the csv source"),
		StartDate:  flag.String("start", config.DefaultStartDate, "Start of the fetched history (2006-01-02)"),

		MonthlyAmount: flag.Float64("amount", config.DefaultMonthlyAmount, "Fixed contribution per period"),
		Durations:     flag.String("durations", "", "Explicit duration grid in years, comma separated (overrides years-start/stop/step)"),
		YearsStart:    flag.Float64("years-start", config.DefaultDurationStart, "First duration of the grid in years"),
		YearsStop:     flag.Float64("years-stop", config.DefaultDurationStop, "Last duration of the grid in years"),
		YearsStep:     flag.Float64("years-step", config.DefaultDurationStep, "Grid step in years"),

		Simulations: flag.Int("simulations", 0, "Simulations per duration (0 = every valid starting point)"),
		Threshold:   flag.Float64("threshold", config.DefaultThreshold, "Reference annualized return for the exceedance probability (0.02 = 2%)"),
		Seed:        flag.Int64("seed", 42, "Random seed for reproducible sampling"),
		Workers:     flag.Int("workers", 1, "Parallel workers across durations (-1 = all CPUs)"),
		FailFast:    flag.Bool("fail-fast", false, "Abort the sweep when a duration does not fit the history instead of skipping it"),

		InspectYears: flag.Float64("inspect", 0, "Print the contribution ledger of a single run of this many years and exit"),
		InspectStart: flag.Int("inspect-start", 0, "Starting index of the inspected run"),

		OutputDir:   flag.String("output", "", "Output directory (default results/<ASSET>)"),
		ConsoleOnly: flag.Bool("console-only", false, "Console output only (no file output)"),
		NoCharts:    flag.Bool("no-charts", false, "Disable PNG chart output"),
		NoCSV:       flag.Bool("no-csv", false, "Disable CSV output"),
		NoExcel:     flag.Bool("no-xlsx", false, "Disable Excel output"),
		MetricsAddr: flag.String("metrics-addr", "", "Expose Prometheus metrics on this address during the sweep"),
		EnvFile:     flag.String("env", ".env", "Environment file path"),

		ShowVersion: flag.Bool("version", false, "Show version information"),
	}
}

// BuildConfig merges the config file (when given) with explicit flag
// overrides, flags winning.
func (f *PACFlags) BuildConfig() (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if *f.ConfigFile != "" {
		loaded, err := config.Load(*f.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var parseErr error
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "asset":
			cfg.Asset = *f.Asset
		case "source":
			cfg.Source = *f.Source
		case "data-dir":
			cfg.DataDir = *f.DataDir
		case "start":
			cfg.StartDate = *f.StartDate
		case "amount":
			cfg.MonthlyAmount = *f.MonthlyAmount
		case "durations":
			grid, err := parseDurations(*f.Durations)
			if err != nil {
				parseErr = err
				return
			}
			cfg.Durations = grid
		case "years-start":
			cfg.DurationStart = *f.YearsStart
		case "years-stop":
			cfg.DurationStop = *f.YearsStop
		case "years-step":
			cfg.DurationStep = *f.YearsStep
		case "simulations":
			cfg.Simulations = *f.Simulations
		case "threshold":
			cfg.Threshold = *f.Threshold
		case "seed":
			cfg.Seed = *f.Seed
		case "workers":
			cfg.Workers = *f.Workers
		case "fail-fast":
			cfg.SkipShortDurations = !*f.FailFast
		case "metrics-addr":
			cfg.MetricsAddr = *f.MetricsAddr
		}
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseDurations(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	grid := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		y, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		grid = append(grid, y)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("empty duration list")
	}
	return grid, nil
}
