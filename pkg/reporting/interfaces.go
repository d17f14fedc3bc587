package reporting

import "github.com/apalladino/pac-sim/internal/simulation"

// Package reporting renders sweep results; it holds no simulation logic.

// ConsoleReporter defines the interface for console output.
type ConsoleReporter interface {
	PrintResults(result *simulation.SweepResult, asset string)
	PrintRunLedger(run *simulation.InvestmentRun)
}

// FileReporter defines the interface for file output.
type FileReporter interface {
	WriteStatsCSV(result *simulation.SweepResult, path string) error
	WriteStatsXLSX(result *simulation.SweepResult, asset, path string) error
}

// ChartRenderer defines the interface for chart output.
type ChartRenderer interface {
	RenderReturnsChart(result *simulation.SweepResult, title string) ([]byte, error)
	RenderProbabilityChart(result *simulation.SweepResult, title string) ([]byte, error)
}

// Reporter combines all reporting interfaces.
type Reporter interface {
	ConsoleReporter
	FileReporter
	ChartRenderer
}

// ReportingConfig selects which outputs a sweep produces.
type ReportingConfig struct {
	EnableConsole bool
	EnableFiles   bool
	OutputDir     string
	CSVEnabled    bool
	ExcelEnabled  bool
	ChartsEnabled bool
}
