package reporting

import (
	"path/filepath"

	"github.com/apalladino/pac-sim/internal/simulation"
)

// DefaultReporter bundles console, file and chart output behind the Reporter
// interface.
type DefaultReporter struct {
	console *DefaultConsoleReporter
	csv     *DefaultCSVReporter
	excel   *DefaultExcelReporter
	charts  *DefaultChartRenderer
	paths   *DefaultPathManager
}

// NewDefaultReporter creates a reporter with all output formats wired.
func NewDefaultReporter() *DefaultReporter {
	return &DefaultReporter{
		console: NewDefaultConsoleReporter(),
		csv:     NewDefaultCSVReporter(),
		excel:   NewDefaultExcelReporter(),
		charts:  NewDefaultChartRenderer(),
		paths:   NewDefaultPathManager(),
	}
}

func (r *DefaultReporter) PrintResults(result *simulation.SweepResult, asset string) {
	r.console.PrintResults(result, asset)
}

func (r *DefaultReporter) PrintRunLedger(run *simulation.InvestmentRun) {
	r.console.PrintRunLedger(run)
}

func (r *DefaultReporter) WriteStatsCSV(result *simulation.SweepResult, path string) error {
	return r.csv.WriteStatsCSV(result, path)
}

func (r *DefaultReporter) WriteStatsXLSX(result *simulation.SweepResult, asset, path string) error {
	return r.excel.WriteStatsXLSX(result, asset, path)
}

func (r *DefaultReporter) RenderReturnsChart(result *simulation.SweepResult, title string) ([]byte, error) {
	return r.charts.RenderReturnsChart(result, title)
}

func (r *DefaultReporter) RenderProbabilityChart(result *simulation.SweepResult, title string) ([]byte, error) {
	return r.charts.RenderProbabilityChart(result, title)
}

func (r *DefaultReporter) GetDefaultOutputDir(asset string) string {
	return r.paths.GetDefaultOutputDir(asset)
}

// ReportingManager drives all configured outputs for one sweep result.
type ReportingManager struct {
	reporter *DefaultReporter
	config   ReportingConfig
}

// NewReportingManager creates a reporting manager with the given configuration.
func NewReportingManager(config ReportingConfig) *ReportingManager {
	return &ReportingManager{
		reporter: NewDefaultReporter(),
		config:   config,
	}
}

// ReportResults emits the sweep result through every enabled output.
func (m *ReportingManager) ReportResults(result *simulation.SweepResult, asset string) error {
	if m.config.EnableConsole {
		m.reporter.PrintResults(result, asset)
	}

	if !m.config.EnableFiles {
		return nil
	}

	outputDir := m.config.OutputDir
	if outputDir == "" {
		outputDir = m.reporter.GetDefaultOutputDir(asset)
	}

	if m.config.CSVEnabled {
		if err := m.reporter.WriteStatsCSV(result, filepath.Join(outputDir, "duration_stats.csv")); err != nil {
			return err
		}
	}

	if m.config.ExcelEnabled {
		if err := m.reporter.WriteStatsXLSX(result, asset, filepath.Join(outputDir, "duration_stats.xlsx")); err != nil {
			return err
		}
	}

	if m.config.ChartsEnabled {
		img, err := m.reporter.RenderReturnsChart(result, asset+" periodic investment returns")
		if err != nil {
			return err
		}
		if err := SaveChart(img, filepath.Join(outputDir, ChartFileName(asset, "returns"))); err != nil {
			return err
		}

		img, err = m.reporter.RenderProbabilityChart(result, asset+" probability of positive net return")
		if err != nil {
			return err
		}
		if err := SaveChart(img, filepath.Join(outputDir, ChartFileName(asset, "probability"))); err != nil {
			return err
		}
	}

	return nil
}
