package reporting

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apalladino/pac-sim/internal/simulation"
)

func sampleResult() *simulation.SweepResult {
	table := simulation.NewTable()
	table.Add(simulation.DurationStatistics{
		Years: 1, Simulations: 500,
		Min: -0.35, Median: 0.06, Max: 0.42, Mean: 0.055, StdDev: 0.12,
		ProbNonNegative: 0.71, ProbAboveThreshold: 0.63, Threshold: 0.02,
	})
	table.Add(simulation.DurationStatistics{
		Years: 5, Simulations: 400,
		Min: -0.08, Median: 0.05, Max: 0.18, Mean: 0.05, StdDev: 0.04,
		ProbNonNegative: 0.9, ProbAboveThreshold: 0.82, Threshold: 0.02,
	})
	return &simulation.SweepResult{Table: table, Skipped: []float64{30}}
}

// TestWriteStatsCSV tests the CSV layout of the statistics table
func TestWriteStatsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "stats.csv")

	err := NewDefaultCSVReporter().WriteStatsCSV(sampleResult(), path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Years", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "5", rows[2][0])
	assert.Equal(t, "500", rows[1][1])
}

// TestWriteStatsXLSX tests that the workbook is written with both sheets
func TestWriteStatsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.xlsx")

	err := NewDefaultExcelReporter().WriteStatsXLSX(sampleResult(), "ACME", path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// TestRenderCharts tests that both charts render to non-empty PNGs
func TestRenderCharts(t *testing.T) {
	renderer := NewDefaultChartRenderer()

	img, err := renderer.RenderReturnsChart(sampleResult(), "ACME returns")
	require.NoError(t, err)
	assert.NotEmpty(t, img)

	img, err = renderer.RenderProbabilityChart(sampleResult(), "ACME probability")
	require.NoError(t, err)
	assert.NotEmpty(t, img)
}

// TestRenderCharts_EmptyTable tests rejection of an empty result
func TestRenderCharts_EmptyTable(t *testing.T) {
	empty := &simulation.SweepResult{Table: simulation.NewTable()}

	_, err := NewDefaultChartRenderer().RenderReturnsChart(empty, "x")
	assert.Error(t, err)
}

// TestDefaultOutputDir tests output path construction
func TestDefaultOutputDir(t *testing.T) {
	assert.Equal(t, filepath.Join("results", "ACME"), DefaultOutputDir("acme "))
	assert.Equal(t, filepath.Join("results", "UNKNOWN"), DefaultOutputDir(""))
	assert.Equal(t, "acme_returns.png", ChartFileName(" ACME", "returns"))
}

// TestReportingManager_FilesDisabled tests the console-only path
func TestReportingManager_FilesDisabled(t *testing.T) {
	manager := NewReportingManager(ReportingConfig{EnableConsole: false, EnableFiles: false})
	assert.NoError(t, manager.ReportResults(sampleResult(), "ACME"))
}

// TestReportingManager_WritesFiles tests the full file output path
func TestReportingManager_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	manager := NewReportingManager(ReportingConfig{
		EnableFiles:   true,
		OutputDir:     dir,
		CSVEnabled:    true,
		ExcelEnabled:  true,
		ChartsEnabled: true,
	})

	require.NoError(t, manager.ReportResults(sampleResult(), "ACME"))

	for _, name := range []string{"duration_stats.csv", "duration_stats.xlsx", "acme_returns.png", "acme_probability.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
