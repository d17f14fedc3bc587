package reporting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vicanso/go-charts/v2"

	"github.com/apalladino/pac-sim/internal/simulation"
)

// DefaultChartRenderer renders sweep results as PNG line charts.
type DefaultChartRenderer struct{}

// NewDefaultChartRenderer creates a new chart renderer.
func NewDefaultChartRenderer() *DefaultChartRenderer {
	return &DefaultChartRenderer{}
}

// RenderReturnsChart draws the annualized return envelope per duration:
// median between the min and max of all simulated runs.
func (r *DefaultChartRenderer) RenderReturnsChart(result *simulation.SweepResult, title string) ([]byte, error) {
	stats := result.Table.Stats()
	if len(stats) == 0 {
		return nil, errors.New("no durations to chart")
	}

	xLabels := make([]string, 0, len(stats))
	minSeries := make([]float64, 0, len(stats))
	medianSeries := make([]float64, 0, len(stats))
	maxSeries := make([]float64, 0, len(stats))
	for _, s := range stats {
		xLabels = append(xLabels, fmt.Sprintf("%.0fy", s.Years))
		minSeries = append(minSeries, s.Min*100)
		medianSeries = append(medianSeries, s.Median*100)
		maxSeries = append(maxSeries, s.Max*100)
	}

	painter, err := charts.LineRender([][]float64{minSeries, medianSeries, maxSeries},
		charts.TitleTextOptionFunc(title),
		charts.XAxisDataOptionFunc(xLabels),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"min return", "median return", "max return"}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// RenderProbabilityChart draws the probability of a non-negative return and
// of beating the reference threshold, per duration.
func (r *DefaultChartRenderer) RenderProbabilityChart(result *simulation.SweepResult, title string) ([]byte, error) {
	stats := result.Table.Stats()
	if len(stats) == 0 {
		return nil, errors.New("no durations to chart")
	}

	threshold := stats[0].Threshold
	xLabels := make([]string, 0, len(stats))
	nominal := make([]float64, 0, len(stats))
	aboveThreshold := make([]float64, 0, len(stats))
	for _, s := range stats {
		xLabels = append(xLabels, fmt.Sprintf("%.0fy", s.Years))
		nominal = append(nominal, s.ProbNonNegative*100)
		aboveThreshold = append(aboveThreshold, s.ProbAboveThreshold*100)
	}

	painter, err := charts.LineRender([][]float64{nominal, aboveThreshold},
		charts.TitleTextOptionFunc(title),
		charts.XAxisDataOptionFunc(xLabels),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{
			"P(return ≥ 0)",
			fmt.Sprintf("P(return ≥ %.1f%%)", threshold*100),
		}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// SaveChart writes rendered chart bytes to a PNG file, creating directories
// as needed.
func SaveChart(img []byte, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, img, 0644)
}
