package reporting

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/apalladino/pac-sim/internal/simulation"
)

// DefaultCSVReporter implements CSV output of the statistics table.
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter.
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteStatsCSV writes one row per duration to a CSV file.
func (r *DefaultCSVReporter) WriteStatsCSV(result *simulation.SweepResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"Years",
		"Simulations",
		"Min_Return",
		"Median_Return",
		"Max_Return",
		"Mean_Return",
		"StdDev",
		"Prob_NonNegative",
		"Prob_Above_Threshold",
		"Threshold",
	}); err != nil {
		return err
	}

	for _, s := range result.Table.Stats() {
		row := []string{
			strconv.FormatFloat(s.Years, 'f', -1, 64),
			strconv.Itoa(s.Simulations),
			strconv.FormatFloat(s.Min, 'f', 6, 64),
			strconv.FormatFloat(s.Median, 'f', 6, 64),
			strconv.FormatFloat(s.Max, 'f', 6, 64),
			strconv.FormatFloat(s.Mean, 'f', 6, 64),
			strconv.FormatFloat(s.StdDev, 'f', 6, 64),
			strconv.FormatFloat(s.ProbNonNegative, 'f', 4, 64),
			strconv.FormatFloat(s.ProbAboveThreshold, 'f', 4, 64),
			strconv.FormatFloat(s.Threshold, 'f', 4, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
