package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/apalladino/pac-sim/internal/simulation"
)

// DefaultExcelReporter implements Excel output of the statistics table.
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter.
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// ExcelStyles holds the style ids used across the workbook.
type ExcelStyles struct {
	HeaderStyle  int
	PercentStyle int
	BaseStyle    int
}

// WriteStatsXLSX writes the statistics table to a styled Excel workbook.
func (r *DefaultExcelReporter) WriteStatsXLSX(result *simulation.SweepResult, asset, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const sheet = "Duration Statistics"
	fx.SetSheetName(fx.GetSheetName(0), sheet)

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	headers := []string{"Years", "Simulations", "Min", "Median", "Max", "Mean", "StdDev", "P(>=0)", "P(>=threshold)", "Threshold"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	for i, s := range result.Table.Stats() {
		row := i + 2
		values := []interface{}{s.Years, s.Simulations, s.Min, s.Median, s.Max, s.Mean, s.StdDev, s.ProbNonNegative, s.ProbAboveThreshold, s.Threshold}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			fx.SetCellValue(sheet, cell, v)
			if col >= 2 {
				fx.SetCellStyle(sheet, cell, cell, styles.PercentStyle)
			} else {
				fx.SetCellStyle(sheet, cell, cell, styles.BaseStyle)
			}
		}
	}

	fx.SetColWidth(sheet, "A", "J", 14)

	// A second sheet records durations that were skipped for lack of history,
	// so a saved workbook never hides an omission.
	if len(result.Skipped) > 0 {
		const skippedSheet = "Skipped Durations"
		fx.NewSheet(skippedSheet)
		fx.SetCellValue(skippedSheet, "A1", "Years")
		fx.SetCellStyle(skippedSheet, "A1", "A1", styles.HeaderStyle)
		for i, y := range result.Skipped {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			fx.SetCellValue(skippedSheet, cell, y)
		}
	}

	return fx.SaveAs(path)
}

// createExcelStyles creates the workbook styles.
func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	percentFmt := "0.00%"
	styles.PercentStyle, err = fx.NewStyle(&excelize.Style{
		CustomNumFmt: &percentFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return styles, err
	}

	styles.BaseStyle, err = fx.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	return styles, err
}
