package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/apalladino/pac-sim/internal/simulation"
)

// DefaultConsoleReporter renders sweep results as console tables.
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter.
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// PrintResults renders one row per duration of the statistics table.
func (r *DefaultConsoleReporter) PrintResults(result *simulation.SweepResult, asset string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("PERIODIC INVESTMENT RETURNS: %s", asset))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Years", "Runs", "Min", "Median", "Max", "Mean", "StdDev", "P(≥0)", "P(≥thr)"})

	for _, s := range result.Table.Stats() {
		t.AppendRow(table.Row{
			fmt.Sprintf("%.0f", s.Years),
			s.Simulations,
			percent(s.Min),
			percent(s.Median),
			percent(s.Max),
			percent(s.Mean),
			percent(s.StdDev),
			percent(s.ProbNonNegative),
			percent(s.ProbAboveThreshold),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
	})

	t.Render()

	if len(result.Skipped) > 0 {
		fmt.Printf("⚠️  Skipped durations (not enough history): %v years\n", result.Skipped)
	}
	fmt.Println()
}

// PrintRunLedger renders the contribution ledger of one verbose run.
func (r *DefaultConsoleReporter) PrintRunLedger(run *simulation.InvestmentRun) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("RUN LEDGER: %.0f years from %s", run.Years, run.StartDate.Format("2006-01-02")))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Date", "Price", "Amount", "Units Bought", "Units Held"})
	for _, c := range run.Ledger {
		t.AppendRow(table.Row{
			c.Date.Format("2006-01-02"),
			fmt.Sprintf("%.2f", c.Price),
			fmt.Sprintf("%.2f", c.Amount),
			fmt.Sprintf("%.6f", c.UnitsBought),
			fmt.Sprintf("%.6f", c.UnitsHeld),
		})
	}
	t.Render()

	fmt.Printf("💰 Total Invested:     %.2f\n", run.TotalInvested)
	fmt.Printf("💰 Final Value:        %.2f (at %s)\n", run.FinalValue, run.FinalDate.Format("2006-01-02"))
	fmt.Printf("📈 Net Return:         %.2f%%\n", run.NetReturn*100)
	fmt.Printf("📈 Annualized Return:  %.2f%%\n", run.AnnualizedReturn*100)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
