package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/apalladino/pac-sim/pkg/types"
)

// Calendar convention used throughout the engine: contributions land every
// 21 trading days and a simulated year spans 252 trading days. A duration in
// years therefore maps to round(years*12) monthly contributions, and the run
// is valued one stride after the last of them.
const (
	TradingDaysPerMonth = 21
	TradingDaysPerYear  = 252
)

// Contribution is one ledger entry of a simulated run, kept only in verbose mode.
type Contribution struct {
	Date        time.Time
	Price       float64
	Amount      float64
	UnitsBought float64
	UnitsHeld   float64
}

// InvestmentRun is the outcome of one simulated periodic-investment scenario.
// It is immutable once computed and never persisted.
type InvestmentRun struct {
	StartIndex    int
	StartDate     time.Time
	Years         float64
	MonthlyAmount float64

	Contributions int
	TotalInvested float64
	UnitsHeld     float64

	FinalIndex int
	FinalDate  time.Time
	FinalPrice float64
	FinalValue float64

	// NetReturn is the nominal return over the whole run,
	// finalValue/totalInvested - 1.
	NetReturn float64
	// AnnualizedReturn is the constant yearly growth rate that turns total
	// invested into final value over the run's duration. This is the figure
	// the rest of the engine consumes.
	AnnualizedReturn float64

	// Ledger holds the per-contribution history when the run was simulated
	// in verbose mode, nil otherwise.
	Ledger []Contribution
}

// ContributionCount converts a duration in years into the number of monthly
// contribution events.
func ContributionCount(years float64) int {
	return int(math.Round(years * 12))
}

// RequiredSpan returns how many observations a run of the given duration
// consumes from its starting index, final valuation day included.
func RequiredSpan(years float64) int {
	return TradingDaysPerMonth*ContributionCount(years) + 1
}

// SimulateRun computes the outcome of one periodic-investment run starting at
// startIndex: one contribution of monthlyAmount every 21 trading days,
// converted into asset units at that day's close, valued one stride after the
// last contribution. It is a pure function of its inputs.
//
// The call fails with ErrInsufficientHistory when the series does not contain
// enough observations after startIndex to cover the full duration.
func SimulateRun(series *types.PriceSeries, years float64, startIndex int, monthlyAmount float64) (*InvestmentRun, error) {
	return simulate(series, years, startIndex, monthlyAmount, false)
}

// SimulateRunVerbose behaves exactly like SimulateRun but additionally fills
// the per-contribution ledger for inspection. The returned figures are identical.
func SimulateRunVerbose(series *types.PriceSeries, years float64, startIndex int, monthlyAmount float64) (*InvestmentRun, error) {
	return simulate(series, years, startIndex, monthlyAmount, true)
}

func simulate(series *types.PriceSeries, years float64, startIndex int, monthlyAmount float64, verbose bool) (*InvestmentRun, error) {
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("%w: empty price series", ErrInvalidConfig)
	}
	if years <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %.2f years", ErrInvalidConfig, years)
	}
	if monthlyAmount <= 0 {
		return nil, fmt.Errorf("%w: monthly amount must be positive, got %.2f", ErrInvalidConfig, monthlyAmount)
	}
	if startIndex < 0 || startIndex >= series.Len() {
		return nil, fmt.Errorf("%w: starting index %d outside series of length %d", ErrInvalidConfig, startIndex, series.Len())
	}

	contributions := ContributionCount(years)
	if contributions == 0 {
		return nil, fmt.Errorf("%w: duration %.3f years is shorter than one contribution period", ErrInvalidConfig, years)
	}

	finalIndex := startIndex + TradingDaysPerMonth*contributions
	if finalIndex > series.Len()-1 {
		return nil, fmt.Errorf("%w: run from index %d needs %d observations, series has %d left",
			ErrInsufficientHistory, startIndex, RequiredSpan(years), series.Len()-startIndex)
	}

	run := &InvestmentRun{
		StartIndex:    startIndex,
		StartDate:     series.Date(startIndex),
		Years:         years,
		MonthlyAmount: monthlyAmount,
		Contributions: contributions,
	}
	if verbose {
		run.Ledger = make([]Contribution, 0, contributions)
	}

	units := 0.0
	invested := 0.0
	for c := 0; c < contributions; c++ {
		i := startIndex + c*TradingDaysPerMonth
		price := series.Price(i)
		bought := monthlyAmount / price
		units += bought
		invested += monthlyAmount

		if verbose {
			run.Ledger = append(run.Ledger, Contribution{
				Date:        series.Date(i),
				Price:       price,
				Amount:      monthlyAmount,
				UnitsBought: bought,
				UnitsHeld:   units,
			})
		}
	}

	run.UnitsHeld = units
	run.TotalInvested = invested
	run.FinalIndex = finalIndex
	run.FinalDate = series.Date(finalIndex)
	run.FinalPrice = series.Price(finalIndex)
	run.FinalValue = units * run.FinalPrice

	growth := run.FinalValue / run.TotalInvested
	run.NetReturn = growth - 1
	run.AnnualizedReturn = math.Pow(growth, 1/years) - 1

	return run, nil
}
