package simulation

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DurationStatistics reduces one empirical return sample to a compact
// descriptive record for a single duration. All return figures are annualized
// net returns (0.05 = 5% per year).
type DurationStatistics struct {
	Years       float64
	Simulations int

	Min    float64
	Max    float64
	Median float64
	Mean   float64
	StdDev float64

	// ProbNonNegative is the fraction of runs with a return of at least zero.
	ProbNonNegative float64
	// ProbAboveThreshold is the fraction of runs with a return of at least
	// Threshold, typically a representative inflation rate.
	ProbAboveThreshold float64
	Threshold          float64
}

// Summarize computes the descriptive record for one return sample. It is pure
// and deterministic; an empty sample fails with ErrEmptySample rather than
// producing a zero statistic.
func Summarize(returns []float64, years, threshold float64) (DurationStatistics, error) {
	if len(returns) == 0 {
		return DurationStatistics{}, fmt.Errorf("%w: no returns for %.1f-year duration", ErrEmptySample, years)
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	nonNegative := 0
	aboveThreshold := 0
	for _, r := range returns {
		if r >= 0 {
			nonNegative++
		}
		if r >= threshold {
			aboveThreshold++
		}
	}

	n := len(sorted)
	return DurationStatistics{
		Years:              years,
		Simulations:        n,
		Min:                sorted[0],
		Max:                sorted[n-1],
		Median:             median(sorted),
		Mean:               stat.Mean(sorted, nil),
		StdDev:             sampleStdDev(sorted),
		ProbNonNegative:    float64(nonNegative) / float64(n),
		ProbAboveThreshold: float64(aboveThreshold) / float64(n),
		Threshold:          threshold,
	}, nil
}

// median expects a sorted slice; even-sized samples average the two middle values.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func sampleStdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}
