package simulation

import (
	"fmt"
	"math/rand"

	"github.com/apalladino/pac-sim/pkg/types"
)

// ProgressFunc is an optional observer invoked after each completed run,
// with the duration being sampled and the completed/total counts for it.
// When durations run in parallel, implementations are called concurrently
// from multiple goroutines and must synchronize themselves.
type ProgressFunc func(years float64, completed, total int)

// Sampler builds empirical return samples by replaying the simulator across
// many historical starting points of one series.
type Sampler struct {
	// MonthlyAmount is the fixed contribution per period. The annualized
	// return is invariant under scaling it, so 1.0 is fine when the caller
	// only wants normalized returns.
	MonthlyAmount float64

	// Seed makes stochastic starting-point selection reproducible. It has no
	// effect on exhaustive sampling.
	Seed int64

	// Progress, when set, observes every completed run.
	Progress ProgressFunc
}

// NewSampler returns a sampler with a unit contribution amount.
func NewSampler(seed int64) *Sampler {
	return &Sampler{MonthlyAmount: 1, Seed: seed}
}

// ValidStartingPoints returns how many indices of the series can start a
// full run of the given duration. Zero means the duration does not fit at all.
func ValidStartingPoints(series *types.PriceSeries, years float64) int {
	n := series.Len() - TradingDaysPerMonth*ContributionCount(years)
	if n < 0 {
		return 0
	}
	return n
}

// SampleReturns collects annualized net returns of runs of the given duration.
//
// When numSimulations is zero or at least the number of valid starting
// indices, every valid index is used exactly once: the result is exhaustive
// and deterministic regardless of the seed. Otherwise numSimulations starting
// indices are drawn uniformly without replacement, reproducibly for a fixed
// seed.
func (s *Sampler) SampleReturns(series *types.PriceSeries, years float64, numSimulations int) ([]float64, error) {
	if years <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %.2f years", ErrInvalidConfig, years)
	}

	valid := ValidStartingPoints(series, years)
	if valid == 0 {
		return nil, fmt.Errorf("%w: %.1f-year runs need %d observations, series %q has %d",
			ErrNoValidStartingPoint, years, RequiredSpan(years), series.Asset, series.Len())
	}

	starts := s.pickStartingPoints(valid, numSimulations)

	returns := make([]float64, 0, len(starts))
	for _, start := range starts {
		run, err := SimulateRun(series, years, start, s.MonthlyAmount)
		if err != nil {
			// Starting points were pre-validated above.
			return nil, fmt.Errorf("run at index %d: %w", start, err)
		}
		returns = append(returns, run.AnnualizedReturn)
		if s.Progress != nil {
			s.Progress(years, len(returns), len(starts))
		}
	}

	return returns, nil
}

func (s *Sampler) pickStartingPoints(valid, numSimulations int) []int {
	if numSimulations <= 0 || numSimulations >= valid {
		starts := make([]int, valid)
		for i := range starts {
			starts[i] = i
		}
		return starts
	}

	rng := rand.New(rand.NewSource(s.Seed))
	return rng.Perm(valid)[:numSimulations]
}
