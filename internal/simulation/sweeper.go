package simulation

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/apalladino/pac-sim/pkg/types"
)

// SkipPolicy decides what the sweeper does with durations too long for the
// available history.
type SkipPolicy int

const (
	// SkipMissingDurations omits the duration from the table and reports the
	// omission through SweepResult.Skipped.
	SkipMissingDurations SkipPolicy = iota
	// AbortOnMissingDuration fails the whole sweep instead.
	AbortOnMissingDuration
)

// Sweeper runs the sampler once per duration of a grid and aggregates one
// DurationStatistics per duration. Durations are independent of each other,
// so the sweep can fan out across workers.
type Sweeper struct {
	Sampler *Sampler

	// NumSimulations per duration; zero means exhaustive.
	NumSimulations int

	// Threshold is the reference annualized return for ProbAboveThreshold.
	Threshold float64

	// Workers caps parallelism across durations. Zero or one runs serially,
	// negative uses one worker per CPU.
	Workers int

	Policy SkipPolicy
}

// NewSweeper returns a serial sweeper with exhaustive sampling.
func NewSweeper(sampler *Sampler) *Sweeper {
	return &Sweeper{Sampler: sampler}
}

// SweepResult is the outcome of one full sweep. Skipped lists durations that
// were omitted under SkipMissingDurations; it is never populated silently, a
// caller can always tell a skip from a computed entry.
type SweepResult struct {
	Table   *Table
	Skipped []float64
}

type durationOutcome struct {
	idx   int
	stats DurationStatistics
	err   error
}

// SweepDurations samples and summarizes every duration of the grid, in grid
// order. The grid must be non-empty with strictly positive durations.
func (sw *Sweeper) SweepDurations(series *types.PriceSeries, grid []float64) (*SweepResult, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty duration grid", ErrInvalidConfig)
	}
	for _, years := range grid {
		if years <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive, got %.2f years", ErrInvalidConfig, years)
		}
	}

	outcomes := make([]durationOutcome, len(grid))
	workers := sw.workerCount(len(grid))
	if workers <= 1 {
		for i, years := range grid {
			outcomes[i] = sw.runDuration(series, i, years)
		}
	} else {
		sw.runParallel(series, grid, workers, outcomes)
	}

	// Assemble in grid order regardless of completion order.
	result := &SweepResult{Table: NewTable()}
	for i, years := range grid {
		out := outcomes[i]
		if out.err == nil {
			result.Table.Add(out.stats)
			continue
		}
		if errors.Is(out.err, ErrNoValidStartingPoint) && sw.Policy == SkipMissingDurations {
			result.Skipped = append(result.Skipped, years)
			continue
		}
		return nil, fmt.Errorf("sweep at %.1f years: %w", years, out.err)
	}

	return result, nil
}

func (sw *Sweeper) runDuration(series *types.PriceSeries, idx int, years float64) durationOutcome {
	returns, err := sw.Sampler.SampleReturns(series, years, sw.NumSimulations)
	if err != nil {
		return durationOutcome{idx: idx, err: err}
	}
	stats, err := Summarize(returns, years, sw.Threshold)
	return durationOutcome{idx: idx, stats: stats, err: err}
}

func (sw *Sweeper) runParallel(series *types.PriceSeries, grid []float64, workers int, outcomes []durationOutcome) {
	jobs := make(chan int, len(grid))
	results := make(chan durationOutcome, len(grid))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results <- sw.runDuration(series, idx, grid[idx])
			}
		}()
	}

	for idx := range grid {
		jobs <- idx
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	for out := range results {
		outcomes[out.idx] = out
	}
}

func (sw *Sweeper) workerCount(jobCount int) int {
	workers := sw.Workers
	if workers < 0 {
		workers = runtime.NumCPU()
	}
	if workers > jobCount {
		workers = jobCount
	}
	return workers
}
