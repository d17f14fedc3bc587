package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSweepDurations_FullGrid tests an exhaustive sweep over a grid that fits
func TestSweepDurations_FullGrid(t *testing.T) {
	// 15 years of history comfortably fits 1, 5 and 10 year runs.
	series := makeSeries(15*TradingDaysPerYear, func(i int) float64 {
		return 100 + 0.02*float64(i)
	})

	sweeper := NewSweeper(NewSampler(1))
	result, err := sweeper.SweepDurations(series, []float64{1, 5, 10})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Table.Len())
	assert.Empty(t, result.Skipped)
	assert.Equal(t, []float64{1, 5, 10}, result.Table.Durations())

	for _, years := range []float64{1, 5, 10} {
		stats, ok := result.Table.Get(years)
		require.True(t, ok)
		assert.Equal(t, ValidStartingPoints(series, years), stats.Simulations)
		assert.LessOrEqual(t, stats.Min, stats.Median)
		assert.LessOrEqual(t, stats.Median, stats.Max)
	}
}

// TestSweepDurations_SkipPolicy tests that oversized durations are reported,
// never silently filled in
func TestSweepDurations_SkipPolicy(t *testing.T) {
	series := constantSeries(3*TradingDaysPerYear, 100)

	sweeper := NewSweeper(NewSampler(1))
	result, err := sweeper.SweepDurations(series, []float64{1, 2, 5, 10})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Table.Len())
	assert.Equal(t, []float64{5, 10}, result.Skipped)

	_, ok := result.Table.Get(5)
	assert.False(t, ok)
}

// TestSweepDurations_AbortPolicy tests the fail-fast alternative
func TestSweepDurations_AbortPolicy(t *testing.T) {
	series := constantSeries(3*TradingDaysPerYear, 100)

	sweeper := NewSweeper(NewSampler(1))
	sweeper.Policy = AbortOnMissingDuration

	_, err := sweeper.SweepDurations(series, []float64{1, 10})
	assert.ErrorIs(t, err, ErrNoValidStartingPoint)
}

// TestSweepDurations_InvalidGrid tests grid validation
func TestSweepDurations_InvalidGrid(t *testing.T) {
	series := constantSeries(2*TradingDaysPerYear, 100)
	sweeper := NewSweeper(NewSampler(1))

	_, err := sweeper.SweepDurations(series, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = sweeper.SweepDurations(series, []float64{1, -2})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// TestSweepDurations_ParallelMatchesSerial tests that fanning out across
// workers changes nothing about the result
func TestSweepDurations_ParallelMatchesSerial(t *testing.T) {
	series := makeSeries(12*TradingDaysPerYear, func(i int) float64 {
		return 80 + float64(i%250)*0.4
	})
	grid := []float64{1, 2, 3, 5, 8}

	serial := NewSweeper(NewSampler(7))
	serialResult, err := serial.SweepDurations(series, grid)
	require.NoError(t, err)

	parallel := NewSweeper(NewSampler(7))
	parallel.Workers = 4
	parallelResult, err := parallel.SweepDurations(series, grid)
	require.NoError(t, err)

	assert.Equal(t, serialResult.Table.Durations(), parallelResult.Table.Durations())
	assert.Equal(t, serialResult.Table.Stats(), parallelResult.Table.Stats())
}

// TestSweepDurations_SeededSubsetParallel tests reproducibility under both
// random sampling and parallel execution
func TestSweepDurations_SeededSubsetParallel(t *testing.T) {
	series := makeSeries(10*TradingDaysPerYear, func(i int) float64 {
		return 60 + 0.05*float64(i)
	})
	grid := []float64{1, 2, 4}

	run := func() *SweepResult {
		sweeper := NewSweeper(NewSampler(123))
		sweeper.NumSimulations = 50
		sweeper.Workers = 3
		result, err := sweeper.SweepDurations(series, grid)
		require.NoError(t, err)
		return result
	}

	assert.Equal(t, run().Table.Stats(), run().Table.Stats())
}

// TestTable_Order tests insertion-order iteration
func TestTable_Order(t *testing.T) {
	table := NewTable()
	table.Add(DurationStatistics{Years: 10})
	table.Add(DurationStatistics{Years: 1})
	table.Add(DurationStatistics{Years: 5})

	assert.Equal(t, []float64{10, 1, 5}, table.Durations())
	assert.Equal(t, 3, table.Len())

	// Replacing keeps the original position.
	table.Add(DurationStatistics{Years: 1, Simulations: 9})
	assert.Equal(t, []float64{10, 1, 5}, table.Durations())
	s, ok := table.Get(1)
	require.True(t, ok)
	assert.Equal(t, 9, s.Simulations)
}
