package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidStartingPoints tests the size of the valid starting set
func TestValidStartingPoints(t *testing.T) {
	// One-year runs span 12*21 observations past the start.
	series := constantSeries(RequiredSpan(1), 100)
	assert.Equal(t, 1, ValidStartingPoints(series, 1))

	series = constantSeries(RequiredSpan(1)+9, 100)
	assert.Equal(t, 10, ValidStartingPoints(series, 1))

	series = constantSeries(50, 100)
	assert.Equal(t, 0, ValidStartingPoints(series, 1))
}

// TestSampleReturns_Exhaustive tests deterministic exhaustive enumeration
func TestSampleReturns_Exhaustive(t *testing.T) {
	series := makeSeries(3*TradingDaysPerYear, func(i int) float64 {
		return 100 + float64(i%17)
	})
	valid := ValidStartingPoints(series, 1)
	require.Greater(t, valid, 0)

	first, err := NewSampler(1).SampleReturns(series, 1, 0)
	require.NoError(t, err)
	assert.Len(t, first, valid)

	// A different seed must not matter when every starting point is used.
	second, err := NewSampler(999).SampleReturns(series, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Requesting more simulations than starting points is exhaustive too.
	third, err := NewSampler(7).SampleReturns(series, 1, valid*2)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

// TestSampleReturns_SeededSubset tests reproducible random sampling
func TestSampleReturns_SeededSubset(t *testing.T) {
	series := makeSeries(5*TradingDaysPerYear, func(i int) float64 {
		return 50 + float64(i)*0.03
	})

	first, err := NewSampler(42).SampleReturns(series, 1, 25)
	require.NoError(t, err)
	require.Len(t, first, 25)

	second, err := NewSampler(42).SampleReturns(series, 1, 25)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestSampleReturns_NoValidStartingPoint tests the too-long-duration boundary
func TestSampleReturns_NoValidStartingPoint(t *testing.T) {
	series := constantSeries(2*TradingDaysPerYear, 100)

	_, err := NewSampler(1).SampleReturns(series, 10, 0)
	assert.ErrorIs(t, err, ErrNoValidStartingPoint)

	_, err = NewSampler(1).SampleReturns(series, 2, 0)
	assert.ErrorIs(t, err, ErrNoValidStartingPoint)
}

// TestSampleReturns_InvalidDuration tests duration validation
func TestSampleReturns_InvalidDuration(t *testing.T) {
	series := constantSeries(TradingDaysPerYear, 100)

	_, err := NewSampler(1).SampleReturns(series, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSampler(1).SampleReturns(series, -3, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// TestSampleReturns_Progress tests that the observer sees every run
func TestSampleReturns_Progress(t *testing.T) {
	series := constantSeries(RequiredSpan(1)+19, 100)

	var calls int
	var lastCompleted, lastTotal int
	sampler := NewSampler(1)
	sampler.Progress = func(years float64, completed, total int) {
		calls++
		lastCompleted = completed
		lastTotal = total
		assert.Equal(t, 1.0, years)
	}

	returns, err := sampler.SampleReturns(series, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, len(returns), calls)
	assert.Equal(t, len(returns), lastCompleted)
	assert.Equal(t, len(returns), lastTotal)
}
