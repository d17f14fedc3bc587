package data

import (
	"fmt"
	"time"

	"github.com/apalladino/pac-sim/pkg/types"
)

// ValidateSeries checks the integrity invariants the simulation engine relies
// on: a non-empty series, strictly ascending dates and positive prices.
func ValidateSeries(series *types.PriceSeries) error {
	if series == nil || series.Len() == 0 {
		return fmt.Errorf("no observations")
	}

	for i, p := range series.Points {
		if p.Close <= 0 {
			return fmt.Errorf("invalid price at index %d (%s): prices must be positive, got %.4f",
				i, p.Date.Format("2006-01-02"), p.Close)
		}
		if i > 0 && !p.Date.After(series.Points[i-1].Date) {
			return fmt.Errorf("invalid date sequence at index %d: %s does not follow %s",
				i, p.Date.Format("2006-01-02"), series.Points[i-1].Date.Format("2006-01-02"))
		}
	}

	return nil
}

// FilterSince returns the tail of a series starting at the first observation
// on or after the given date.
func FilterSince(series *types.PriceSeries, since time.Time) *types.PriceSeries {
	out := &types.PriceSeries{Asset: series.Asset}
	for _, p := range series.Points {
		if p.Date.Before(since) {
			continue
		}
		out.Points = append(out.Points, p)
	}
	return out
}

// AlignForwardFill joins several assets onto one shared date index so
// positional access lines up across them. The index is the trading calendar
// of the first series, trimmed to dates every asset has reached; gaps in the
// other series are forward-filled with the last known close.
func AlignForwardFill(series []*types.PriceSeries) (types.MultiSeries, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("no series to align")
	}
	for _, s := range series {
		if err := ValidateSeries(s); err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Asset, err)
		}
	}

	// No asset has a price before its own first observation, so the shared
	// index starts at the latest first-date.
	start := series[0].Points[0].Date
	for _, s := range series[1:] {
		if first := s.Points[0].Date; first.After(start) {
			start = first
		}
	}

	index := FilterSince(series[0], start)
	if index.Len() == 0 {
		return nil, fmt.Errorf("series %s has no observations after %s", series[0].Asset, start.Format("2006-01-02"))
	}

	aligned := make(types.MultiSeries, len(series))
	aligned[series[0].Asset] = index

	for _, s := range series[1:] {
		out := &types.PriceSeries{Asset: s.Asset, Points: make([]types.PricePoint, 0, index.Len())}
		cursor := 0
		last := s.Points[0].Close
		for _, p := range index.Points {
			for cursor < s.Len() && !s.Points[cursor].Date.After(p.Date) {
				last = s.Points[cursor].Close
				cursor++
			}
			out.Points = append(out.Points, types.PricePoint{Date: p.Date, Close: last})
		}
		aligned[s.Asset] = out
	}

	return aligned, nil
}
