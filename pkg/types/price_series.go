package types

import "time"

// PricePoint is one observed daily close for an asset.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries is the full observed history of one asset: daily closes in
// strictly ascending date order. It is read-only once loaded; every core
// component shares it without copying.
type PriceSeries struct {
	Asset  string
	Points []PricePoint
}

// Len returns the number of observations in the series.
func (s *PriceSeries) Len() int {
	return len(s.Points)
}

// Price returns the closing price at position i. Index access is O(1);
// the simulation loop depends on that.
func (s *PriceSeries) Price(i int) float64 {
	return s.Points[i].Close
}

// Date returns the observation date at position i.
func (s *PriceSeries) Date(i int) time.Time {
	return s.Points[i].Date
}

// MultiSeries maps asset ids to their price series. Series produced by an
// aligned join share the same index so positional access lines up across assets.
type MultiSeries map[string]*PriceSeries
