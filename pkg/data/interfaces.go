package data

import (
	"time"

	"github.com/apalladino/pac-sim/pkg/types"
)

// Provider supplies the full observed daily-close history of one asset,
// ascending by date, from `since` to the most recent available observation.
// The simulation engine depends only on this shape, not on any vendor.
type Provider interface {
	// Fetch loads the price series for an asset id (a ticker symbol for
	// remote providers, a file stem for local ones).
	Fetch(assetID string, since time.Time) (*types.PriceSeries, error)

	// Name returns the name of the provider.
	Name() string
}

// SeriesCache caches fetched series keyed by asset and start date.
type SeriesCache interface {
	Get(key string) (*types.PriceSeries, bool)
	Set(key string, series *types.PriceSeries)
	Clear()
	Size() int
}

// CSVColumnMapping defines column positions and the date layout of a local
// price CSV.
type CSVColumnMapping struct {
	DateCol    int
	CloseCol   int
	MinColumns int
	DateFormat string
}

// DefaultCSVFormat matches "date,close" exports with ISO dates.
var DefaultCSVFormat = CSVColumnMapping{
	DateCol:    0,
	CloseCol:   1,
	MinColumns: 2,
	DateFormat: "2006-01-02",
}

// OHLCVCSVFormat matches full candle exports where only the close column is used.
var OHLCVCSVFormat = CSVColumnMapping{
	DateCol:    0,
	CloseCol:   4,
	MinColumns: 5,
	DateFormat: "2006-01-02",
}
