package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/apalladino/pac-sim/pkg/types"
)

// CSVProvider loads price series from local CSV files, one file per asset,
// located as <dir>/<assetID>.csv.
type CSVProvider struct {
	dir    string
	format CSVColumnMapping
}

// NewCSVProvider creates a CSV provider reading "date,close" files from dir.
func NewCSVProvider(dir string) *CSVProvider {
	return &CSVProvider{dir: dir, format: DefaultCSVFormat}
}

// NewCSVProviderWithFormat creates a CSV provider with a custom column mapping.
func NewCSVProviderWithFormat(dir string, format CSVColumnMapping) *CSVProvider {
	return &CSVProvider{dir: dir, format: format}
}

// Name returns the name of the provider.
func (p *CSVProvider) Name() string {
	return "CSV Provider"
}

// Fetch reads the asset's file and keeps observations on or after since.
// Malformed rows are logged and skipped; the remaining series is validated
// before it is returned.
func (p *CSVProvider) Fetch(assetID string, since time.Time) (*types.PriceSeries, error) {
	path := filepath.Join(p.dir, assetID+".csv")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open price file for %s: %w", assetID, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	series := &types.PriceSeries{Asset: assetID}

	lineNum := 1
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read %s at line %d: %w", path, lineNum, err)
		}
		lineNum++

		if len(record) < p.format.MinColumns {
			log.Printf("⚠️ Insufficient columns at line %d of %s (expected %d, got %d), skipping",
				lineNum, path, p.format.MinColumns, len(record))
			continue
		}

		date, err := time.Parse(p.format.DateFormat, record[p.format.DateCol])
		if err != nil {
			log.Printf("⚠️ Invalid date %q at line %d of %s, skipping: %v", record[p.format.DateCol], lineNum, path, err)
			continue
		}

		close, err := strconv.ParseFloat(record[p.format.CloseCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid close price %q at line %d of %s, skipping: %v", record[p.format.CloseCol], lineNum, path, err)
			continue
		}
		if close <= 0 {
			log.Printf("⚠️ Non-positive close price at line %d of %s, skipping", lineNum, path)
			continue
		}

		if date.Before(since) {
			continue
		}

		series.Points = append(series.Points, types.PricePoint{Date: date, Close: close})
	}

	if err := ValidateSeries(series); err != nil {
		return nil, fmt.Errorf("price file %s: %w", path, err)
	}

	return series, nil
}
