package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/apalladino/pac-sim/pkg/data"
	"github.com/apalladino/pac-sim/pkg/types"
)

// Downloads daily closing prices and writes one <ASSET>.csv per asset into
// the data directory read by the csv source:
//
//	go run scripts/download_historical_data.go -assets SPY,QQQ -start 1995-01-01 -outdir data/historical
func main() {
	var (
		asset  = flag.String("asset", "SPY", "Ticker symbol (e.g. SPY)")
		assets = flag.String("assets", "", "Comma-separated list of tickers (overrides -asset if provided)")
		outdir = flag.String("outdir", "data/historical", "Directory to write CSV files")

		startDate = flag.String("start", "1990-01-01", "Start date (YYYY-MM-DD)")
		output    = flag.String("output", "", "Explicit output file path (only for a single asset)")
	)

	flag.Parse()

	assetList := []string{}
	if strings.TrimSpace(*assets) != "" {
		for _, a := range strings.Split(*assets, ",") {
			aa := strings.ToUpper(strings.TrimSpace(a))
			if aa != "" {
				assetList = append(assetList, aa)
			}
		}
	} else {
		assetList = []string{strings.ToUpper(strings.TrimSpace(*asset))}
	}

	start, err := time.Parse("2006-01-02", *startDate)
	if err != nil {
		log.Fatalf("Invalid start date format: %v", err)
	}

	if err := os.MkdirAll(*outdir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	if len(assetList) == 1 && strings.TrimSpace(*output) != "" {
		downloadOne(assetList[0], start, *output)
		return
	}

	for _, a := range assetList {
		downloadOne(a, start, filepath.Join(*outdir, a+".csv"))
	}
}

func downloadOne(asset string, start time.Time, outputPath string) {
	fmt.Printf("\n📊 Downloading daily closes for %s\n", asset)
	fmt.Printf("📅 Period: %s to today\n", start.Format("2006-01-02"))
	fmt.Printf("📁 Output: %s\n", outputPath)
	fmt.Println("🔄 Fetching data...")

	series, err := data.NewYahooProvider().Fetch(asset, start)
	if err != nil {
		log.Fatalf("Failed to download data for %s: %v", asset, err)
	}

	fmt.Printf("✅ Downloaded %d observations\n", series.Len())

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		log.Fatalf("Failed to prepare output directory %s: %v", filepath.Dir(outputPath), err)
	}

	if err := saveToCSV(series, outputPath); err != nil {
		log.Fatalf("Failed to save %s: %v", asset, err)
	}

	fmt.Printf("💾 Data saved to %s\n", outputPath)
	printSummary(series)
}

func printSummary(series *types.PriceSeries) {
	n := series.Len()
	if n == 0 {
		return
	}

	high := series.Price(0)
	low := series.Price(0)
	for i := 1; i < n; i++ {
		if p := series.Price(i); p > high {
			high = p
		} else if p < low {
			low = p
		}
	}

	fmt.Println("\n📊 DATA SUMMARY:")
	fmt.Printf("  First: %s\n", series.Date(0).Format("2006-01-02"))
	fmt.Printf("  Last:  %s\n", series.Date(n-1).Format("2006-01-02"))
	fmt.Printf("  Total: %d daily closes\n", n)
	fmt.Printf("  High:  %.2f\n", high)
	fmt.Printf("  Low:   %.2f\n", low)
}

func saveToCSV(series *types.PriceSeries, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"date", "close"}); err != nil {
		return err
	}

	for i := 0; i < series.Len(); i++ {
		record := []string{
			series.Date(i).Format("2006-01-02"),
			strconv.FormatFloat(series.Price(i), 'f', 6, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}
