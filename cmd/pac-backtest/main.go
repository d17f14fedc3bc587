package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"github.com/apalladino/pac-sim/internal/monitoring"
	"github.com/apalladino/pac-sim/internal/simulation"
	"github.com/apalladino/pac-sim/pkg/config"
	"github.com/apalladino/pac-sim/pkg/data"
	"github.com/apalladino/pac-sim/pkg/reporting"
	"github.com/apalladino/pac-sim/pkg/types"
)

const (
	AppName    = "PAC Backtest"
	AppVersion = "1.0.0"
)

func main() {
	flags := NewPACFlags()
	flag.Parse()

	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	printHeader()
	loadEnvironment(*flags.EnvFile)

	cfg, err := flags.BuildConfig()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	since, err := cfg.Start()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	provider := buildProvider(cfg)
	series, err := provider.Fetch(cfg.Asset, since)
	if err != nil {
		log.Fatalf("❌ Data error: %v", err)
	}
	log.Printf("📊 %s: %d trading days from %s to %s", cfg.Asset, series.Len(),
		series.Date(0).Format("2006-01-02"), series.Date(series.Len()-1).Format("2006-01-02"))

	if cfg.MetricsAddr != "" {
		go func() {
			if err := monitoring.Serve(cfg.MetricsAddr); err != nil {
				log.Printf("⚠️  Metrics endpoint stopped: %v", err)
			}
		}()
		log.Printf("📈 Prometheus metrics on %s/metrics", cfg.MetricsAddr)
	}

	if *flags.InspectYears > 0 {
		inspectRun(series, *flags.InspectYears, *flags.InspectStart, cfg.MonthlyAmount)
		return
	}

	sampler := &simulation.Sampler{
		MonthlyAmount: cfg.MonthlyAmount,
		Seed:          cfg.Seed,
		Progress:      progressReporter(cfg.Asset),
	}

	sweeper := &simulation.Sweeper{
		Sampler:        sampler,
		NumSimulations: cfg.Simulations,
		Threshold:      cfg.Threshold,
		Workers:        cfg.Workers,
	}
	if !cfg.SkipShortDurations {
		sweeper.Policy = simulation.AbortOnMissingDuration
	}

	started := time.Now()
	result, err := sweeper.SweepDurations(series, cfg.DurationGrid())
	if err != nil {
		log.Fatalf("❌ Sweep failed: %v", err)
	}
	fmt.Println()
	monitoring.RecordSweep(cfg.Asset, time.Since(started).Seconds())
	monitoring.RecordSkippedDurations(cfg.Asset, len(result.Skipped))
	log.Printf("✅ Swept %d durations in %s", result.Table.Len(), time.Since(started).Round(time.Millisecond))

	manager := reporting.NewReportingManager(reporting.ReportingConfig{
		EnableConsole: true,
		EnableFiles:   !*flags.ConsoleOnly,
		OutputDir:     *flags.OutputDir,
		CSVEnabled:    !*flags.NoCSV,
		ExcelEnabled:  !*flags.NoExcel,
		ChartsEnabled: !*flags.NoCharts,
	})
	if err := manager.ReportResults(result, cfg.Asset); err != nil {
		log.Fatalf("❌ Reporting error: %v", err)
	}
}

func printHeader() {
	fmt.Printf("🎯 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))
}

func loadEnvironment(envFile string) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("⚠️  Could not load %s (%v)", envFile, err)
	}
}

func buildProvider(cfg *config.Config) data.Provider {
	var provider data.Provider
	switch cfg.Source {
	case "csv":
		provider = data.NewCSVProvider(cfg.DataDir)
	default:
		provider = data.NewYahooProvider()
	}
	return data.NewCachedProvider(provider)
}

// inspectRun simulates one verbose run and prints its contribution ledger.
func inspectRun(series *types.PriceSeries, years float64, startIndex int, amount float64) {
	run, err := simulation.SimulateRunVerbose(series, years, startIndex, amount)
	if err != nil {
		log.Fatalf("❌ Run failed: %v", err)
	}
	reporting.NewDefaultConsoleReporter().PrintRunLedger(run)
}

// progressReporter prints an in-place tally of completed runs and feeds the
// Prometheus counter. Samplers may call it from several goroutines.
func progressReporter(asset string) simulation.ProgressFunc {
	var mu sync.Mutex
	done := 0
	return func(years float64, completed, total int) {
		monitoring.RecordSimulation(asset)
		mu.Lock()
		done++
		if done%100 == 0 || completed == total {
			fmt.Printf("\r⏳ %d runs simulated", done)
		}
		mu.Unlock()
	}
}
