package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	simulationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pac_sim_simulations_total",
			Help: "Total number of simulated investment runs",
		},
		[]string{"asset"},
	)

	sweepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pac_sim_sweep_duration_seconds",
			Help:    "Wall-clock duration of full duration sweeps",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"asset"},
	)

	skippedDurations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pac_sim_skipped_durations_total",
			Help: "Durations omitted from sweeps for lack of history",
		},
		[]string{"asset"},
	)
)

func init() {
	prometheus.MustRegister(simulationsTotal)
	prometheus.MustRegister(sweepDuration)
	prometheus.MustRegister(skippedDurations)
}

// RecordSimulation counts one completed simulation run.
func RecordSimulation(asset string) {
	simulationsTotal.WithLabelValues(asset).Inc()
}

// RecordSweep records the wall-clock time of one full sweep.
func RecordSweep(asset string, seconds float64) {
	sweepDuration.WithLabelValues(asset).Observe(seconds)
}

// RecordSkippedDurations counts durations a sweep omitted.
func RecordSkippedDurations(asset string, n int) {
	skippedDurations.WithLabelValues(asset).Add(float64(n))
}

// Serve exposes the Prometheus endpoint on addr for the lifetime of the
// process. Long sweeps can be watched from outside without touching the
// engine's contract.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
