// internal/common/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the collectors for catalog validation runs.
type Recorder struct {
	registry *prometheus.Registry

	RunsTotal        *prometheus.CounterVec
	ErrorsTotal      *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	ServicesTotal    prometheus.Gauge
	CategoriesTotal  prometheus.Gauge
	LastRunTimestamp prometheus.Gauge
}

// NewRecorder registers the validation collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_validation_runs_total",
				Help: "Total number of catalog validation runs by result",
			},
			[]string{"result"},
		),
		ErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_validation_errors_total",
				Help: "Total number of validation errors by checker",
			},
			[]string{"checker"},
		),
		RunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "catalog_validation_duration_seconds",
				Help:    "Duration of a validation run in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
		),
		ServicesTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_services",
				Help: "Number of services in the last valid catalog",
			},
		),
		CategoriesTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_categories",
				Help: "Number of categories in the last valid catalog",
			},
		),
		LastRunTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_validation_last_run_timestamp_seconds",
				Help: "Unix time the last validation run finished",
			},
		),
	}
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveChecker adds the error count produced by one checker.
func (r *Recorder) ObserveChecker(checker string, errorCount int) {
	r.ErrorsTotal.WithLabelValues(checker).Add(float64(errorCount))
}

// ObserveRun records the outcome of a finished run. Totals are only set for
// valid catalogs.
func (r *Recorder) ObserveRun(result string, duration time.Duration, services, categories int, valid bool) {
	r.RunsTotal.WithLabelValues(result).Inc()
	r.RunDuration.Observe(duration.Seconds())
	if valid {
		r.ServicesTotal.Set(float64(services))
		r.CategoriesTotal.Set(float64(categories))
	}
	r.LastRunTimestamp.SetToCurrentTime()
}

// WriteTextfile writes the current metrics in the node_exporter textfile
// format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry())
}
