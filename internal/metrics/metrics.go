package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the summarizer.
type Metrics struct {
	registry                *prometheus.Registry
	requestsTotal           prometheus.Counter
	pipelinesStartedTotal   prometheus.Counter
	pipelinesFailedTotal    prometheus.Counter
	generationFailuresTotal prometheus.Counter
	activeJobs              prometheus.Gauge
	errorsTotal             prometheus.Counter
}

// New creates and registers Prometheus metrics for the summarizer.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "summarizer_requests_total",
		Help: "Total number of HTTP requests received",
	})
	pipelinesStartedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "summarizer_pipelines_started_total",
		Help: "Total number of summarization runs started",
	})
	pipelinesFailedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "summarizer_pipelines_failed_total",
		Help: "Total number of summarization runs that ended in failure",
	})
	generationFailuresTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "summarizer_generation_failures_total",
		Help: "Total number of model generation calls that exhausted their retries",
	})
	activeJobs := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "summarizer_active_jobs",
		Help: "Number of summarization jobs currently running",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "summarizer_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})

	registry.MustRegister(
		requestsTotal,
		pipelinesStartedTotal,
		pipelinesFailedTotal,
		generationFailuresTotal,
		activeJobs,
		errorsTotal,
	)

	return &Metrics{
		registry:                registry,
		requestsTotal:           requestsTotal,
		pipelinesStartedTotal:   pipelinesStartedTotal,
		pipelinesFailedTotal:    pipelinesFailedTotal,
		generationFailuresTotal: generationFailuresTotal,
		activeJobs:              activeJobs,
		errorsTotal:             errorsTotal,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// IncPipelinesStarted increments the runs started counter.
func (m *Metrics) IncPipelinesStarted() {
	m.pipelinesStartedTotal.Inc()
}

// IncPipelinesFailed increments the failed runs counter.
func (m *Metrics) IncPipelinesFailed() {
	m.pipelinesFailedTotal.Inc()
}

// IncGenerationFailures increments the exhausted-retries counter.
func (m *Metrics) IncGenerationFailures() {
	m.generationFailuresTotal.Inc()
}

// SetActiveJobs sets the running jobs gauge.
func (m *Metrics) SetActiveJobs(n int) {
	m.activeJobs.Set(float64(n))
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
