package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exposes Prometheus metrics for inbound HTTP requests and for
// campaign sync scheduling decisions.
type Collector struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	syncDecisions   *prometheus.CounterVec
	runOutcomes     *prometheus.CounterVec
	runDuration     *prometheus.HistogramVec
}

// NewCollector constructs a collector with default histograms/counters.
func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "leadloop",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency distribution for inbound HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadloop",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of inbound HTTP requests.",
	}, []string{"method", "path", "status"})

	syncDecisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadloop",
		Subsystem: "sync",
		Name:      "decisions_total",
		Help:      "Sync scheduling decisions by outcome.",
	}, []string{"outcome"})

	runOutcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leadloop",
		Subsystem: "sync",
		Name:      "runs_total",
		Help:      "Finished sync runs by terminal status.",
	}, []string{"status"})

	runDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "leadloop",
		Subsystem: "sync",
		Name:      "run_duration_seconds",
		Help:      "Duration of sync runs from queue to terminal status.",
		Buckets:   []float64{1, 5, 15, 60, 300, 900, 1800},
	}, []string{"status"})

	for _, c := range []prometheus.Collector{requestDuration, requestTotal, syncDecisions, runOutcomes, runDuration} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return &Collector{
		registry:        registry,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		syncDecisions:   syncDecisions,
		runOutcomes:     runOutcomes,
		runDuration:     runDuration,
	}, nil
}

// Handler returns an HTTP handler for exposing Prometheus metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveDecision records a sync scheduling decision outcome.
func (c *Collector) ObserveDecision(outcome string) {
	c.syncDecisions.WithLabelValues(outcome).Inc()
}

// ObserveRunFinished records a sync run reaching a terminal status.
func (c *Collector) ObserveRunFinished(status string, duration time.Duration) {
	c.runOutcomes.WithLabelValues(status).Inc()
	c.runDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// InstrumentHandler wraps the provided handler to record HTTP metrics.
func (c *Collector) InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.status)
		path := r.URL.Path

		c.requestTotal.WithLabelValues(r.Method, path, status).Inc()
		c.requestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
