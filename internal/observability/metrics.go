package observability

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/signalsfoundry/astrotime/earth"
)

// Collector bundles Prometheus metrics for the frame service: HTTP request
// accounting, time scale conversion and frame transform counters, and the
// loaded EOP table span.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	Conversions        *prometheus.CounterVec
	Transforms         *prometheus.CounterVec
	TransformDurations *prometheus.HistogramVec

	EOPSpanMinMJD prometheus.Gauge
	EOPSpanMaxMJD prometheus.Gauge
}

// NewCollector registers the frame service metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
// Registration tolerates collectors that already exist so the constructor
// can run more than once per process.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "frameserver_requests_total",
		Help: "Total number of handled HTTP requests, labeled by route, method, and status code.",
	}, []string{"route", "method", "code"})
	requests, err := registerCounterVec(reg, requests, "frameserver_requests_total")
	if err != nil {
		return nil, err
	}

	httpDurations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "frameserver_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"route", "method"})
	httpDurations, err = registerHistogramVec(reg, httpDurations, "frameserver_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	conversions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timescale_conversions_total",
		Help: "Total number of time scale conversions, labeled by source scale, target scale, and outcome.",
	}, []string{"from", "to", "outcome"})
	conversions, err = registerCounterVec(reg, conversions, "timescale_conversions_total")
	if err != nil {
		return nil, err
	}

	transforms := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "frame_transforms_total",
		Help: "Total number of frame transforms, labeled by source frame, target frame, and outcome.",
	}, []string{"from", "to", "outcome"})
	transforms, err = registerCounterVec(reg, transforms, "frame_transforms_total")
	if err != nil {
		return nil, err
	}

	transformDurations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "frame_transform_duration_seconds",
		Help:    "Frame transform latency in seconds.",
		Buckets: []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1},
	}, []string{"from", "to"})
	transformDurations, err = registerHistogramVec(reg, transformDurations, "frame_transform_duration_seconds")
	if err != nil {
		return nil, err
	}

	spanMin, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "eop_table_min_mjd",
		Help: "First Modified Julian Date covered by the loaded Earth orientation table.",
	}), "eop_table_min_mjd")
	if err != nil {
		return nil, err
	}
	spanMax, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "eop_table_max_mjd",
		Help: "Last Modified Julian Date covered by the loaded Earth orientation table.",
	}), "eop_table_max_mjd")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:           gatherer,
		HTTPRequests:       requests,
		HTTPDurations:      httpDurations,
		Conversions:        conversions,
		Transforms:         transforms,
		TransformDurations: transformDurations,
		EOPSpanMinMJD:      spanMin,
		EOPSpanMaxMJD:      spanMax,
	}, nil
}

// Middleware wraps an HTTP handler, recording request counts and durations
// under the given route label.
func (c *Collector) Middleware(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		if c == nil {
			return
		}
		if c.HTTPRequests != nil {
			c.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(rec.code)).Inc()
		}
		if c.HTTPDurations != nil {
			c.HTTPDurations.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// ObserveConversion records a time scale conversion and its outcome.
func (c *Collector) ObserveConversion(from, to string, err error) {
	if c == nil || c.Conversions == nil {
		return
	}
	c.Conversions.WithLabelValues(from, to, outcomeLabel(err)).Inc()
}

// ObserveTransform records a frame transform, its outcome, and its duration.
func (c *Collector) ObserveTransform(from, to string, err error, d time.Duration) {
	if c == nil {
		return
	}
	if c.Transforms != nil {
		c.Transforms.WithLabelValues(from, to, outcomeLabel(err)).Inc()
	}
	if c.TransformDurations != nil {
		c.TransformDurations.WithLabelValues(from, to).Observe(d.Seconds())
	}
}

// SetEOPSpan publishes the MJD range covered by the loaded EOP table.
func (c *Collector) SetEOPSpan(minMJD, maxMJD float64) {
	if c == nil {
		return
	}
	if c.EOPSpanMinMJD != nil {
		c.EOPSpanMinMJD.Set(minMJD)
	}
	if c.EOPSpanMaxMJD != nil {
		c.EOPSpanMaxMJD.Set(maxMJD)
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// outcomeLabel maps an operation result to a bounded label set. Best-effort
// EOP extrapolation is distinguished from hard failures.
func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var ext *earth.ExtrapolatedEOPError
	if errors.As(err, &ext) {
		return "extrapolated"
	}
	return "error"
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
