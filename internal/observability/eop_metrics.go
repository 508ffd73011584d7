package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EOPCacheCollector exposes metrics for the Earth orientation data cache.
type EOPCacheCollector struct {
	gatherer prometheus.Gatherer

	LoadDuration  prometheus.Histogram
	RowsCached    prometheus.Gauge
	RefreshTotal  prometheus.Counter
	CacheHitRatio prometheus.Gauge
}

// NewEOPCacheCollector registers EOP cache metrics against the provided
// registerer.
func NewEOPCacheCollector(reg prometheus.Registerer) (*EOPCacheCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	loadHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "eop_cache_load_duration_seconds",
		Help:    "Duration of EOP table loads, from either the finals CSV or the local cache.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})
	loadHistogram, err := registerHistogram(reg, loadHistogram, "eop_cache_load_duration_seconds")
	if err != nil {
		return nil, err
	}

	rowsGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "eop_cache_rows",
		Help: "Number of EOP table rows held in the local cache.",
	})
	rowsGauge, err = registerGauge(reg, rowsGauge, "eop_cache_rows")
	if err != nil {
		return nil, err
	}

	refreshes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eop_cache_refreshes_total",
		Help: "Cumulative number of EOP cache refreshes from the finals CSV.",
	})
	refreshes, err = registerCounter(reg, refreshes, "eop_cache_refreshes_total")
	if err != nil {
		return nil, err
	}

	hitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "eop_cache_hit_ratio",
		Help: "Fraction of EOP loads served from the local cache.",
	})
	hitRatio, err = registerGauge(reg, hitRatio, "eop_cache_hit_ratio")
	if err != nil {
		return nil, err
	}

	return &EOPCacheCollector{
		gatherer:      gatherer,
		LoadDuration:  loadHistogram,
		RowsCached:    rowsGauge,
		RefreshTotal:  refreshes,
		CacheHitRatio: hitRatio,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *EOPCacheCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// ObserveLoad records a load duration measurement.
func (c *EOPCacheCollector) ObserveLoad(d time.Duration) {
	if c == nil || c.LoadDuration == nil {
		return
	}
	c.LoadDuration.Observe(d.Seconds())
}

// SetRowsCached updates the cached row count gauge.
func (c *EOPCacheCollector) SetRowsCached(count int) {
	if c == nil || c.RowsCached == nil {
		return
	}
	c.RowsCached.Set(float64(count))
}

// IncRefreshes increments the refresh counter.
func (c *EOPCacheCollector) IncRefreshes() {
	if c == nil || c.RefreshTotal == nil {
		return
	}
	c.RefreshTotal.Inc()
}

// SetHitRatio sets the cache hit ratio, clamped to [0, 1].
func (c *EOPCacheCollector) SetHitRatio(ratio float64) {
	if c == nil || c.CacheHitRatio == nil {
		return
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	c.CacheHitRatio.Set(ratio)
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}
