package infrastructure

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherview.app/internal/ports"
)

// PrometheusCacheMetrics implements CacheMetrics backed by prometheus
// counters. The registerer is injected so tests and multiple cache
// instances can use isolated registries.
type PrometheusCacheMetrics struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	requests prometheus.Counter
	hitRatio prometheus.Gauge

	mu         sync.RWMutex
	hitCount   int64
	missCount  int64
	totalCount int64
}

// NewCacheMetrics creates cache metrics registered with the given
// registerer, labeled by cache type
func NewCacheMetrics(reg prometheus.Registerer, cacheType string) *PrometheusCacheMetrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"cache_type": cacheType}

	return &PrometheusCacheMetrics{
		hits: factory.NewCounter(prometheus.CounterOpts{
			Name:        "weather_cache_hits_total",
			Help:        "The total number of cache hits",
			ConstLabels: labels,
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Name:        "weather_cache_misses_total",
			Help:        "The total number of cache misses",
			ConstLabels: labels,
		}),
		requests: factory.NewCounter(prometheus.CounterOpts{
			Name:        "weather_cache_requests_total",
			Help:        "The total number of cache requests",
			ConstLabels: labels,
		}),
		hitRatio: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "weather_cache_hit_ratio",
			Help:        "Cache hit ratio (hits/total requests)",
			ConstLabels: labels,
		}),
	}
}

// RecordHit increments the hit counters
func (m *PrometheusCacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hitCount++
	m.totalCount++
	m.hits.Inc()
	m.requests.Inc()
	m.updateHitRatio()
}

// RecordMiss increments the miss counters
func (m *PrometheusCacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.missCount++
	m.totalCount++
	m.misses.Inc()
	m.requests.Inc()
	m.updateHitRatio()
}

// updateHitRatio updates the hit ratio gauge.
// Must be called while holding the mutex.
func (m *PrometheusCacheMetrics) updateHitRatio() {
	if m.totalCount > 0 {
		m.hitRatio.Set(float64(m.hitCount) / float64(m.totalCount))
	}
}

// GetStats returns a snapshot of the counters
func (m *PrometheusCacheMetrics) GetStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ratio float64
	if m.totalCount > 0 {
		ratio = float64(m.hitCount) / float64(m.totalCount)
	}

	return ports.CacheStats{
		Hits:     m.hitCount,
		Misses:   m.missCount,
		TotalOps: m.totalCount,
		HitRatio: ratio,
	}
}
