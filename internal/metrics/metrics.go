// Package metrics provides Prometheus metrics for the portfolio server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

var (
	// RendersTotal counts rendered documents by page and outcome.
	RendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Total number of rendered documents",
		},
		[]string{"page", "status"},
	)

	// RenderDuration measures document render duration.
	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of document renders in seconds",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
		},
		[]string{"page"},
	)

	// PagesLoaded tracks the number of enabled pages in the index.
	PagesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pages_loaded",
			Help:      "Number of enabled pages in the index",
		},
	)

	// ReloadsTotal counts content reloads by outcome.
	ReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_reloads_total",
			Help:      "Total number of content reloads",
		},
		[]string{"status"},
	)

	// PagesCollected counts pages removed by the garbage collector.
	PagesCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pages_collected_total",
			Help:      "Total number of disabled pages garbage collected",
		},
	)

	// RedisConnectionStatus tracks Redis connection status.
	RedisConnectionStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "redis_connection_status",
			Help:      "Redis connection status (1 = connected, 0 = disconnected)",
		},
	)
)

// RecordRender records one document render.
func RecordRender(page, status string, seconds float64) {
	RendersTotal.WithLabelValues(page, status).Inc()
	RenderDuration.WithLabelValues(page).Observe(seconds)
}

// RecordReload records a content reload.
func RecordReload(status string, pages int) {
	ReloadsTotal.WithLabelValues(status).Inc()
	if status == StatusOK {
		PagesLoaded.Set(float64(pages))
	}
}

// SetRedisConnected sets Redis connection status.
func SetRedisConnected(connected bool) {
	if connected {
		RedisConnectionStatus.Set(1)
		return
	}
	RedisConnectionStatus.Set(0)
}

// Outcome labels.
const (
	StatusOK    = "ok"
	StatusError = "error"
)
