package render

import "github.com/prometheus/client_golang/prometheus"

var (
	tilesScheduled = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tilesim_tiles_scheduled_total",
		Help: "Tiles enqueued for rendering.",
	})
	tilesRendered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tilesim_tiles_rendered_total",
		Help: "Tiles rendered by the worker pool.",
	})
	tilesMerged = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tilesim_tiles_merged_total",
		Help: "Tiles merged into the frame buffer.",
	})
	tilesDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tilesim_tiles_dropped_total",
		Help: "Queued tiles discarded during early shutdown.",
	})
	redrawsRequested = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tilesim_redraws_requested_total",
		Help: "Repaints requested by the ticker.",
	})
	renderSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tilesim_render_seconds",
		Help:    "Per-tile render duration including simulated latency.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})
	mergeSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tilesim_merge_seconds",
		Help:    "Per-tile frame buffer copy duration.",
		Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
	})
	workQueueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tilesim_work_queue_depth",
		Help: "Tiles waiting in the work queue.",
	})
	resultQueueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tilesim_result_queue_depth",
		Help: "Rendered tiles waiting in the result queue.",
	})
)

func init() {
	prometheus.MustRegister(
		tilesScheduled, tilesRendered, tilesMerged, tilesDropped,
		redrawsRequested, renderSeconds, mergeSeconds,
		workQueueDepth, resultQueueDepth,
	)
}
