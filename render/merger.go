package render

import (
	"sync"
	"sync/atomic"
	"time"
)

// merger is the single goroutine draining the result queue and writing
// each tile's pixel block into the shared frame buffer. Results are
// applied in arrival order, which is not the scheduling order; each
// tile is applied at most once either way.
type merger struct {
	cfg     Config
	results *Queue[ResultMessage]
	fb      *FrameBuffer

	merged       atomic.Int64
	completeOnce sync.Once
	complete     chan struct{}
}

func newMerger(cfg Config, results *Queue[ResultMessage], fb *FrameBuffer) *merger {
	return &merger{
		cfg:      cfg,
		results:  results,
		fb:       fb,
		complete: make(chan struct{}),
	}
}

func (m *merger) mergedCount() int { return int(m.merged.Load()) }

func (m *merger) run() {
	// Retiring the queue on exit turns late worker sends into no-ops.
	defer m.results.Retire()

	for {
		msg, ok := m.results.Recv()
		if !ok || msg.Kind == MsgStop {
			logger().Info("merger stopped", "merged", m.mergedCount())
			return
		}
		resultQueueDepth.Set(float64(m.results.Len()))

		start := time.Now()
		m.fb.WriteTile(m.cfg.TileBounds(msg.Tile), msg.Pixels)
		mergeSeconds.Observe(time.Since(start).Seconds())
		tilesMerged.Inc()

		if int(m.merged.Add(1)) == m.cfg.TileCount() {
			m.completeOnce.Do(func() { close(m.complete) })
		}
	}
}
