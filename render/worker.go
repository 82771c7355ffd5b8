package render

import (
	"math/rand"
	"sync"
	"time"
)

// pool runs the render workers. Each worker owns a reusable scratch
// buffer and an independent RNG for latency so no state crosses
// goroutines. All workers share one receiving end of the work queue;
// queue semantics deliver each tile to exactly one worker, which is the
// whole load-balancing mechanism.
type pool struct {
	cfg     Config
	work    *Queue[WorkMessage]
	results *Queue[ResultMessage]
	wg      sync.WaitGroup
}

func newPool(cfg Config, work *Queue[WorkMessage], results *Queue[ResultMessage]) *pool {
	return &pool{cfg: cfg, work: work, results: results}
}

func (p *pool) start() {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
}

func (p *pool) wait() { p.wg.Wait() }

// run is the worker loop: block on the work queue, render, push the
// result. A Stop message terminates the loop without re-propagating;
// the coordinator delivers one Stop per worker.
func (p *pool) run(id int) {
	defer p.wg.Done()

	scratch := make([]byte, p.cfg.TilePixelBytes())
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
	logger().Debug("worker started", "worker", id)

	for {
		msg, ok := p.work.Recv()
		if !ok || msg.Kind == MsgStop {
			logger().Debug("worker stopped", "worker", id)
			return
		}
		workQueueDepth.Set(float64(p.work.Len()))

		start := time.Now()
		pixels := renderTile(p.cfg, msg.Tile, scratch)
		sleepLatency(rng, p.cfg.MaxLatency)
		tilesRendered.Inc()
		renderSeconds.Observe(time.Since(start).Seconds())

		if !p.results.SendReliable(mergeResult(msg.Tile, pixels)) {
			// Merger already gone; shutdown is in progress.
			return
		}
		resultQueueDepth.Set(float64(p.results.Len()))
	}
}

// renderTile fills the tile's clipped pixel block with the tile's color
// and returns an owned copy sized exactly for the clipped bounds. The
// scratch slice is reused across tiles to avoid per-tile allocation of
// the working area.
func renderTile(cfg Config, t Tile, scratch []byte) []byte {
	b := cfg.TileBounds(t)
	r, g, bl := TileColor(t)

	n := b.PixelBytes()
	for i := 0; i < n; i += ColorChannels {
		scratch[i+0] = r
		scratch[i+1] = g
		scratch[i+2] = bl
		scratch[i+3] = 0xFF
	}

	pixels := make([]byte, n)
	copy(pixels, scratch[:n])
	return pixels
}

// TileColor derives a tile's solid RGB color from an RNG seeded with the
// tile index, so a tile's color is stable for a given run configuration
// while completion order stays nondeterministic.
func TileColor(t Tile) (r, g, b uint8) {
	rng := rand.New(rand.NewSource(int64(t)))
	return uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))
}

// sleepLatency simulates variable compute cost with a uniformly random
// sleep in [1ms, max].
func sleepLatency(rng *rand.Rand, max time.Duration) {
	maxMillis := int64(max / time.Millisecond)
	if maxMillis < 1 {
		maxMillis = 1
	}
	time.Sleep(time.Duration(1+rng.Int63n(maxMillis)) * time.Millisecond)
}
