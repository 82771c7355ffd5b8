package render

import (
	"fmt"
	"sync"
)

// Queue capacities scale with the worker count to cap in-flight tile
// memory and create backpressure in both directions.
const (
	workQueueFactor   = 8
	resultQueueFactor = 2
)

// Pipeline wires the scheduler, worker pool, merger, redraw ticker, and
// shutdown coordinator around bounded queues. One Pipeline value drives
// exactly one run; it is not restartable.
type Pipeline struct {
	cfg Config
	fb  *FrameBuffer

	work     *Queue[WorkMessage]
	results  *Queue[ResultMessage]
	schedCtl *Queue[Signal]
	tickCtl  *Queue[Signal]
	input    *Queue[Signal]
	done     *Queue[Signal]

	merger       *merger
	pool         *pool
	redrawTicker *ticker

	wg       sync.WaitGroup
	started  bool
	stopOnce sync.Once
	waitOnce sync.Once
}

// New validates the config and builds an unstarted pipeline writing
// into fb. redraw is the display's repaint hook, invoked by the ticker
// on its fixed interval; it may be nil.
func New(cfg Config, fb *FrameBuffer, redraw func()) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline config: %w", err)
	}
	if fb == nil || fb.Width() != cfg.Width || fb.Height() != cfg.Height {
		return nil, fmt.Errorf("pipeline frame buffer does not match config %dx%d", cfg.Width, cfg.Height)
	}

	p := &Pipeline{
		cfg:      cfg,
		fb:       fb,
		work:     NewQueue[WorkMessage](workQueueFactor * cfg.Workers),
		results:  NewQueue[ResultMessage](resultQueueFactor * cfg.Workers),
		schedCtl: NewQueue[Signal](1),
		tickCtl:  NewQueue[Signal](1),
		input:    NewQueue[Signal](1),
		done:     NewQueue[Signal](1),
	}
	p.merger = newMerger(cfg, p.results, fb)
	p.pool = newPool(cfg, p.work, p.results)
	p.redrawTicker = newTicker(cfg.RedrawInterval, redraw, p.tickCtl)
	return p, nil
}

// Start spawns the pipeline goroutines: scheduler, merger, ticker,
// coordinator, plus cfg.Workers render workers.
func (p *Pipeline) Start() {
	if p.started {
		return
	}
	p.started = true
	logger().Info("pipeline starting",
		"size", fmt.Sprintf("%dx%d", p.cfg.Width, p.cfg.Height),
		"tiles", p.cfg.TileCount(), "workers", p.cfg.Workers)

	p.pool.start()

	sched := newScheduler(p.cfg, p.work, p.schedCtl)
	coord := newCoordinator(p.cfg, p.input, p.schedCtl, p.tickCtl, p.done, p.work, p.results)

	p.spawn(sched.run)
	p.spawn(p.merger.run)
	p.spawn(p.redrawTicker.run)
	p.spawn(coord.run)
}

func (p *Pipeline) spawn(fn func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		fn()
	}()
}

// Stop delivers the external stop signal. Safe to call from any
// goroutine and more than once; only the first delivery matters.
func (p *Pipeline) Stop() {
	p.stopOnce.Do(func() { p.input.SendReliable(Signal{}) })
}

// Complete is closed once every tile of the run has been merged.
func (p *Pipeline) Complete() <-chan struct{} { return p.merger.complete }

// Wait blocks until the coordinator has finished fanning out the stop
// and every pipeline goroutine has exited. Stop must have been called
// (or be about to be called) or Wait blocks indefinitely.
func (p *Pipeline) Wait() {
	p.waitOnce.Do(func() {
		p.done.Recv()
		p.pool.wait()
		p.wg.Wait()
	})
}

// Merged returns the number of tiles merged so far.
func (p *Pipeline) Merged() int { return p.merger.mergedCount() }

// Config returns the run parameters.
func (p *Pipeline) Config() Config { return p.cfg }

// Frame returns the shared frame buffer.
func (p *Pipeline) Frame() *FrameBuffer { return p.fb }
