package render

import "time"

// coordState tracks the coordinator's one-shot progression.
type coordState uint8

const (
	coordRunning coordState = iota
	coordDraining
	coordTerminated
)

// coordinator listens for a single external stop signal and fans it out
// to every pipeline component, then reports completion on the done
// queue. The transition Running -> Draining -> Terminated happens once;
// the coordinator never re-enters Running.
type coordinator struct {
	cfg      Config
	input    *Queue[Signal]
	schedCtl *Queue[Signal]
	tickCtl  *Queue[Signal]
	work     *Queue[WorkMessage]
	results  *Queue[ResultMessage]
	done     *Queue[Signal]
	state    coordState
}

func newCoordinator(cfg Config, input, schedCtl, tickCtl, done *Queue[Signal],
	work *Queue[WorkMessage], results *Queue[ResultMessage]) *coordinator {
	return &coordinator{
		cfg:      cfg,
		input:    input,
		schedCtl: schedCtl,
		tickCtl:  tickCtl,
		work:     work,
		results:  results,
		done:     done,
	}
}

func (c *coordinator) run() {
	for c.state == coordRunning {
		if _, stop := c.input.TryRecv(); stop || c.input.Retired() {
			c.drain()
			return
		}
		time.Sleep(pollInterval)
	}
}

// drain fans the stop out: the scheduler and ticker each get one
// control signal, every worker gets one work-queue Stop, and the merger
// gets one result-queue Stop. Tiles still queued between the scheduler
// stop and the worker stops are discarded so workers reach their pills
// without rendering abandoned work first.
func (c *coordinator) drain() {
	c.state = coordDraining
	logger().Info("shutdown draining")

	c.schedCtl.SendReliable(Signal{})
	c.tickCtl.SendReliable(Signal{})

	dropped := 0
	for {
		if _, ok := c.work.TryRecv(); !ok {
			break
		}
		dropped++
	}
	if dropped > 0 {
		tilesDropped.Add(float64(dropped))
		logger().Info("dropped queued tiles", "count", dropped)
	}

	for i := 0; i < c.cfg.Workers; i++ {
		c.work.SendReliable(stopWork())
	}
	c.results.SendReliable(stopResult())

	c.done.SendReliable(Signal{})
	c.state = coordTerminated
	logger().Info("shutdown complete")
}
