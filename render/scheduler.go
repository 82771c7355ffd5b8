package render

import (
	"math/rand"
	"time"
)

// scheduler produces the full set of tile indices in a uniformly random
// order and feeds them into the work queue. It is the only producer of
// render work and runs once per pipeline invocation.
type scheduler struct {
	cfg  Config
	work *Queue[WorkMessage]
	ctl  *Queue[Signal]
	rng  *rand.Rand
}

func newScheduler(cfg Config, work *Queue[WorkMessage], ctl *Queue[Signal]) *scheduler {
	return &scheduler{
		cfg:  cfg,
		work: work,
		ctl:  ctl,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// run enqueues shuffle(0..tileCount) onto the work queue. Before each
// send it polls its control queue; a stop signal (or a retired control
// queue) abandons the remaining tiles immediately.
func (s *scheduler) run() {
	order := s.rng.Perm(s.cfg.TileCount())
	for i, idx := range order {
		if _, stop := s.ctl.TryRecv(); stop || s.ctl.Retired() {
			logger().Info("scheduler stopped early", "remaining", len(order)-i)
			return
		}
		if !s.work.SendReliable(processTile(Tile(idx))) {
			return
		}
		tilesScheduled.Inc()
		workQueueDepth.Set(float64(s.work.Len()))
	}
	logger().Info("scheduler finished", "tiles", s.cfg.TileCount())
}
