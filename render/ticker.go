package render

import "time"

// pollInterval bounds the sleep between stop-signal polls so control
// loops stay responsive without busy-spinning.
const pollInterval = time.Millisecond

// ticker periodically invokes the display's redraw hook. It is the only
// component unconditionally live between pipeline start and shutdown;
// it does not depend on the scheduler or merger completing.
type ticker struct {
	interval time.Duration
	redraw   func()
	ctl      *Queue[Signal]
}

func newTicker(interval time.Duration, redraw func(), ctl *Queue[Signal]) *ticker {
	return &ticker{interval: interval, redraw: redraw, ctl: ctl}
}

func (t *ticker) run() {
	sleep := t.interval
	if sleep < pollInterval {
		sleep = pollInterval
	}
	for {
		if _, stop := t.ctl.TryRecv(); stop || t.ctl.Retired() {
			logger().Debug("ticker stopped")
			return
		}
		if t.redraw != nil {
			t.redraw()
			redrawsRequested.Inc()
		}
		time.Sleep(sleep)
	}
}
