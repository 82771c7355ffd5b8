package display

import (
	"context"
	"fmt"
	"time"

	"github.com/hackmad/parallel-image-processing-gui/render"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	// Hz is the poll rate. Zero means 60.
	Hz int
	// Ticks stops the runner after N polls (0 = run until the render
	// completes or the context is cancelled).
	Ticks uint64
}

// RunHeadless drives a started pipeline without opening a window. It
// returns nil once every tile has been merged, ctx.Err() on
// cancellation, and nil again when the optional tick budget runs out.
// It does not stop the pipeline; the caller owns that.
func RunHeadless(ctx context.Context, p *render.Pipeline, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.Complete():
			return nil
		case <-t.C:
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
