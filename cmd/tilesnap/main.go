// Command tilesnap runs the pipeline headless to completion and writes
// the resulting frame as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"

	"github.com/hackmad/parallel-image-processing-gui/display"
	"github.com/hackmad/parallel-image-processing-gui/render"
)

func main() {
	var (
		width     = flag.Int("width", 512, "Image width in pixels.")
		height    = flag.Int("height", 512, "Image height in pixels.")
		tileSize  = flag.Int("tile-size", 32, "Tile size in pixels.")
		workers   = flag.Int("workers", render.MaxWorkers(), "Number of render workers.")
		maxLoadMs = flag.Int("max-load-ms", 10, "Max simulated per-tile load in milliseconds.")
		out       = flag.String("out", "", "Output path (default tile-<run id>.png).")
		scale     = flag.Int("scale", 1, "Integer magnification for the output.")
	)
	flag.Parse()

	cfg := render.Config{
		Width:          *width,
		Height:         *height,
		TileSize:       *tileSize,
		Workers:        *workers,
		RedrawInterval: 100 * time.Millisecond,
		MaxLatency:     time.Duration(*maxLoadMs) * time.Millisecond,
	}

	path := *out
	if path == "" {
		path = "tile-" + uuid.New().String() + ".png"
	}

	if err := run(cfg, path, *scale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(path)
}

func run(cfg render.Config, path string, scale int) error {
	fb := render.NewFrameBuffer(cfg.Width, cfg.Height)
	p, err := render.New(cfg, fb, nil)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p.Start()
	err = display.RunHeadless(ctx, p, display.HeadlessConfig{})
	p.Stop()
	p.Wait()
	if err != nil {
		return err
	}
	return display.SavePNG(path, fb, scale)
}
