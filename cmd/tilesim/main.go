// Command tilesim renders a tiled test image through the parallel
// pipeline, either into a preview window or headless.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hackmad/parallel-image-processing-gui/display"
	"github.com/hackmad/parallel-image-processing-gui/render"
)

func main() {
	var (
		width     = flag.Int("width", 512, "Image width in pixels.")
		height    = flag.Int("height", 512, "Image height in pixels.")
		tileSize  = flag.Int("tile-size", 32, "Tile size in pixels.")
		workers   = flag.Int("workers", render.MaxWorkers(), "Number of render workers (default = max logical cores).")
		redrawMs  = flag.Int("redraw-ms", 100, "Redraw request interval in milliseconds.")
		maxLoadMs = flag.Int("max-load-ms", 100, "Max time in milliseconds to simulate tile rendering load.")
		headless  = flag.Bool("headless", false, "Run without a window.")
		ticks     = flag.Uint64("ticks", 0, "Stop after N polls in headless mode (0 = run to completion).")
		metrics   = flag.String("metrics", "", "Serve prometheus metrics on this address (e.g. :9090).")
		snapshot  = flag.String("snapshot", "", "Write a PNG of the final frame to this path.")
		scale     = flag.Int("scale", 1, "Integer magnification for the snapshot.")
		verbose   = flag.Bool("v", false, "Enable debug logging.")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	runID := uuid.New()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run", runID.String())
	render.SetLogger(log)

	cfg := render.Config{
		Width:          *width,
		Height:         *height,
		TileSize:       *tileSize,
		Workers:        *workers,
		RedrawInterval: millis(*redrawMs),
		MaxLatency:     millis(*maxLoadMs),
	}

	if err := run(cfg, *headless, *ticks, *metrics, *snapshot, *scale, runID, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg render.Config, headless bool, ticks uint64, metricsAddr, snapshot string, scale int, runID uuid.UUID, log *slog.Logger) error {
	fb := render.NewFrameBuffer(cfg.Width, cfg.Height)

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				log.Error("metrics listener failed", "err", err)
			}
		}()
	}

	if headless {
		p, err := render.New(cfg, fb, nil)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		p.Start()
		err = display.RunHeadless(ctx, p, display.HeadlessConfig{Ticks: ticks})
		p.Stop()
		p.Wait()
		if err != nil && err != context.Canceled {
			return err
		}
		return saveSnapshot(snapshot, fb, scale, log)
	}

	w := display.NewWindow(fb)
	p, err := render.New(cfg, fb, w.RequestRedraw)
	if err != nil {
		return err
	}
	w.SetHUD(p)

	p.Start()
	runErr := w.Run("")
	p.Stop()
	p.Wait()
	if runErr != nil {
		return runErr
	}
	return saveSnapshot(snapshot, fb, scale, log)
}

func saveSnapshot(path string, fb *render.FrameBuffer, scale int, log *slog.Logger) error {
	if path == "" {
		return nil
	}
	if err := display.SavePNG(path, fb, scale); err != nil {
		return err
	}
	log.Info("snapshot written", "path", path)
	return nil
}

func millis(n int) time.Duration { return time.Duration(n) * time.Millisecond }
