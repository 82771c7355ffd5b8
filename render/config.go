package render

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// ColorChannels is the number of bytes per pixel (RGBA).
const ColorChannels = 4

var (
	ErrZeroDimension = errors.New("image dimensions must be positive")
	ErrZeroTileSize  = errors.New("tile size must be positive")
	ErrWorkerCount   = errors.New("worker count out of range")
	ErrRedrawPeriod  = errors.New("redraw interval must not be negative")
	ErrMaxLatency    = errors.New("max simulated latency must be at least 1ms")
)

// Config holds the immutable run parameters for one pipeline run.
// It is shared read-only across every goroutine and needs no locking.
type Config struct {
	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int

	// TileSize is the edge length of a square tile in pixels. Tiles at the
	// right/bottom edge are clipped to the image bounds.
	TileSize int

	// Workers is the number of render worker goroutines.
	Workers int

	// RedrawInterval is how often the ticker requests a repaint.
	RedrawInterval time.Duration

	// MaxLatency is the upper bound of the simulated per-tile render cost.
	MaxLatency time.Duration
}

// MaxWorkers returns the largest permitted worker count.
func MaxWorkers() int {
	return runtime.NumCPU()
}

// Validate reports the first invalid field, or nil. The pipeline never
// starts with an invalid config.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrZeroDimension, c.Width, c.Height)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: %d", ErrZeroTileSize, c.TileSize)
	}
	if c.Workers < 1 || c.Workers > MaxWorkers() {
		return fmt.Errorf("%w: %d (max %d)", ErrWorkerCount, c.Workers, MaxWorkers())
	}
	if c.RedrawInterval < 0 {
		return fmt.Errorf("%w: %s", ErrRedrawPeriod, c.RedrawInterval)
	}
	if c.MaxLatency < time.Millisecond {
		return fmt.Errorf("%w: %s", ErrMaxLatency, c.MaxLatency)
	}
	return nil
}

// FrameBytes returns the size of the full frame buffer in bytes.
func (c Config) FrameBytes() int {
	return c.Width * c.Height * ColorChannels
}

// TilePixelBytes returns the scratch size needed for one unclipped tile.
func (c Config) TilePixelBytes() int {
	return c.TileSize * c.TileSize * ColorChannels
}
