package render

import (
	"testing"
	"time"
)

func testConfig(w, h, tile int) Config {
	return Config{
		Width:          w,
		Height:         h,
		TileSize:       tile,
		Workers:        1,
		RedrawInterval: 10 * time.Millisecond,
		MaxLatency:     time.Millisecond,
	}
}

func TestTileCount(t *testing.T) {
	cases := []struct {
		w, h, tile int
		want       int
	}{
		{64, 64, 32, 4},
		{512, 512, 32, 256},
		{100, 100, 32, 16},
		{33, 33, 32, 4},
		{32, 32, 32, 1},
		{1, 1, 32, 1},
		{65, 31, 32, 3},
	}
	for _, c := range cases {
		cfg := testConfig(c.w, c.h, c.tile)
		if got := cfg.TileCount(); got != c.want {
			t.Errorf("TileCount(%dx%d/%d) = %d, want %d", c.w, c.h, c.tile, got, c.want)
		}
	}
}

func TestTileBoundsWithinImage(t *testing.T) {
	configs := []Config{
		testConfig(64, 64, 32),
		testConfig(100, 70, 32),
		testConfig(33, 65, 32),
		testConfig(512, 512, 17),
	}
	for _, cfg := range configs {
		for i := 0; i < cfg.TileCount(); i++ {
			b := cfg.TileBounds(Tile(i))
			if b.XMin < 0 || b.YMin < 0 || b.XMax >= cfg.Width || b.YMax >= cfg.Height {
				t.Fatalf("TileBounds(%d) = %+v escapes %dx%d", i, b, cfg.Width, cfg.Height)
			}
			if b.XMin > b.XMax || b.YMin > b.YMax {
				t.Fatalf("TileBounds(%d) = %+v is empty", i, b)
			}
			if b.Width() > cfg.TileSize || b.Height() > cfg.TileSize {
				t.Fatalf("TileBounds(%d) = %+v exceeds tile size %d", i, b, cfg.TileSize)
			}
		}
	}
}

func TestTileBoundsPartitionImage(t *testing.T) {
	configs := []Config{
		testConfig(64, 64, 32),
		testConfig(100, 70, 32),
		testConfig(33, 65, 16),
	}
	for _, cfg := range configs {
		covered := make([]int, cfg.Width*cfg.Height)
		for i := 0; i < cfg.TileCount(); i++ {
			b := cfg.TileBounds(Tile(i))
			for y := b.YMin; y <= b.YMax; y++ {
				for x := b.XMin; x <= b.XMax; x++ {
					covered[y*cfg.Width+x]++
				}
			}
		}
		for off, n := range covered {
			if n != 1 {
				t.Fatalf("%dx%d/%d: pixel (%d,%d) covered %d times, want 1",
					cfg.Width, cfg.Height, cfg.TileSize, off%cfg.Width, off/cfg.Width, n)
			}
		}
	}
}

func TestTileBoundsIdempotent(t *testing.T) {
	cfg := testConfig(100, 70, 32)
	for i := 0; i < cfg.TileCount(); i++ {
		a := cfg.TileBounds(Tile(i))
		b := cfg.TileBounds(Tile(i))
		if a != b {
			t.Fatalf("TileBounds(%d) not stable: %+v vs %+v", i, a, b)
		}
	}
}

func TestTileBoundsConcrete(t *testing.T) {
	cfg := testConfig(64, 64, 32)
	want := []Bounds{
		{XMin: 0, YMin: 0, XMax: 31, YMax: 31},
		{XMin: 32, YMin: 0, XMax: 63, YMax: 31},
		{XMin: 0, YMin: 32, XMax: 31, YMax: 63},
		{XMin: 32, YMin: 32, XMax: 63, YMax: 63},
	}
	for i, wb := range want {
		if got := cfg.TileBounds(Tile(i)); got != wb {
			t.Errorf("TileBounds(%d) = %+v, want %+v", i, got, wb)
		}
	}
}

func TestTileColorStable(t *testing.T) {
	for i := 0; i < 16; i++ {
		r1, g1, b1 := TileColor(Tile(i))
		r2, g2, b2 := TileColor(Tile(i))
		if r1 != r2 || g1 != g2 || b1 != b2 {
			t.Fatalf("TileColor(%d) not stable", i)
		}
	}
}
