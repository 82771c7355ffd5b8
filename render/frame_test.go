package render

import (
	"bytes"
	"testing"
)

func TestFrameBufferWriteTile(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	b := Bounds{XMin: 2, YMin: 1, XMax: 4, YMax: 3}

	pixels := make([]byte, b.PixelBytes())
	for i := range pixels {
		pixels[i] = 0xAB
	}
	fb.WriteTile(b, pixels)

	snap := make([]byte, fb.StrideBytes()*fb.Height())
	fb.Snapshot(snap)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			off := y*fb.StrideBytes() + x*ColorChannels
			inside := x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
			for c := 0; c < ColorChannels; c++ {
				want := byte(0)
				if inside {
					want = 0xAB
				}
				if snap[off+c] != want {
					t.Fatalf("pixel (%d,%d) byte %d = %#x, want %#x", x, y, c, snap[off+c], want)
				}
			}
		}
	}
}

func TestFrameBufferClippedTileRows(t *testing.T) {
	// A 3-wide clipped tile against the right edge must land on the last
	// three pixels of each scanline, not wrap.
	fb := NewFrameBuffer(5, 2)
	b := Bounds{XMin: 2, YMin: 0, XMax: 4, YMax: 1}

	pixels := bytes.Repeat([]byte{1, 2, 3, 4}, b.Width()*b.Height())
	fb.WriteTile(b, pixels)

	snap := make([]byte, fb.StrideBytes()*fb.Height())
	fb.Snapshot(snap)

	for y := 0; y < 2; y++ {
		row := snap[y*fb.StrideBytes() : (y+1)*fb.StrideBytes()]
		if !bytes.Equal(row[:2*ColorChannels], make([]byte, 2*ColorChannels)) {
			t.Fatalf("row %d: untouched prefix was written: %v", y, row[:2*ColorChannels])
		}
		if !bytes.Equal(row[2*ColorChannels:], bytes.Repeat([]byte{1, 2, 3, 4}, 3)) {
			t.Fatalf("row %d: tile bytes wrong: %v", y, row[2*ColorChannels:])
		}
	}
}

func TestRenderTileClippedSize(t *testing.T) {
	cfg := testConfig(40, 40, 32)
	scratch := make([]byte, cfg.TilePixelBytes())

	// Tile 3 is the bottom-right 8x8 remainder.
	b := cfg.TileBounds(Tile(3))
	pixels := renderTile(cfg, Tile(3), scratch)
	if len(pixels) != b.PixelBytes() {
		t.Fatalf("renderTile pixels = %d bytes, want %d", len(pixels), b.PixelBytes())
	}

	r, g, bl := TileColor(Tile(3))
	for i := 0; i < len(pixels); i += ColorChannels {
		if pixels[i] != r || pixels[i+1] != g || pixels[i+2] != bl || pixels[i+3] != 0xFF {
			t.Fatalf("pixel %d = %v, want [%d %d %d 255]", i/ColorChannels, pixels[i:i+4], r, g, bl)
		}
	}
}
