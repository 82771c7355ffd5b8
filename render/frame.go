package render

import "sync"

// FrameBuffer is the shared RGBA image the merger writes tiles into and
// the display presents from. It is the only mutable state shared across
// more than two components; one mutex guards it, held only for the
// duration of a single tile copy or snapshot.
type FrameBuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

// NewFrameBuffer allocates a zeroed width*height*4 byte buffer.
func NewFrameBuffer(width, height int) *FrameBuffer {
	stride := width * ColorChannels
	return &FrameBuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *FrameBuffer) Width() int       { return f.width }
func (f *FrameBuffer) Height() int      { return f.height }
func (f *FrameBuffer) StrideBytes() int { return f.stride }

// WriteTile copies a tile's pixel block into the destination rectangle.
// pixels must hold b.Width()*b.Height()*4 bytes in row-major order; each
// tile row maps to a contiguous run inside one destination scanline.
func (f *FrameBuffer) WriteTile(b Bounds, pixels []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rowBytes := b.Width() * ColorChannels
	for y := b.YMin; y <= b.YMax; y++ {
		dstStart := y*f.stride + b.XMin*ColorChannels
		srcStart := (y - b.YMin) * rowBytes
		copy(f.buf[dstStart:dstStart+rowBytes], pixels[srcStart:srcStart+rowBytes])
	}
}

// Snapshot copies the current frame into dst under the lock. Readers
// that skip the lock race with the merger's writes.
func (f *FrameBuffer) Snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
