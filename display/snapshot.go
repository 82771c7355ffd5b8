package display

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/hackmad/parallel-image-processing-gui/render"
)

// WriteSnapshot encodes the current frame as PNG. scale is an integer
// magnification; values below 2 write the frame at native size.
func WriteSnapshot(w io.Writer, fb *render.FrameBuffer, scale int) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	fb.Snapshot(img.Pix)

	out := image.Image(img)
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, fb.Width()*scale, fb.Height()*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		out = dst
	}
	return png.Encode(w, out)
}

// SavePNG writes the frame to path via WriteSnapshot.
func SavePNG(path string, fb *render.FrameBuffer, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()
	if err := WriteSnapshot(f, fb, scale); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}
