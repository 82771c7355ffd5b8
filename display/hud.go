package display

import (
	"fmt"
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/hackmad/parallel-image-processing-gui/render"
)

var _ drivers.Displayer = (*imgDisplay)(nil)

var (
	hudFG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	hudBG = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// hud draws a one-line render status onto the presentation image. It
// writes to the snapshot copy, never to the shared frame buffer, so it
// cannot contend with the merger or corrupt rendered tiles.
type hud struct {
	p *render.Pipeline
}

func newHUD(p *render.Pipeline) *hud { return &hud{p: p} }

func (h *hud) draw(img *image.RGBA) {
	d := &imgDisplay{img: img}

	status := fmt.Sprintf("tiles %d/%d  workers %d",
		h.p.Merged(), h.p.Config().TileCount(), h.p.Config().Workers)

	_, w := tinyfont.LineWidth(&tinyfont.Org01, status)
	fillRect(img, 0, 0, int(w)+4, 9, hudBG)
	tinyfont.WriteLine(d, &tinyfont.Org01, 2, 6, status, hudFG)
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for yy := y; yy < y+h && yy < img.Bounds().Dy(); yy++ {
		for xx := x; xx < x+w && xx < img.Bounds().Dx(); xx++ {
			img.SetRGBA(xx, yy, c)
		}
	}
}

// imgDisplay exposes an image.RGBA as a tinyfont drawing target.
type imgDisplay struct {
	img *image.RGBA
}

func (d *imgDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imgDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	b := d.img.Bounds()
	if ix < 0 || ix >= b.Dx() || iy < 0 || iy >= b.Dy() {
		return
	}
	d.img.SetRGBA(ix, iy, c)
}

func (d *imgDisplay) Display() error { return nil }
