// Package display presents the shared frame buffer: an ebiten preview
// window, a windowless runner for CI and tests, a HUD overlay, and PNG
// snapshot export.
package display

import (
	"image"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hackmad/parallel-image-processing-gui/internal/buildinfo"
	"github.com/hackmad/parallel-image-processing-gui/render"
)

// Window is the desktop preview. The pipeline's ticker calls
// RequestRedraw; the draw path re-uploads pixels only when that flag is
// set, so presentation cost tracks the redraw interval rather than the
// display refresh rate.
type Window struct {
	fb    *render.FrameBuffer
	dirty atomic.Bool
	hud   *hud
}

// NewWindow creates an unopened preview for fb. The returned Window's
// RequestRedraw is the hook to hand to render.New.
func NewWindow(fb *render.FrameBuffer) *Window {
	return &Window{fb: fb}
}

// RequestRedraw marks the frame dirty. Fire-and-forget; safe from any
// goroutine.
func (w *Window) RequestRedraw() { w.dirty.Store(true) }

// SetHUD enables the status overlay for the given pipeline.
func (w *Window) SetHUD(p *render.Pipeline) { w.hud = newHUD(p) }

// Run opens the window and blocks until it is closed or Escape is
// pressed. The pipeline keeps running independently; the caller is
// expected to Stop and Wait on it after Run returns.
func (w *Window) Run(title string) error {
	if title == "" {
		title = "Tile Render (" + buildinfo.Short() + ")"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.fb.Width()*2, w.fb.Height()*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	g := &game{w: w}
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type game struct {
	w       *Window
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.w.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
		g.scratch = make([]byte, fb.StrideBytes()*fb.Height())
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
	}

	if g.w.dirty.Swap(false) {
		fb.Snapshot(g.scratch)
		copy(g.img.Pix, g.scratch)
		if g.w.hud != nil {
			g.w.hud.draw(g.img)
		}
		g.fbImg.WritePixels(g.img.Pix)
	}

	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w.fb.Width(), g.w.fb.Height()
}
