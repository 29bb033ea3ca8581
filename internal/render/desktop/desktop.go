//go:build cgo

// Package desktop shows the watch canvas in a desktop window for the
// simulator.
package desktop

import (
	"context"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rook-computer/watchface/internal/render"
)

// Target shows frames in a desktop window. Present may be called from
// any goroutine; Run must be called from the main goroutine.
type Target struct {
	Title string
	Scale int

	mu      sync.Mutex
	pending []byte
	size    image.Point
}

func New(title string, scale int) *Target {
	if scale <= 0 {
		scale = 3
	}
	return &Target{Title: title, Scale: scale, size: image.Pt(render.CanvasWidth, render.CanvasHeight)}
}

func (t *Target) Present(frame *image.RGBA) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.pending) != len(frame.Pix) {
		t.pending = make([]byte, len(frame.Pix))
	}
	copy(t.pending, frame.Pix)
	t.size = frame.Bounds().Size()
	return nil
}

func (t *Target) Close() error { return nil }

// Run opens the window and blocks until it is closed or ctx is done.
func (t *Target) Run(ctx context.Context) error {
	t.mu.Lock()
	size := t.size
	t.mu.Unlock()
	ebiten.SetWindowTitle(t.Title)
	ebiten.SetWindowSize(size.X*t.Scale, size.Y*t.Scale)
	ebiten.SetTPS(30)
	return ebiten.RunGame(&desktopGame{ctx: ctx, target: t})
}

type desktopGame struct {
	ctx    context.Context
	target *Target
	img    *ebiten.Image
}

func (g *desktopGame) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
		return nil
	}
}

func (g *desktopGame) Draw(screen *ebiten.Image) {
	g.target.mu.Lock()
	defer g.target.mu.Unlock()
	if g.target.pending == nil {
		return
	}
	if g.img == nil || g.img.Bounds().Size() != g.target.size {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(g.target.size.X, g.target.size.Y)
	}
	g.img.WritePixels(g.target.pending)
	screen.DrawImage(g.img, nil)
}

func (g *desktopGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.target.size.X, g.target.size.Y
}
