package render

import (
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
)

const DefaultFramebuffer = "/dev/fb0"

// FramebufferTarget presents frames on a Linux framebuffer device, scaling
// the logical canvas to the device resolution.
type FramebufferTarget struct {
	Path   string
	Logger Logger

	dev *fb.Device
}

func NewFramebufferTarget(path string) *FramebufferTarget {
	if path == "" {
		path = DefaultFramebuffer
	}
	return &FramebufferTarget{Path: path}
}

func (t *FramebufferTarget) Open() error {
	dev, err := fb.Open(t.Path)
	if err != nil {
		return err
	}
	t.dev = dev
	if t.Logger != nil {
		bounds := dev.Bounds()
		t.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", t.Path, bounds.Dx(), bounds.Dy())
	}
	return nil
}

func (t *FramebufferTarget) Present(frame *image.RGBA) error {
	return blitToFB(t.dev, frame)
}

func (t *FramebufferTarget) Close() error {
	if t.dev == nil {
		return nil
	}
	t.dev.Close()
	t.dev = nil
	return nil
}

// Helper: nearest-neighbor scale of src into dst rectangle.
func nnScale(dst draw.Image, rect image.Rectangle, src image.Image) {
	srcWidth := src.Bounds().Dx()
	srcHeight := src.Bounds().Dy()
	dstWidth := rect.Dx()
	dstHeight := rect.Dy()
	for y := 0; y < dstHeight; y++ {
		sy := src.Bounds().Min.Y + (y*srcHeight)/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := src.Bounds().Min.X + (x*srcWidth)/dstWidth
			dst.Set(rect.Min.X+x, rect.Min.Y+y, src.At(sx, sy))
		}
	}
}

// Helper: blit canvas to framebuffer, letterboxed to keep the watch aspect.
func blitToFB(dev *fb.Device, canvas *image.RGBA) error {
	if dev == nil {
		return nil
	}
	bounds := dev.Bounds()
	cw, ch := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	dst := scaledRect(bounds, cw, ch, false)
	black := color.RGBA{A: 0xFF}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !(image.Point{X: x, Y: y}).In(dst) {
				dev.Set(x, y, black)
				continue
			}
			sx := ((x - dst.Min.X) * cw) / dst.Dx()
			sy := ((y - dst.Min.Y) * ch) / dst.Dy()
			pixel := canvas.RGBAAt(canvas.Bounds().Min.X+sx, canvas.Bounds().Min.Y+sy)
			dev.Set(x, y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
	return nil
}
