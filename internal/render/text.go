package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func faceOrDefault(face font.Face) font.Face {
	if face == nil {
		return basicfont.Face7x13
	}
	return face
}

// MeasureText returns the extent of text, which may span several lines.
func MeasureText(text string, style TextStyle) TextMetrics {
	face := faceOrDefault(style.Face)
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	return TextMetrics{
		Width:      width,
		Height:     lineHeight * len(lines),
		Ascent:     metrics.Ascent.Ceil(),
		Descent:    metrics.Descent.Ceil(),
		LineHeight: lineHeight,
	}
}

// drawTextInFrame draws text clipped to frame, one line per "\n".
func drawTextInFrame(canvas *image.RGBA, frame image.Rectangle, text string, style TextStyle) {
	clip, ok := canvas.SubImage(frame).(*image.RGBA)
	if !ok || clip.Bounds().Empty() {
		return
	}
	if style.Background != nil {
		draw.Draw(clip, clip.Bounds(), &image.Uniform{C: style.Background}, image.Point{}, draw.Src)
	}
	fg := style.Color
	if fg == nil {
		fg = Foreground
	}
	face := faceOrDefault(style.Face)
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()

	drawer := &font.Drawer{Dst: clip, Src: image.NewUniform(color.RGBAModel.Convert(fg)), Face: face}
	for i, line := range strings.Split(text, "\n") {
		lineWidth := drawer.MeasureString(line).Ceil()
		xPos := frame.Min.X
		switch style.Align {
		case TextAlignCenter:
			xPos = frame.Min.X + (frame.Dx()-lineWidth)/2
		case TextAlignRight:
			xPos = frame.Max.X - lineWidth
		}
		baseline := frame.Min.Y + ascent + i*lineHeight
		drawer.Dot = fixed.P(xPos, baseline)
		drawer.DrawString(line)
	}
}
