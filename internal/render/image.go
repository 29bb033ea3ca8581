package render

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// drawImageInFrame composites img into frame according to mode.
func drawImageInFrame(canvas *image.RGBA, frame image.Rectangle, img image.Image, mode ScaleMode) {
	if img == nil || frame.Empty() {
		return
	}
	srcBounds := img.Bounds()
	switch mode {
	case ScaleModeStretch:
		xdraw.NearestNeighbor.Scale(canvas, frame, img, srcBounds, xdraw.Over, nil)
	case ScaleModeFit, ScaleModeFill:
		dst := scaledRect(frame, srcBounds.Dx(), srcBounds.Dy(), mode == ScaleModeFill)
		clip, ok := canvas.SubImage(frame).(*image.RGBA)
		if !ok {
			return
		}
		xdraw.ApproxBiLinear.Scale(clip, dst, img, srcBounds, xdraw.Over, nil)
	default:
		dst := image.Rectangle{Min: frame.Min, Max: frame.Min.Add(srcBounds.Size())}.Intersect(frame)
		draw.Draw(canvas, dst, img, srcBounds.Min, draw.Over)
	}
}

// scaledRect centers a srcW x srcH box in frame, scaled to fit inside it or,
// with fill set, to cover it.
func scaledRect(frame image.Rectangle, srcW, srcH int, fill bool) image.Rectangle {
	if srcW <= 0 || srcH <= 0 {
		return image.Rectangle{}
	}
	scaleX := float64(frame.Dx()) / float64(srcW)
	scaleY := float64(frame.Dy()) / float64(srcH)
	scale := scaleX
	if (fill && scaleY > scale) || (!fill && scaleY < scale) {
		scale = scaleY
	}
	width := int(float64(srcW) * scale)
	height := int(float64(srcH) * scale)
	minX := frame.Min.X + (frame.Dx()-width)/2
	minY := frame.Min.Y + (frame.Dy()-height)/2
	return image.Rect(minX, minY, minX+width, minY+height)
}
