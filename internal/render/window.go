package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/rook-computer/watchface/internal/assets"
	"github.com/rs/xid"
)

type layerKind int

const (
	imageLayer layerKind = iota
	textLayer
)

func (k layerKind) String() string {
	if k == imageLayer {
		return "image"
	}
	return "text"
}

type layer struct {
	id    LayerID
	kind  layerKind
	frame image.Rectangle

	img  image.Image
	mode ScaleMode

	style TextStyle
	text  string
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Window is the visible surface of the watch. It owns every layer created on
// it and composes them, in creation order, onto an offscreen canvas that is
// handed to the target on Flush.
type Window struct {
	Logger Logger
	// MaxLayers bounds the number of live layers; creating more fails with
	// assets.ErrResourceUnavailable. Zero means unbounded.
	MaxLayers int

	mu         sync.Mutex
	background color.Color
	target     Target
	canvas     *image.RGBA
	layers     []*layer
	released   map[LayerID]struct{}
	dirty      bool
	frames     int64
}

func NewWindow(target Target) *Window {
	if target == nil {
		target = NoopTarget{}
	}
	return &Window{
		background: Background,
		target:     target,
		canvas:     image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight)),
		released:   map[LayerID]struct{}{},
		dirty:      true,
	}
}

// SetMaxLayers changes the layer limit for subsequent creations.
func (w *Window) SetMaxLayers(n int) {
	w.mu.Lock()
	w.MaxLayers = n
	w.mu.Unlock()
}

func (w *Window) Bounds() image.Rectangle {
	return w.canvas.Bounds()
}

func (w *Window) SetBackground(c color.Color) {
	w.mu.Lock()
	w.background = c
	w.dirty = true
	w.mu.Unlock()
}

func (w *Window) CreateImageLayer(frame image.Rectangle, img image.Image, mode ScaleMode) (LayerID, error) {
	if img == nil {
		return LayerID{}, fmt.Errorf("image layer without bitmap: %w", assets.ErrResourceUnavailable)
	}
	return w.add(&layer{kind: imageLayer, frame: frame, img: img, mode: mode})
}

func (w *Window) CreateTextLayer(frame image.Rectangle, style TextStyle) (LayerID, error) {
	return w.add(&layer{kind: textLayer, frame: frame, style: style})
}

func (w *Window) add(l *layer) (LayerID, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.MaxLayers > 0 && len(w.layers) >= w.MaxLayers {
		return LayerID{}, fmt.Errorf("%s layer: limit of %d reached: %w", l.kind, w.MaxLayers, assets.ErrResourceUnavailable)
	}
	l.id = xid.New()
	l.frame = l.frame.Canon()
	w.layers = append(w.layers, l)
	w.dirty = true
	w.infof("%s layer %s created at %v", l.kind, l.id, l.frame)
	return l.id, nil
}

func (w *Window) lookup(id LayerID) (*layer, error) {
	for _, l := range w.layers {
		if l.id == id {
			return l, nil
		}
	}
	if _, ok := w.released[id]; ok {
		return nil, fmt.Errorf("layer %s: %w", id, ErrLayerDestroyed)
	}
	return nil, fmt.Errorf("layer %s: %w", id, ErrUnknownLayer)
}

// SetText replaces the content of a text layer. Setting identical text does
// not mark the window dirty.
func (w *Window) SetText(id LayerID, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	l, err := w.lookup(id)
	if err != nil {
		return err
	}
	if l.kind != textLayer {
		return fmt.Errorf("set text on %s layer %s: %w", l.kind, id, ErrWrongLayerKind)
	}
	if l.text != text {
		l.text = text
		w.dirty = true
	}
	return nil
}

func (w *Window) Text(id LayerID) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	l, err := w.lookup(id)
	if err != nil {
		return "", err
	}
	return l.text, nil
}

// DestroyLayer releases a layer. Releasing the same handle twice fails with
// ErrLayerDestroyed.
func (w *Window) DestroyLayer(id LayerID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, l := range w.layers {
		if l.id != id {
			continue
		}
		w.layers = append(w.layers[:i], w.layers[i+1:]...)
		w.released[id] = struct{}{}
		w.dirty = true
		w.infof("%s layer %s destroyed", l.kind, id)
		return nil
	}
	if _, ok := w.released[id]; ok {
		return fmt.Errorf("layer %s: %w", id, ErrLayerDestroyed)
	}
	return fmt.Errorf("layer %s: %w", id, ErrUnknownLayer)
}

// Layers returns the live layer handles in composition order.
func (w *Window) Layers() []LayerID {
	w.mu.Lock()
	defer w.mu.Unlock()
	ids := make([]LayerID, len(w.layers))
	for i, l := range w.layers {
		ids[i] = l.id
	}
	return ids
}

// Flush composes the window and presents it when anything changed since the
// previous flush.
func (w *Window) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirty {
		return nil
	}
	w.compose()
	if err := w.target.Present(w.canvas); err != nil {
		w.errorf("present failed: %v", err)
		return err
	}
	w.dirty = false
	w.frames++
	return nil
}

func (w *Window) Frames() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

func (w *Window) compose() {
	draw.Draw(w.canvas, w.canvas.Bounds(), &image.Uniform{C: w.background}, image.Point{}, draw.Src)
	for _, l := range w.layers {
		switch l.kind {
		case imageLayer:
			drawImageInFrame(w.canvas, l.frame, l.img, l.mode)
		case textLayer:
			drawTextInFrame(w.canvas, l.frame, l.text, l.style)
		}
	}
}

func (w *Window) infof(format string, args ...interface{}) {
	if w.Logger != nil {
		w.Logger.Infof("window", format, args...)
	}
}

func (w *Window) errorf(format string, args ...interface{}) {
	if w.Logger != nil {
		w.Logger.Errorf("window", format, args...)
	}
}
