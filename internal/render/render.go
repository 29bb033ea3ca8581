package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/rs/xid"
	"golang.org/x/image/font"
)

var (
	// ErrLayerDestroyed is returned for any operation on a layer handle that
	// has already been released.
	ErrLayerDestroyed = errors.New("layer already destroyed")
	ErrUnknownLayer   = errors.New("unknown layer")
	ErrWrongLayerKind = errors.New("operation not supported by layer kind")
)

// LayerID is an opaque handle to a display element owned by a Window.
type LayerID = xid.ID

// Target receives composed frames.
type Target interface {
	Present(frame *image.RGBA) error
	Close() error
}

type NoopTarget struct{}

func (NoopTarget) Present(frame *image.RGBA) error { return nil }
func (NoopTarget) Close() error                    { return nil }

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how a text layer renders its content.
// Lines are laid out from the top of the layer frame.
type TextStyle struct {
	Face  font.Face // nil means basicfont
	Color color.Color
	// Background fills the layer frame before drawing; nil is transparent.
	Background color.Color
	Align      TextAlign
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

type ScaleMode int

const (
	ScaleModeNone ScaleMode = iota // draw at natural size, top-left of frame
	ScaleModeFit
	ScaleModeFill
	ScaleModeStretch
)
