package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/opentype"
)

// ErrResourceUnavailable is returned when a bundled asset cannot be found or
// decoded. Callers must not create display elements from a failed load.
var ErrResourceUnavailable = errors.New("resource unavailable")

type ResourceID string

const ImageBackground ResourceID = "IMAGE_BACKGROUND"

type FontID string

const (
	FontTimeBold30   FontID = "FONT_TIME_BOLD_30"
	FontTimeMedium30 FontID = "FONT_TIME_MEDIUM_30"
	FontDateBold14   FontID = "FONT_DATE_BOLD_14"
)

type fontSpec struct {
	ttf  []byte
	size float64
}

var imageResources = map[ResourceID][]byte{
	ImageBackground: BackgroundPNG,
}

var fontResources = map[FontID]fontSpec{
	FontTimeBold30:   {ttf: gobold.TTF, size: 30},
	FontTimeMedium30: {ttf: gomedium.TTF, size: 30},
	FontDateBold14:   {ttf: gobold.TTF, size: 14},
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Loader resolves resource identifiers to decoded images and font faces.
type Loader struct {
	Logger Logger
	// DPI used for font faces; 72 makes the point size equal the pixel size.
	DPI float64

	mu      sync.RWMutex
	missing map[string]bool
}

func NewLoader() *Loader {
	return &Loader{DPI: 72, missing: map[string]bool{}}
}

// SetMissing makes subsequent loads of id fail as if the asset were not
// bundled. Used by the simulator to exercise startup failures.
func (l *Loader) SetMissing(id string, missing bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.missing == nil {
		l.missing = map[string]bool{}
	}
	if missing {
		l.missing[id] = true
	} else {
		delete(l.missing, id)
	}
}

func (l *Loader) isMissing(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.missing[id]
}

func (l *Loader) LoadImage(id ResourceID) (image.Image, error) {
	data, ok := imageResources[id]
	if !ok || l.isMissing(string(id)) {
		return nil, fmt.Errorf("image %s: %w", id, ErrResourceUnavailable)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		l.errorf("image %s decode failed: %v", id, err)
		return nil, fmt.Errorf("image %s: %v: %w", id, err, ErrResourceUnavailable)
	}
	l.infof("image %s loaded (%dx%d)", id, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// LoadFont parses the font with freetype and falls back to the opentype
// parser when freetype rejects it.
func (l *Loader) LoadFont(id FontID) (font.Face, error) {
	spec, ok := fontResources[id]
	if !ok || l.isMissing(string(id)) {
		return nil, fmt.Errorf("font %s: %w", id, ErrResourceUnavailable)
	}
	dpi := l.DPI
	if dpi <= 0 {
		dpi = 72
	}

	tt, err := truetype.Parse(spec.ttf)
	if err == nil {
		l.infof("font %s parsed with freetype at %.0fpt", id, spec.size)
		return truetype.NewFace(tt, &truetype.Options{Size: spec.size, DPI: dpi, Hinting: font.HintingFull}), nil
	}
	l.errorf("font %s truetype parse failed: %v", id, err)

	otf, oerr := opentype.Parse(spec.ttf)
	if oerr != nil {
		return nil, fmt.Errorf("font %s: %v: %w", id, oerr, ErrResourceUnavailable)
	}
	face, ferr := opentype.NewFace(otf, &opentype.FaceOptions{Size: spec.size, DPI: dpi, Hinting: font.HintingFull})
	if ferr != nil {
		return nil, fmt.Errorf("font %s: %v: %w", id, ferr, ErrResourceUnavailable)
	}
	return face, nil
}

func (l *Loader) infof(format string, args ...interface{}) {
	if l.Logger != nil {
		l.Logger.Infof("assets", format, args...)
	}
}

func (l *Loader) errorf(format string, args ...interface{}) {
	if l.Logger != nil {
		l.Logger.Errorf("assets", format, args...)
	}
}
