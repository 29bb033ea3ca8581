// Package faces describes the fixed element layout of each watchface
// variant: which bitmap goes behind the labels and where the time and date
// labels sit, in which font and color.
package faces

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/rook-computer/watchface/internal/assets"
	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/render/layout"
)

const (
	NameClassic = "classic"
	NameDated   = "dated"
)

// Label places one text element.
type Label struct {
	Frame image.Rectangle
	Font  assets.FontID
	Color color.Color
	// Background fills the label frame; nil leaves it transparent.
	Background color.Color
	Align      render.TextAlign
}

type Face struct {
	Name string
	// Background is the window color behind the bitmap.
	Background color.Color
	Image      assets.ResourceID
	ImageFrame image.Rectangle
	Time       Label
	// Date is nil for faces that only show the time.
	Date *Label
}

func (f Face) HasDate() bool { return f.Date != nil }

// TextElements is the number of text labels the face creates.
func (f Face) TextElements() int {
	if f.HasDate() {
		return 2
	}
	return 1
}

func screen() image.Rectangle {
	return image.Rect(0, 0, render.CanvasWidth, render.CanvasHeight)
}

// rect converts an origin+size frame into an image.Rectangle.
func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// Classic fills the top square with the bitmap and centers the time on a
// black strip along the bottom edge.
func Classic() Face {
	square, _ := layout.SplitHorizontal(screen(), render.CanvasWidth)
	return Face{
		Name:       NameClassic,
		Background: render.Background,
		Image:      assets.ImageBackground,
		ImageFrame: square,
		Time: Label{
			// The strip overlaps the bottom of the bitmap by 10px.
			Frame:      layout.Row(screen(), 134, 34),
			Font:       assets.FontTimeBold30,
			Color:      render.Foreground,
			Background: render.Background,
			Align:      render.TextAlignCenter,
		},
	}
}

// Dated insets the bitmap and puts the time bottom-left and the weekday and
// date bottom-right.
func Dated() Face {
	return Face{
		Name:       NameDated,
		Background: render.Background,
		Image:      assets.ImageBackground,
		ImageFrame: rect(2, 2, 140, 140),
		Time: Label{
			Frame: rect(6, 134, 90, 34),
			Font:  assets.FontTimeMedium30,
			Color: render.Foreground,
			Align: render.TextAlignLeft,
		},
		Date: &Label{
			Frame: rect(90, 130, 50, 38),
			Font:  assets.FontDateBold14,
			Color: render.Foreground,
			Align: render.TextAlignRight,
		},
	}
}

var registry = map[string]func() Face{
	NameClassic: Classic,
	NameDated:   Dated,
}

func ByName(name string) (Face, error) {
	build, ok := registry[name]
	if !ok {
		return Face{}, fmt.Errorf("unknown face %q (available: %v)", name, Names())
	}
	return build(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
