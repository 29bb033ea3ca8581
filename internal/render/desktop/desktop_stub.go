//go:build !cgo

package desktop

import (
	"context"
	"errors"
	"image"
)

type Target struct {
	Title string
	Scale int
}

func New(title string, scale int) *Target {
	return &Target{Title: title, Scale: scale}
}

func (t *Target) Present(frame *image.RGBA) error { return nil }
func (t *Target) Close() error                    { return nil }

func (t *Target) Run(ctx context.Context) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
