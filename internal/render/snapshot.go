package render

import (
	"errors"
	"image"
	"image/png"
	"io"
	"sync"
)

var ErrNoFrame = errors.New("no frame presented yet")

// SnapshotTarget keeps a copy of the most recent frame for inspection.
type SnapshotTarget struct {
	mu     sync.RWMutex
	frame  *image.RGBA
	frames int64
}

func NewSnapshotTarget() *SnapshotTarget { return &SnapshotTarget{} }

func (s *SnapshotTarget) Present(frame *image.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frame == nil || s.frame.Bounds() != frame.Bounds() {
		s.frame = image.NewRGBA(frame.Bounds())
	}
	copy(s.frame.Pix, frame.Pix)
	s.frames++
	return nil
}

func (s *SnapshotTarget) Close() error { return nil }

// Snapshot returns a copy of the last frame, or nil before the first one.
func (s *SnapshotTarget) Snapshot() *image.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.frame == nil {
		return nil
	}
	out := image.NewRGBA(s.frame.Bounds())
	copy(out.Pix, s.frame.Pix)
	return out
}

func (s *SnapshotTarget) Frames() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frames
}

// WritePNG encodes the last frame, scaled by an integer factor.
func (s *SnapshotTarget) WritePNG(w io.Writer, scale int) error {
	frame := s.Snapshot()
	if frame == nil {
		return ErrNoFrame
	}
	if scale > 1 {
		bounds := frame.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
		nnScale(scaled, scaled.Bounds(), frame)
		return png.Encode(w, scaled)
	}
	return png.Encode(w, frame)
}

// MultiTarget fans a frame out to several targets; the first error wins.
type MultiTarget []Target

func (m MultiTarget) Present(frame *image.RGBA) error {
	var first error
	for _, t := range m {
		if err := t.Present(frame); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m MultiTarget) Close() error {
	var first error
	for _, t := range m {
		if err := t.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
