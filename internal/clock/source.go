package clock

import (
	"sync"
	"time"

	"github.com/rook-computer/watchface/internal/state"
)

// Source is the host time service: the current local wall-clock time and the
// user's 12/24-hour display preference.
type Source interface {
	Now() time.Time
	Clock24h() bool
}

// SystemSource reads the wall clock and a live preferences store.
type SystemSource struct {
	Location *time.Location
	Prefs    *state.Preferences
}

func NewSystemSource(loc *time.Location, prefs *state.Preferences) *SystemSource {
	if loc == nil {
		loc = time.Local
	}
	if prefs == nil {
		prefs = state.GetPreferences()
	}
	return &SystemSource{Location: loc, Prefs: prefs}
}

func (s *SystemSource) Now() time.Time {
	return time.Now().In(s.Location)
}

func (s *SystemSource) Clock24h() bool {
	return s.Prefs.Clock24h()
}

// ManualSource lets the simulator pin the clock to a fixed instant. While no
// instant is pinned it behaves like the wrapped source.
type ManualSource struct {
	Base Source

	mu     sync.RWMutex
	pinned *time.Time
}

func NewManualSource(base Source) *ManualSource {
	return &ManualSource{Base: base}
}

func (s *ManualSource) Now() time.Time {
	s.mu.RLock()
	pinned := s.pinned
	s.mu.RUnlock()
	if pinned != nil {
		return *pinned
	}
	return s.Base.Now()
}

func (s *ManualSource) Clock24h() bool {
	return s.Base.Clock24h()
}

// Pin fixes Now to t until Release is called.
func (s *ManualSource) Pin(t time.Time) {
	s.mu.Lock()
	s.pinned = &t
	s.mu.Unlock()
}

// Advance moves a pinned instant forward by d. It reports false when the
// source is not pinned.
func (s *ManualSource) Advance(d time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pinned == nil {
		return false
	}
	next := s.pinned.Add(d)
	s.pinned = &next
	return true
}

func (s *ManualSource) Release() {
	s.mu.Lock()
	s.pinned = nil
	s.mu.Unlock()
}

func (s *ManualSource) Pinned() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pinned == nil {
		return time.Time{}, false
	}
	return *s.pinned, true
}
