package state

import "sync"

type PreferencesSnapshot struct {
	Clock24h bool
}

// Preferences holds user display settings that may change while the face is
// running. Readers must query it on every use rather than caching values.
type Preferences struct {
	mu sync.RWMutex

	clock24h bool
}

var (
	preferencesOnce sync.Once
	preferences     *Preferences
)

func GetPreferences() *Preferences {
	preferencesOnce.Do(func() {
		preferences = &Preferences{clock24h: true}
	})
	return preferences
}

func NewPreferences(clock24h bool) *Preferences {
	return &Preferences{clock24h: clock24h}
}

func (prefs *Preferences) Snapshot() PreferencesSnapshot {
	prefs.mu.RLock()
	defer prefs.mu.RUnlock()
	return PreferencesSnapshot{Clock24h: prefs.clock24h}
}

func (prefs *Preferences) Clock24h() bool {
	prefs.mu.RLock()
	defer prefs.mu.RUnlock()
	return prefs.clock24h
}

func (prefs *Preferences) SetClock24h(clock24h bool) {
	prefs.mu.Lock()
	prefs.clock24h = clock24h
	prefs.mu.Unlock()
}
