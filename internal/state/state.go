package state

import (
	"sync"
	"time"
)

type Phase int

const (
	BOOTING Phase = iota
	RUNNING
	STOPPED
	ERROR
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "booting"
	case RUNNING:
		return "running"
	case STOPPED:
		return "stopped"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

// State is the last rendered content of the watchface, as seen by
// inspection surfaces such as the HTTP API.
type State struct {
	Phase       Phase
	Variant     string
	TimeText    string
	DateText    string
	Refreshes   int64
	LastRefresh time.Time
	Layers      int
	Err         string
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	if phase != ERROR {
		store.state.Err = ""
	}
	store.mu.Unlock()
}

func (store *Store) SetVariant(variant string) {
	store.mu.Lock()
	store.state.Variant = variant
	store.mu.Unlock()
}

func (store *Store) SetLayers(count int) {
	store.mu.Lock()
	store.state.Layers = count
	store.mu.Unlock()
}

// RecordRefresh stores the texts pushed to the display by one refresh.
// dateText is empty for faces without a date label.
func (store *Store) RecordRefresh(at time.Time, timeText, dateText string) {
	store.mu.Lock()
	store.state.TimeText = timeText
	store.state.DateText = dateText
	store.state.Refreshes++
	store.state.LastRefresh = at
	store.mu.Unlock()
}

func (store *Store) Fail(err error) {
	store.mu.Lock()
	store.state.Phase = ERROR
	if err != nil {
		store.state.Err = err.Error()
	}
	store.mu.Unlock()
}
