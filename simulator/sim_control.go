package main

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rook-computer/watchface/internal/assets"
	"github.com/rook-computer/watchface/internal/clock"
	"github.com/rook-computer/watchface/internal/state"
)

type SimFaults struct {
	// MissingAssets lists resource or font ids the loader pretends not to have.
	MissingAssets []string `json:"missingAssets"`
	// MaxLayers caps live display layers; 0 means unbounded.
	MaxLayers int `json:"maxLayers"`
}

// Watchface is the part of the running app the simulator drives.
type Watchface interface {
	Refresh() error
	Reload() error
}

type TickSource interface {
	Trigger()
	ResetBaseline()
}

type FaultableLoader interface {
	SetMissing(id string, missing bool)
}

type LayerLimiter interface {
	SetMaxLayers(n int)
}

type SimControl struct {
	Face    Watchface
	Source  *clock.ManualSource
	Ticks   TickSource
	Loader  FaultableLoader
	Display LayerLimiter
	Prefs   *state.Preferences

	startupClock24h bool

	faults struct {
		mu sync.RWMutex
		v  SimFaults
	}
}

func NewSimControl(face Watchface, source *clock.ManualSource, ticks TickSource, loader FaultableLoader, display LayerLimiter, prefs *state.Preferences) *SimControl {
	if prefs == nil {
		prefs = state.GetPreferences()
	}
	return &SimControl{
		Face:            face,
		Source:          source,
		Ticks:           ticks,
		Loader:          loader,
		Display:         display,
		Prefs:           prefs,
		startupClock24h: prefs.Clock24h(),
	}
}

func (c *SimControl) Faults() SimFaults {
	c.faults.mu.RLock()
	defer c.faults.mu.RUnlock()
	v := c.faults.v
	v.MissingAssets = append([]string(nil), v.MissingAssets...)
	return v
}

// SetFaults replaces the active faults. They take effect on the next reload.
func (c *SimControl) SetFaults(v SimFaults) {
	c.faults.mu.Lock()
	defer c.faults.mu.Unlock()
	for _, id := range c.faults.v.MissingAssets {
		c.Loader.SetMissing(id, false)
	}
	missing := append([]string(nil), v.MissingAssets...)
	sort.Strings(missing)
	for _, id := range missing {
		c.Loader.SetMissing(id, true)
	}
	c.Display.SetMaxLayers(v.MaxLayers)
	c.faults.v = SimFaults{MissingAssets: missing, MaxLayers: v.MaxLayers}
}

// PinTime freezes the clock at t and redraws at once.
func (c *SimControl) PinTime(t time.Time) {
	c.Source.Pin(t)
	c.Ticks.ResetBaseline()
	c.Ticks.Trigger()
}

// ReleaseTime returns to the wall clock.
func (c *SimControl) ReleaseTime() {
	c.Source.Release()
	c.Ticks.ResetBaseline()
	c.Ticks.Trigger()
}

// Tick advances a pinned clock by d and delivers a tick. With a live clock
// the tick is delivered for the current instant.
func (c *SimControl) Tick(d time.Duration) {
	c.Source.Advance(d)
	c.Ticks.Trigger()
}

func (c *SimControl) Reset() error {
	c.SetFaults(SimFaults{})
	c.Prefs.SetClock24h(c.startupClock24h)
	c.Source.Release()
	c.Ticks.ResetBaseline()
	return c.Face.Reload()
}

type simTimeResponse struct {
	Now    time.Time `json:"now"`
	Pinned bool      `json:"pinned"`
}

func (c *SimControl) timeResponse() simTimeResponse {
	_, pinned := c.Source.Pinned()
	return simTimeResponse{Now: c.Source.Now(), Pinned: pinned}
}

func registerSimEndpoints(r *mux.Router, control *SimControl) {
	sim := r.PathPrefix("/sim").Subrouter()

	sim.HandleFunc("/reset", func(w http.ResponseWriter, r *http.Request) {
		if err := control.Reset(); err != nil {
			writeSimError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeSimJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodPost)

	sim.HandleFunc("/reload", func(w http.ResponseWriter, r *http.Request) {
		if err := control.Face.Reload(); err != nil {
			writeSimError(w, http.StatusConflict, err.Error())
			return
		}
		writeSimJSON(w, http.StatusAccepted, map[string]any{"ok": true})
	}).Methods(http.MethodPost)

	sim.HandleFunc("/time", func(w http.ResponseWriter, r *http.Request) {
		writeSimJSON(w, http.StatusOK, control.timeResponse())
	}).Methods(http.MethodGet)

	sim.HandleFunc("/time", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Time string `json:"time"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeSimError(w, http.StatusBadRequest, "invalid json")
			return
		}
		t, err := time.Parse(time.RFC3339, body.Time)
		if err != nil {
			writeSimError(w, http.StatusBadRequest, "time must be RFC3339")
			return
		}
		control.PinTime(t)
		writeSimJSON(w, http.StatusOK, control.timeResponse())
	}).Methods(http.MethodPost)

	sim.HandleFunc("/time", func(w http.ResponseWriter, r *http.Request) {
		control.ReleaseTime()
		writeSimJSON(w, http.StatusOK, control.timeResponse())
	}).Methods(http.MethodDelete)

	sim.HandleFunc("/tick", func(w http.ResponseWriter, r *http.Request) {
		advance := time.Minute
		if raw := r.URL.Query().Get("advance"); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil || d < 0 {
				writeSimError(w, http.StatusBadRequest, "advance must be a non-negative duration")
				return
			}
			advance = d
		}
		control.Tick(advance)
		writeSimJSON(w, http.StatusOK, control.timeResponse())
	}).Methods(http.MethodPost)

	sim.HandleFunc("/faults", func(w http.ResponseWriter, r *http.Request) {
		writeSimJSON(w, http.StatusOK, control.Faults())
	}).Methods(http.MethodGet)

	sim.HandleFunc("/faults", func(w http.ResponseWriter, r *http.Request) {
		var patch struct {
			MissingAssets *[]string `json:"missingAssets"`
			MaxLayers     *int      `json:"maxLayers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeSimError(w, http.StatusBadRequest, "invalid json")
			return
		}
		current := control.Faults()
		if patch.MissingAssets != nil {
			current.MissingAssets = *patch.MissingAssets
		}
		if patch.MaxLayers != nil {
			if *patch.MaxLayers < 0 {
				writeSimError(w, http.StatusBadRequest, "maxLayers must not be negative")
				return
			}
			current.MaxLayers = *patch.MaxLayers
		}
		for _, id := range current.MissingAssets {
			if !knownAsset(id) {
				writeSimError(w, http.StatusBadRequest, "unknown asset "+id)
				return
			}
		}
		control.SetFaults(current)
		writeSimJSON(w, http.StatusOK, control.Faults())
	}).Methods(http.MethodPost)
}

func knownAsset(id string) bool {
	switch id {
	case string(assets.ImageBackground), string(assets.FontTimeBold30), string(assets.FontTimeMedium30), string(assets.FontDateBold14):
		return true
	}
	return false
}

func writeSimJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSimError(w http.ResponseWriter, status int, message string) {
	writeSimJSON(w, status, map[string]any{"ok": false, "error": message})
}
