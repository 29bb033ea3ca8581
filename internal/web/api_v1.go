package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/state"
)

const (
	defaultFaceScale = 2
	maxFaceScale     = 8
	defaultQRSize    = 256
	maxRequestBody   = 4 << 10
)

// FrameSource provides the most recently presented watchface frame.
type FrameSource interface {
	WritePNG(w io.Writer, scale int) error
}

type StateSource interface {
	Snapshot() state.State
}

type PreferenceStore interface {
	Snapshot() state.PreferencesSnapshot
	SetClock24h(clock24h bool)
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// APIV1Deps bundles what the API reads and mutates. Nil fields fall back to
// empty implementations so the simulator and tests can wire partial sets.
type APIV1Deps struct {
	Frames FrameSource
	State  StateSource
	Prefs  PreferenceStore
	// Refresh asks the running watchface to redraw, e.g. after a preference
	// change.
	Refresh func() error
	Logger  Logger
}

func (d APIV1Deps) withDefaults() APIV1Deps {
	if d.Frames == nil {
		d.Frames = render.NewSnapshotTarget()
	}
	if d.State == nil {
		d.State = state.NewStore()
	}
	if d.Prefs == nil {
		d.Prefs = state.GetPreferences()
	}
	if d.Logger == nil {
		d.Logger = noopLogger{}
	}
	return d
}

type noopLogger struct{}

func (noopLogger) Infof(component, format string, args ...interface{})  {}
func (noopLogger) Errorf(component, format string, args ...interface{}) {}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type stateResponse struct {
	Phase       string     `json:"phase"`
	Variant     string     `json:"variant"`
	Time        string     `json:"time"`
	Date        string     `json:"date,omitempty"`
	Refreshes   int64      `json:"refreshes"`
	LastRefresh *time.Time `json:"lastRefresh,omitempty"`
	Layers      int        `json:"layers"`
	Error       string     `json:"error,omitempty"`
}

type preferencesBody struct {
	Clock24h *bool `json:"clock24h"`
}

type preferencesResponse struct {
	Clock24h bool `json:"clock24h"`
}

type apiV1 struct {
	deps APIV1Deps
}

func (h apiV1) facePNG(w http.ResponseWriter, r *http.Request) {
	scale, err := intQuery(r, "scale", defaultFaceScale, 1, maxFaceScale)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_scale", err.Error())
		return
	}
	// Encode before writing headers so a missing frame can still be reported.
	var buf bytes.Buffer
	if err := h.deps.Frames.WritePNG(&buf, scale); err != nil {
		if errors.Is(err, render.ErrNoFrame) {
			writeAPIError(w, http.StatusServiceUnavailable, "no_frame", "nothing rendered yet")
			return
		}
		h.deps.Logger.Errorf("web", "face.png: %v", err)
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h apiV1) state(w http.ResponseWriter, r *http.Request) {
	snap := h.deps.State.Snapshot()
	resp := stateResponse{
		Phase:     snap.Phase.String(),
		Variant:   snap.Variant,
		Time:      snap.TimeText,
		Date:      snap.DateText,
		Refreshes: snap.Refreshes,
		Layers:    snap.Layers,
		Error:     snap.Err,
	}
	if !snap.LastRefresh.IsZero() {
		last := snap.LastRefresh
		resp.LastRefresh = &last
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h apiV1) getPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, preferencesResponse{Clock24h: h.deps.Prefs.Snapshot().Clock24h})
}

func (h apiV1) putPreferences(w http.ResponseWriter, r *http.Request) {
	var body preferencesBody
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if body.Clock24h == nil {
		writeAPIError(w, http.StatusBadRequest, "bad_request", "clock24h is required")
		return
	}

	h.deps.Prefs.SetClock24h(*body.Clock24h)
	h.deps.Logger.Infof("web", "preference clock24h=%t", *body.Clock24h)
	if h.deps.Refresh != nil {
		if err := h.deps.Refresh(); err != nil {
			// The preference is stored; the next minute tick picks it up.
			h.deps.Logger.Errorf("web", "refresh after preference change: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, preferencesResponse{Clock24h: h.deps.Prefs.Snapshot().Clock24h})
}

// qrPNG renders a QR code pointing at the web UI of this host.
func (h apiV1) qrPNG(w http.ResponseWriter, r *http.Request) {
	size, err := intQuery(r, "size", defaultQRSize, 64, 2048)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "bad_size", err.Error())
		return
	}
	payload := "http://" + r.Host + "/"
	var buf bytes.Buffer
	if err := render.WriteQRCodePNG(&buf, payload, size); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func intQuery(r *http.Request, key string, def, min, max int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}
	if v < min || v > max {
		return 0, errors.New(key + " must be between " + strconv.Itoa(min) + " and " + strconv.Itoa(max))
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
