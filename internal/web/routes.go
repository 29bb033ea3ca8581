package web

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/rook-computer/watchface/internal/assets"
)

// RegisterAPIV1 registers the public API routes under /api/v1/.
func RegisterAPIV1(r *mux.Router, deps APIV1Deps) {
	api := r.PathPrefix("/api/v1").Subrouter()
	h := apiV1{deps: deps.withDefaults()}
	api.HandleFunc("/face.png", h.facePNG).Methods(http.MethodGet)
	api.HandleFunc("/state", h.state).Methods(http.MethodGet)
	api.HandleFunc("/preferences", h.getPreferences).Methods(http.MethodGet)
	api.HandleFunc("/preferences", h.putPreferences).Methods(http.MethodPut)
	api.HandleFunc("/qr.png", h.qrPNG).Methods(http.MethodGet)
}

// RegisterUI serves either embedded UI assets or a directory. It matches
// every path, so register it last.
func RegisterUI(r *mux.Router, staticDir string) {
	r.PathPrefix("/").Handler(StaticUIHandler(staticDir))
}

// NewDefaultRouter builds the standard router used by the device:
// - /api/v1/* for the API
// - / for the web UI
func NewDefaultRouter(staticDir string, deps APIV1Deps) *mux.Router {
	r := mux.NewRouter()
	RegisterAPIV1(r, deps)
	RegisterUI(r, staticDir)
	return r
}

func StaticUIHandler(dir string) http.Handler {
	var fileServer http.Handler
	if dir == "" {
		fileServer = http.FileServer(http.FS(assets.WebUI))
	} else if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return http.NotFoundHandler()
	} else {
		fileServer = http.FileServer(http.Dir(dir))
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Clean path to avoid oddities.
		r.URL.Path = filepath.ToSlash(filepath.Clean("/" + r.URL.Path))
		fileServer.ServeHTTP(w, r)
	})
}
