package web

// ServerConfig contains settings for running the HTTP server.
//
// The intended defaults differ per binary:
// - real device: :80
// - simulator:   :8080
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
	// StaticDir, when set to an existing directory, is served at "/" instead
	// of the embedded UI.
	StaticDir string
}

const (
	DefaultDeviceAddr    = ":80"
	DefaultSimulatorAddr = ":8080"
)
