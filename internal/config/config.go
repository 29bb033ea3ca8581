// Package config resolves runtime settings from an optional .env file and
// WATCHFACE_* environment variables. Command-line flags are layered on top by
// the binaries, using the resolved values as their defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/rook-computer/watchface/internal/app/faces"
	"github.com/rook-computer/watchface/internal/render"
)

const (
	EnvFace        = "WATCHFACE_FACE"
	EnvTimezone    = "WATCHFACE_TZ"
	EnvClock24h    = "WATCHFACE_CLOCK24H"
	EnvFramebuffer = "WATCHFACE_FB"
	EnvListenAddr  = "WATCHFACE_LISTEN"
	EnvDevMode     = "WATCHFACE_DEV"
	EnvStaticDir   = "WATCHFACE_STATIC_DIR"
	EnvDebug       = "WATCHFACE_DEBUG"
	EnvDebugLog    = "WATCHFACE_DEBUG_LOG"
	EnvStdioLog    = "WATCHFACE_STDIO_LOG"
)

// DefaultEnvFile is read when present; a missing file is not an error.
const DefaultEnvFile = ".env"

type Config struct {
	Face        string
	Timezone    string
	Clock24h    bool
	Framebuffer string
	// ListenAddr of the HTTP API; "off" disables it.
	ListenAddr string
	DevMode    bool
	StaticDir  string
	Debug      bool
	DebugLog   string
	StdioLog   string
}

const ListenOff = "off"

// Defaults returns the built-in settings for a binary listening on
// listenAddr.
func Defaults(listenAddr string) Config {
	return Config{
		Face:        faces.NameDated,
		Timezone:    "Local",
		Clock24h:    true,
		Framebuffer: render.DefaultFramebuffer,
		ListenAddr:  listenAddr,
		DebugLog:    "./watchface-debug.log",
	}
}

// LoadEnvFiles loads variables from the given files into the process
// environment without overriding variables that are already set. With no
// paths it loads DefaultEnvFile if it exists.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(DefaultEnvFile); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		paths = []string{DefaultEnvFile}
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

// FromEnv overlays WATCHFACE_* variables onto base.
func FromEnv(base Config) (Config, error) {
	return fromLookup(base, os.LookupEnv)
}

// FromMap is FromEnv over an explicit variable set, e.g. one read with
// godotenv.Read.
func FromMap(base Config, vars map[string]string) (Config, error) {
	return fromLookup(base, func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
}

func fromLookup(base Config, lookup func(string) (string, bool)) (Config, error) {
	cfg := base
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	boolean := func(key string, dst *bool) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be a boolean (got %q)", key, v))
			return
		}
		*dst = parsed
	}

	str(EnvFace, &cfg.Face)
	str(EnvTimezone, &cfg.Timezone)
	boolean(EnvClock24h, &cfg.Clock24h)
	str(EnvFramebuffer, &cfg.Framebuffer)
	str(EnvListenAddr, &cfg.ListenAddr)
	boolean(EnvDevMode, &cfg.DevMode)
	str(EnvStaticDir, &cfg.StaticDir)
	boolean(EnvDebug, &cfg.Debug)
	str(EnvDebugLog, &cfg.DebugLog)
	str(EnvStdioLog, &cfg.StdioLog)

	if err := errors.Join(errs...); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at startup.
func (c Config) Validate() error {
	var errs []error
	if _, err := faces.ByName(c.Face); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// HTTPEnabled reports whether the HTTP API should be started.
func (c Config) HTTPEnabled() bool {
	return c.ListenAddr != "" && c.ListenAddr != ListenOff
}
