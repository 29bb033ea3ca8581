package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rook-computer/watchface/internal/app"
	"github.com/rook-computer/watchface/internal/app/faces"
	"github.com/rook-computer/watchface/internal/assets"
	"github.com/rook-computer/watchface/internal/clock"
	"github.com/rook-computer/watchface/internal/config"
	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/render/desktop"
	"github.com/rook-computer/watchface/internal/state"
	"github.com/rook-computer/watchface/internal/tick"
	"github.com/rook-computer/watchface/internal/web"
	"github.com/spf13/cobra"
)

type simOptions struct {
	config.Config
	Window bool
	Scale  int
	Pin    string
}

func main() {
	if err := config.LoadEnvFiles(); err != nil {
		fmt.Println("env file error:", err)
	}
	cfg, err := config.FromEnv(config.Defaults(web.DefaultSimulatorAddr))
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	opts := &simOptions{Config: cfg, Scale: 3}
	if err := newRootCmd(opts).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *simOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchface-sim",
		Short: "Runs the watchface against an in-memory display with an HTTP control API.",
		Long: `Runs the watchface against an in-memory display. The rendered face is ` +
			`served at /api/v1/face.png and the clock, ticks and fault injection are ` +
			`driven through the /sim endpoints.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), *opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Face, "face", opts.Face, fmt.Sprintf("face variant %v; also %s", faces.Names(), config.EnvFace))
	flags.StringVar(&opts.Timezone, "tz", opts.Timezone, "IANA timezone or Local; also "+config.EnvTimezone)
	flags.BoolVar(&opts.Clock24h, "clock24h", opts.Clock24h, "24-hour time format; also "+config.EnvClock24h)
	flags.StringVar(&opts.ListenAddr, "listen", opts.ListenAddr, "http listen address; also "+config.EnvListenAddr)
	flags.BoolVar(&opts.DevMode, "dev", opts.DevMode, "enable permissive CORS; also "+config.EnvDevMode)
	flags.StringVar(&opts.StaticDir, "static-dir", opts.StaticDir, "serve static UI from this directory (optional); when empty, embedded web UI assets are served")
	flags.BoolVar(&opts.Debug, "debug", opts.Debug, "log at debug level; also "+config.EnvDebug)
	flags.BoolVar(&opts.Window, "window", false, "show the face in a desktop window (cgo builds only)")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "desktop window scale factor")
	flags.StringVar(&opts.Pin, "pin", "", "start with the clock pinned at this RFC3339 instant")
	return cmd
}

func run(parent context.Context, opts simOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if !opts.HTTPEnabled() && !opts.Window {
		return errors.New("nothing to show: enable --listen or --window")
	}
	if parent == nil {
		parent = context.Background()
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := app.NewConsoleLogger(os.Stderr, level)

	face, _ := faces.ByName(opts.Face)
	loc, _ := opts.Location()
	prefs := state.GetPreferences()
	prefs.SetClock24h(opts.Clock24h)

	source := clock.NewManualSource(clock.NewSystemSource(loc, prefs))
	if opts.Pin != "" {
		t, err := time.Parse(time.RFC3339, opts.Pin)
		if err != nil {
			return fmt.Errorf("--pin: %w", err)
		}
		source.Pin(t)
	}

	snapshot := render.NewSnapshotTarget()
	targets := render.MultiTarget{snapshot}
	var view *desktop.Target
	if opts.Window {
		view = desktop.New("watchface: "+face.Name, opts.Scale)
		targets = append(targets, view)
	}

	window := render.NewWindow(targets)
	window.Logger = logger
	loader := assets.NewLoader()
	loader.Logger = logger
	ticks := tick.NewService(source)
	ticks.Logger = logger
	store := state.NewStore()

	a := app.New(face, window, loader, source, ticks, store)
	a.Logger = logger

	control := NewSimControl(a, source, ticks, loader, window, prefs)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.HTTPEnabled() {
		router := mux.NewRouter()
		web.RegisterAPIV1(router, web.APIV1Deps{
			Frames:  snapshot,
			State:   store,
			Prefs:   prefs,
			Refresh: a.Refresh,
			Logger:  logger,
		})
		registerSimEndpoints(router, control)
		web.RegisterUI(router, opts.StaticDir)

		server := web.NewHTTPServer(web.ServerConfig{ListenAddr: opts.ListenAddr, DevMode: opts.DevMode, StaticDir: opts.StaticDir}, router)
		server.Logger = logger
		if err := server.Start(ctx); err != nil {
			return err
		}
		defer func() { _ = server.Stop() }()
		fmt.Println("Watchface simulator: http://" + displayAddr(server.Addr()) + "/")
	}

	if view == nil {
		return ignoreCanceled(a.Start(ctx))
	}

	// The desktop window must own the main goroutine.
	done := make(chan error, 1)
	go func() { done <- a.Start(ctx) }()
	if err := view.Run(ctx); err != nil {
		logger.Errorf("desktop", "window: %v", err)
	}
	a.Exit(nil)
	stop()
	return ignoreCanceled(<-done)
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	if addr == "" {
		return "127.0.0.1:8080"
	}
	return addr
}
