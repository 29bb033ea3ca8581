package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/watchface/internal/app"
	"github.com/rook-computer/watchface/internal/app/faces"
	"github.com/rook-computer/watchface/internal/assets"
	"github.com/rook-computer/watchface/internal/buttons"
	"github.com/rook-computer/watchface/internal/clock"
	"github.com/rook-computer/watchface/internal/config"
	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/state"
	"github.com/rook-computer/watchface/internal/system"
	"github.com/rook-computer/watchface/internal/tick"
	"github.com/rook-computer/watchface/internal/web"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

func main() {
	if err := config.LoadEnvFiles(); err != nil {
		fmt.Println("env file error:", err)
	}
	cfg, err := config.FromEnv(config.Defaults(web.DefaultDeviceAddr))
	if err != nil {
		fmt.Println("config error:", err)
		atexit.Exit(2)
	}

	if err := newRootCmd(&cfg).Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchface",
		Short: "Digital watchface for a 144x168 framebuffer display.",
		Long: `Shows the current time, and with the dated face the day and date, ` +
			`on the Linux framebuffer. Every flag can also be set through the ` +
			`WATCHFACE_* environment variables or a .env file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), *cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Face, "face", cfg.Face, fmt.Sprintf("face variant %v; also %s", faces.Names(), config.EnvFace))
	flags.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "IANA timezone or Local; also "+config.EnvTimezone)
	flags.BoolVar(&cfg.Clock24h, "clock24h", cfg.Clock24h, "24-hour time format; also "+config.EnvClock24h)
	flags.StringVar(&cfg.Framebuffer, "fb", cfg.Framebuffer, "framebuffer device; also "+config.EnvFramebuffer)
	flags.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "http listen address or \"off\"; also "+config.EnvListenAddr)
	flags.BoolVar(&cfg.DevMode, "dev", cfg.DevMode, "enable permissive CORS; also "+config.EnvDevMode)
	flags.StringVar(&cfg.StaticDir, "static-dir", cfg.StaticDir, "serve the web UI from this directory instead of the embedded one")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging to --debug-log; also "+config.EnvDebug)
	flags.StringVar(&cfg.DebugLog, "debug-log", cfg.DebugLog, "debug log file; also "+config.EnvDebugLog)
	flags.StringVar(&cfg.StdioLog, "stdio-log", cfg.StdioLog, "redirect stdout+stderr (including panics) to this file; also "+config.EnvStdioLog)
	return cmd
}

func run(parent context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if parent == nil {
		parent = context.Background()
	}

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile(cfg.DebugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			atexit.Register(func() { _ = f.Close() })
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	face, _ := faces.ByName(cfg.Face)
	loc, _ := cfg.Location()
	prefs := state.GetPreferences()
	prefs.SetClock24h(cfg.Clock24h)

	fbTarget := render.NewFramebufferTarget(cfg.Framebuffer)
	fbTarget.Logger = logger
	if err := fbTarget.Open(); err != nil {
		return fmt.Errorf("open framebuffer: %w", err)
	}
	snapshot := render.NewSnapshotTarget()
	targets := render.MultiTarget{fbTarget, snapshot}

	system.EnterGraphics(logger)
	atexit.Register(func() {
		_ = targets.Close()
		system.LeaveGraphics(logger)
	})

	window := render.NewWindow(targets)
	window.Logger = logger
	loader := assets.NewLoader()
	loader.Logger = logger
	source := clock.NewSystemSource(loc, prefs)
	ticks := tick.NewService(source)
	ticks.Logger = logger
	store := state.NewStore()

	a := app.New(face, window, loader, source, ticks, store)
	a.Logger = logger
	a.Buttons = buttons.NewKeyboardButtons(logger)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var server web.Server = &web.NoopServer{}
	if cfg.HTTPEnabled() {
		router := web.NewDefaultRouter(cfg.StaticDir, web.APIV1Deps{
			Frames:  snapshot,
			State:   store,
			Prefs:   prefs,
			Refresh: a.Refresh,
			Logger:  logger,
		})
		httpServer := web.NewHTTPServer(web.ServerConfig{ListenAddr: cfg.ListenAddr, DevMode: cfg.DevMode, StaticDir: cfg.StaticDir}, router)
		httpServer.Logger = logger
		server = httpServer
	}
	if err := server.Start(ctx); err != nil {
		// The watchface still runs without its HTTP API.
		logger.Errorf("main", "web server: %v", err)
	}
	defer func() { _ = server.Stop() }()

	logger.Infof("main", "starting face %s (tz=%s, 24h=%t)", face.Name, loc, cfg.Clock24h)
	err := a.Start(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		logger.Errorf("main", "watchface stopped: %v", err)
	}
	return err
}
