package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/rook-computer/watchface/internal/app/faces"
	"github.com/rook-computer/watchface/internal/assets"
	"github.com/rook-computer/watchface/internal/buttons"
	"github.com/rook-computer/watchface/internal/clock"
	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/state"
	"github.com/rook-computer/watchface/internal/tick"
	"golang.org/x/image/font"
)

//go:generate mockgen -destination "mock_app_test.go" -package $GOPACKAGE -write_package_comment=false github.com/rook-computer/watchface/internal/app AssetLoader,Display,TickService
//go:generate mockgen -destination "mock_clock_test.go" -package $GOPACKAGE -write_package_comment=false github.com/rook-computer/watchface/internal/clock Source

var (
	// ErrResourceUnavailable is the single error kind surfaced when an asset
	// or display element cannot be created during startup.
	ErrResourceUnavailable = assets.ErrResourceUnavailable
	// ErrBusy is returned when an event is dispatched while another one is
	// still being handled.
	ErrBusy       = errors.New("event dispatched during another event")
	ErrNotLoaded  = errors.New("watchface not loaded")
	ErrNotRunning = errors.New("event loop not running")
)

// Display is the host display-element API.
type Display interface {
	SetBackground(c color.Color)
	CreateImageLayer(frame image.Rectangle, img image.Image, mode render.ScaleMode) (render.LayerID, error)
	CreateTextLayer(frame image.Rectangle, style render.TextStyle) (render.LayerID, error)
	SetText(id render.LayerID, text string) error
	DestroyLayer(id render.LayerID) error
	Flush() error
}

// AssetLoader resolves bundled resources.
type AssetLoader interface {
	LoadImage(id assets.ResourceID) (image.Image, error)
	LoadFont(id assets.FontID) (font.Face, error)
}

// TickService is the host's calendar tick notification service.
type TickService interface {
	Subscribe(units tick.Units, handler tick.Handler)
	Unsubscribe()
	Run(ctx context.Context) error
}

type EventKind int

const (
	EventLoad EventKind = iota
	EventMinuteTick
	EventRefresh
	EventUnload
)

func (k EventKind) String() string {
	switch k {
	case EventLoad:
		return "load"
	case EventMinuteTick:
		return "minute-tick"
	case EventRefresh:
		return "refresh"
	case EventUnload:
		return "unload"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

type Event struct {
	Kind EventKind
	Tick tick.Event
}

type RefreshState int

const (
	Idle RefreshState = iota
	Refreshing
)

// App is the watchface application context. Element handles live here
// between Load and Unload; every event is handled on the goroutine running
// Start, one at a time.
type App struct {
	Face    faces.Face
	Display Display
	Assets  AssetLoader
	Clock   clock.Source
	Ticks   TickService
	Store   *state.Store
	Buttons buttons.Buttons
	Logger  Logger

	created    []render.LayerID
	timeLayer  render.LayerID
	dateLayer  render.LayerID
	loaded     bool
	subscribed bool

	dispatching bool
	refresh     RefreshState
	timeBuf     clock.TimeText
	dateBuf     clock.DateText

	events   chan Event
	loopDone atomic.Pointer[<-chan struct{}]

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(face faces.Face, display Display, loader AssetLoader, source clock.Source, ticks TickService, store *state.Store) *App {
	return &App{
		Face:    face,
		Display: display,
		Assets:  loader,
		Clock:   source,
		Ticks:   ticks,
		Store:   store,
		Logger:  NoopLogger{},
		events:  make(chan Event, 8),
		exitCh:  make(chan error, 1),
	}
}

// Exit requests the event loop to stop. Only the first request counts.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Loaded reports whether the display elements currently exist.
func (app *App) Loaded() bool { return app.loaded }

func (app *App) RefreshState() RefreshState { return app.refresh }

// Layers returns the element handles in creation order.
func (app *App) Layers() []render.LayerID {
	out := make([]render.LayerID, len(app.created))
	copy(out, app.created)
	return out
}

// Handle dispatches one event. It is the only entry point that mutates the
// application context.
func (app *App) Handle(ev Event) error {
	if app.dispatching {
		return fmt.Errorf("%s: %w", ev.Kind, ErrBusy)
	}
	app.dispatching = true
	defer func() { app.dispatching = false }()

	switch ev.Kind {
	case EventLoad:
		return app.load()
	case EventMinuteTick, EventRefresh:
		return app.update()
	case EventUnload:
		return app.unload()
	default:
		return fmt.Errorf("unknown event %s", ev.Kind)
	}
}

func (app *App) load() error {
	if app.loaded {
		return nil
	}
	face := app.Face
	app.Display.SetBackground(face.Background)

	bitmap, err := app.Assets.LoadImage(face.Image)
	if err != nil {
		return app.abortLoad("load background", err)
	}
	timeFont, err := app.Assets.LoadFont(face.Time.Font)
	if err != nil {
		return app.abortLoad("load time font", err)
	}
	var dateFont font.Face
	if face.Date != nil {
		if dateFont, err = app.Assets.LoadFont(face.Date.Font); err != nil {
			return app.abortLoad("load date font", err)
		}
	}

	bg, err := app.Display.CreateImageLayer(face.ImageFrame, bitmap, render.ScaleModeFit)
	if err != nil {
		return app.abortLoad("create background layer", err)
	}
	app.created = append(app.created, bg)

	app.timeLayer, err = app.Display.CreateTextLayer(face.Time.Frame, labelStyle(face.Time, timeFont))
	if err != nil {
		return app.abortLoad("create time layer", err)
	}
	app.created = append(app.created, app.timeLayer)

	if face.Date != nil {
		app.dateLayer, err = app.Display.CreateTextLayer(face.Date.Frame, labelStyle(*face.Date, dateFont))
		if err != nil {
			return app.abortLoad("create date layer", err)
		}
		app.created = append(app.created, app.dateLayer)
	}

	app.loaded = true
	app.Ticks.Subscribe(tick.MinuteUnit, app.onTick)
	app.subscribed = true
	app.Logger.Infof("app", "face %s loaded with %d layers", face.Name, len(app.created))
	if app.Store != nil {
		app.Store.SetLayers(len(app.created))
	}

	// Show the current time (and date) right away instead of waiting for the
	// first minute boundary.
	if err := app.update(); err != nil {
		return app.abortLoad("initial refresh", err)
	}
	return nil
}

// abortLoad releases whatever load created so far and reports err as a
// resource failure.
func (app *App) abortLoad(step string, err error) error {
	if rerr := app.release(); rerr != nil {
		app.Logger.Errorf("app", "cleanup after failed load: %v", rerr)
	}
	if app.Store != nil {
		app.Store.SetLayers(0)
	}
	if errors.Is(err, ErrResourceUnavailable) {
		return fmt.Errorf("%s: %w", step, err)
	}
	return fmt.Errorf("%s: %v: %w", step, err, ErrResourceUnavailable)
}

func labelStyle(label faces.Label, face font.Face) render.TextStyle {
	return render.TextStyle{Face: face, Color: label.Color, Background: label.Background, Align: label.Align}
}

// update is the refresh routine: read the clock once, format, push the
// texts, present.
func (app *App) update() error {
	if !app.loaded {
		return ErrNotLoaded
	}
	if app.refresh == Refreshing {
		return ErrBusy
	}
	app.refresh = Refreshing
	defer func() { app.refresh = Idle }()

	now := app.Clock.Now()
	timeText := clock.FormatTimeInto(&app.timeBuf, now, app.Clock.Clock24h())
	if err := app.Display.SetText(app.timeLayer, timeText); err != nil {
		return fmt.Errorf("set time text: %w", err)
	}
	dateText := ""
	if app.Face.Date != nil {
		dateText = clock.FormatDateInto(&app.dateBuf, now)
		if err := app.Display.SetText(app.dateLayer, dateText); err != nil {
			return fmt.Errorf("set date text: %w", err)
		}
	}
	if err := app.Display.Flush(); err != nil {
		return fmt.Errorf("flush display: %w", err)
	}
	if app.Store != nil {
		app.Store.RecordRefresh(now, timeText, dateText)
	}
	return nil
}

func (app *App) unload() error {
	if !app.loaded && len(app.created) == 0 {
		return nil
	}
	err := app.release()
	if ferr := app.Display.Flush(); ferr != nil {
		err = errors.Join(err, fmt.Errorf("flush display: %w", ferr))
	}
	app.Logger.Infof("app", "face %s unloaded", app.Face.Name)
	if app.Store != nil {
		app.Store.SetLayers(0)
	}
	return err
}

// release unsubscribes from ticks and destroys every created layer in
// reverse creation order. Handles are dropped even when destruction fails so
// none is ever used again.
func (app *App) release() error {
	if app.subscribed {
		app.Ticks.Unsubscribe()
		app.subscribed = false
	}
	var errs []error
	for i := len(app.created) - 1; i >= 0; i-- {
		if err := app.Display.DestroyLayer(app.created[i]); err != nil {
			errs = append(errs, fmt.Errorf("destroy layer %s: %w", app.created[i], err))
		}
	}
	app.created = nil
	app.timeLayer = render.LayerID{}
	app.dateLayer = render.LayerID{}
	app.loaded = false
	return errors.Join(errs...)
}

// onTick runs on the tick service goroutine and hands the tick to the event
// loop.
func (app *App) onTick(ev tick.Event) {
	if !ev.Changed.Has(tick.MinuteUnit) {
		return
	}
	if err := app.post(Event{Kind: EventMinuteTick, Tick: ev}); err != nil {
		app.Logger.Errorf("app", "tick dropped: %v", err)
	}
}

func (app *App) post(ev Event) error {
	done := app.loopDone.Load()
	if done == nil {
		return ErrNotRunning
	}
	select {
	case app.events <- ev:
		return nil
	case <-*done:
		return ErrNotRunning
	}
}

// Refresh asks the running event loop for an immediate refresh.
func (app *App) Refresh() error { return app.post(Event{Kind: EventRefresh}) }

// Reload asks the running event loop to tear the face down and build it
// again, picking up asset changes.
func (app *App) Reload() error {
	if err := app.post(Event{Kind: EventUnload}); err != nil {
		return err
	}
	return app.post(Event{Kind: EventLoad})
}

// Start loads the face and runs the event loop until ctx is done or Exit is
// called, then unloads. A load failure is returned before the loop starts.
func (app *App) Start(ctx context.Context) error {
	if app.events == nil {
		app.events = make(chan Event, 8)
	}
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	// Exit requests made before Start belong to no loop.
	select {
	case <-app.exitCh:
	default:
	}
	app.exitOnce.Store(false)
	if app.Store != nil {
		app.Store.SetVariant(app.Face.Name)
		app.Store.SetPhase(state.BOOTING)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := loopCtx.Done()
	app.loopDone.Store(&done)
	defer app.loopDone.Store(nil)

	if err := app.Handle(Event{Kind: EventLoad}); err != nil {
		app.Logger.Errorf("app", "load failed: %v", err)
		if app.Store != nil {
			app.Store.Fail(err)
		}
		return err
	}
	if app.Store != nil {
		app.Store.SetPhase(state.RUNNING)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.Ticks.Run(loopCtx); err != nil && !errors.Is(err, context.Canceled) {
			app.Logger.Errorf("tick", "tick service stopped: %v", err)
		}
	}()

	if app.Buttons != nil {
		if err := app.Buttons.Start(loopCtx); err != nil {
			app.Logger.Errorf("buttons", "start failed: %v", err)
		} else {
			wg.Add(1)
			go func() {
				defer wg.Done()
				app.watchButtons(loopCtx)
			}()
		}
	}

	var err error
loop:
	for {
		select {
		case <-loopCtx.Done():
			err = ctx.Err()
			break loop
		case err = <-app.exitCh:
			break loop
		case ev := <-app.events:
			app.dispatch(ev)
		}
	}

	cancel()
	if app.Buttons != nil {
		_ = app.Buttons.Stop()
	}
	wg.Wait()

	if uerr := app.Handle(Event{Kind: EventUnload}); uerr != nil {
		app.Logger.Errorf("app", "unload failed: %v", uerr)
	}
	if app.Store != nil {
		app.Store.SetPhase(state.STOPPED)
	}
	return err
}

func (app *App) dispatch(ev Event) {
	err := app.Handle(ev)
	if err == nil {
		if ev.Kind == EventLoad && app.Store != nil {
			app.Store.SetPhase(state.RUNNING)
		}
		return
	}
	app.Logger.Errorf("app", "%s failed: %v", ev.Kind, err)
	if ev.Kind == EventLoad && app.Store != nil {
		app.Store.Fail(err)
	}
}

func (app *App) watchButtons(ctx context.Context) {
	events := app.Buttons.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev {
			case buttons.Back:
				app.Logger.Infof("buttons", "back pressed: exiting")
				app.Exit(nil)
				return
			case buttons.Select:
				if err := app.Refresh(); err != nil {
					app.Logger.Errorf("buttons", "refresh request failed: %v", err)
				}
			}
		}
	}
}
