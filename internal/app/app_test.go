package app

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/rook-computer/watchface/internal/app/faces"
	"github.com/rook-computer/watchface/internal/assets"
	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/state"
	"github.com/rook-computer/watchface/internal/tick"
	"github.com/rs/xid"
	"golang.org/x/image/font/basicfont"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("App", func() {
	var (
		mockCtrl *gomock.Controller
		display  *MockDisplay
		loader   *MockAssetLoader
		source   *MockSource
		ticks    *MockTickService
		store    *state.Store

		bitmap              image.Image
		bgID, timeID, dateID render.LayerID
		instant             time.Time
	)

	newApp := func(face faces.Face) *App {
		return New(face, display, loader, source, ticks, store)
	}

	expectAssets := func(face faces.Face) {
		loader.EXPECT().LoadImage(assets.ImageBackground).Return(bitmap, nil)
		loader.EXPECT().LoadFont(face.Time.Font).Return(basicfont.Face7x13, nil)
		if face.Date != nil {
			loader.EXPECT().LoadFont(face.Date.Font).Return(basicfont.Face7x13, nil)
		}
	}

	expectRefresh := func(clock24h bool, timeText, dateText string) {
		source.EXPECT().Now().Return(instant)
		source.EXPECT().Clock24h().Return(clock24h)
		display.EXPECT().SetText(timeID, timeText).Return(nil)
		if dateText != "" {
			display.EXPECT().SetText(dateID, dateText).Return(nil)
		}
		display.EXPECT().Flush().Return(nil)
	}

	expectLoad := func(face faces.Face, clock24h bool, timeText, dateText string) {
		display.EXPECT().SetBackground(face.Background)
		expectAssets(face)
		calls := []any{
			display.EXPECT().CreateImageLayer(face.ImageFrame, bitmap, render.ScaleModeFit).Return(bgID, nil).Times(1),
			display.EXPECT().CreateTextLayer(face.Time.Frame, gomock.Any()).Return(timeID, nil).Times(1),
		}
		if face.Date != nil {
			calls = append(calls, display.EXPECT().CreateTextLayer(face.Date.Frame, gomock.Any()).Return(dateID, nil).Times(1))
		}
		calls = append(calls, ticks.EXPECT().Subscribe(tick.MinuteUnit, gomock.Any()).Times(1))
		gomock.InOrder(calls...)
		expectRefresh(clock24h, timeText, dateText)
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		display = NewMockDisplay(mockCtrl)
		loader = NewMockAssetLoader(mockCtrl)
		source = NewMockSource(mockCtrl)
		ticks = NewMockTickService(mockCtrl)
		store = state.NewStore()

		bitmap = image.NewRGBA(image.Rect(0, 0, 144, 168))
		bgID, timeID, dateID = xid.New(), xid.New(), xid.New()
		instant = time.Date(2023, 12, 13, 14, 7, 0, 0, time.UTC)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("load", func() {
		It("should create the dated face and show time and date at once", func() {
			face := faces.Dated()
			a := newApp(face)
			expectLoad(face, true, "14:07", "Wed\n13 Dec")

			Expect(a.Handle(Event{Kind: EventLoad})).To(Succeed())

			Expect(a.Loaded()).To(BeTrue())
			Expect(a.Layers()).To(Equal([]render.LayerID{bgID, timeID, dateID}))
			snap := store.Snapshot()
			Expect(snap.TimeText).To(Equal("14:07"))
			Expect(snap.DateText).To(Equal("Wed\n13 Dec"))
			Expect(snap.Layers).To(Equal(3))
			Expect(a.RefreshState()).To(Equal(Idle))
		})

		It("should create a single text element for the classic face", func() {
			face := faces.Classic()
			a := newApp(face)
			expectLoad(face, true, "14:07", "")

			Expect(a.Handle(Event{Kind: EventLoad})).To(Succeed())
			Expect(a.Layers()).To(HaveLen(2))
			Expect(store.Snapshot().DateText).To(BeEmpty())
		})

		It("should use the 12-hour clock when preferred", func() {
			instant = time.Date(2023, 12, 13, 2, 7, 0, 0, time.UTC)
			face := faces.Classic()
			a := newApp(face)
			expectLoad(face, false, "02:07", "")

			Expect(a.Handle(Event{Kind: EventLoad})).To(Succeed())
		})

		It("should not create elements twice", func() {
			face := faces.Classic()
			a := newApp(face)
			expectLoad(face, true, "14:07", "")

			Expect(a.Handle(Event{Kind: EventLoad})).To(Succeed())
			Expect(a.Handle(Event{Kind: EventLoad})).To(Succeed())
		})

		It("should fail cleanly when the background is missing", func() {
			face := faces.Dated()
			a := newApp(face)
			display.EXPECT().SetBackground(face.Background)
			loader.EXPECT().LoadImage(assets.ImageBackground).
				Return(nil, errors.Join(errors.New("gone"), assets.ErrResourceUnavailable))

			err := a.Handle(Event{Kind: EventLoad})

			Expect(err).To(MatchError(ErrResourceUnavailable))
			Expect(a.Loaded()).To(BeFalse())
			Expect(a.Layers()).To(BeEmpty())
		})

		It("should release created elements in reverse when creation fails", func() {
			face := faces.Dated()
			a := newApp(face)
			display.EXPECT().SetBackground(face.Background)
			expectAssets(face)
			gomock.InOrder(
				display.EXPECT().CreateImageLayer(face.ImageFrame, bitmap, render.ScaleModeFit).Return(bgID, nil),
				display.EXPECT().CreateTextLayer(face.Time.Frame, gomock.Any()).Return(timeID, nil),
				display.EXPECT().CreateTextLayer(face.Date.Frame, gomock.Any()).Return(render.LayerID{}, errors.New("out of memory")),
				display.EXPECT().DestroyLayer(timeID).Return(nil),
				display.EXPECT().DestroyLayer(bgID).Return(nil),
			)

			err := a.Handle(Event{Kind: EventLoad})

			Expect(err).To(MatchError(ErrResourceUnavailable))
			Expect(err.Error()).To(ContainSubstring("out of memory"))
			Expect(a.Layers()).To(BeEmpty())
		})
	})

	Context("failed first refresh", func() {
		It("should release everything and report the resource failure", func() {
			face := faces.Dated()
			a := newApp(face)
			display.EXPECT().SetBackground(face.Background)
			expectAssets(face)
			gomock.InOrder(
				display.EXPECT().CreateImageLayer(face.ImageFrame, bitmap, render.ScaleModeFit).Return(bgID, nil),
				display.EXPECT().CreateTextLayer(face.Time.Frame, gomock.Any()).Return(timeID, nil),
				display.EXPECT().CreateTextLayer(face.Date.Frame, gomock.Any()).Return(dateID, nil),
				ticks.EXPECT().Subscribe(tick.MinuteUnit, gomock.Any()),
				display.EXPECT().Flush().Return(errors.New("present failed")),
				ticks.EXPECT().Unsubscribe().Times(1),
				display.EXPECT().DestroyLayer(dateID).Return(nil).Times(1),
				display.EXPECT().DestroyLayer(timeID).Return(nil).Times(1),
				display.EXPECT().DestroyLayer(bgID).Return(nil).Times(1),
			)
			source.EXPECT().Now().Return(instant)
			source.EXPECT().Clock24h().Return(true)
			display.EXPECT().SetText(timeID, "14:07").Return(nil)
			display.EXPECT().SetText(dateID, "Wed\n13 Dec").Return(nil)

			err := a.Handle(Event{Kind: EventLoad})

			Expect(err).To(MatchError(ErrResourceUnavailable))
			Expect(err.Error()).To(ContainSubstring("present failed"))
			Expect(a.Loaded()).To(BeFalse())
			Expect(a.Layers()).To(BeEmpty())
			Expect(store.Snapshot().Layers).To(BeZero())
			Expect(a.Handle(Event{Kind: EventUnload})).To(Succeed())
		})
	})

	Context("minute tick", func() {
		var a *App

		BeforeEach(func() {
			face := faces.Dated()
			a = newApp(face)
			expectLoad(face, true, "14:07", "Wed\n13 Dec")
			Expect(a.Handle(Event{Kind: EventLoad})).To(Succeed())
		})

		It("should refresh time and date", func() {
			instant = instant.Add(time.Minute)
			expectRefresh(true, "14:08", "Wed\n13 Dec")

			Expect(a.Handle(Event{Kind: EventMinuteTick})).To(Succeed())
			Expect(store.Snapshot().Refreshes).To(BeEquivalentTo(2))
		})

		It("should produce identical output for the same instant", func() {
			expectRefresh(true, "14:07", "Wed\n13 Dec")
			expectRefresh(true, "14:07", "Wed\n13 Dec")

			Expect(a.Handle(Event{Kind: EventMinuteTick})).To(Succeed())
			first := store.Snapshot()
			Expect(a.Handle(Event{Kind: EventMinuteTick})).To(Succeed())
			second := store.Snapshot()

			Expect(second.TimeText).To(Equal(first.TimeText))
			Expect(second.DateText).To(Equal(first.DateText))
		})

		It("should re-read the clock preference on every tick", func() {
			expectRefresh(false, "02:07", "Wed\n13 Dec")
			Expect(a.Handle(Event{Kind: EventMinuteTick})).To(Succeed())

			expectRefresh(true, "14:07", "Wed\n13 Dec")
			Expect(a.Handle(Event{Kind: EventMinuteTick})).To(Succeed())
		})

		It("should reject an event dispatched from inside a refresh", func() {
			var nested error
			source.EXPECT().Now().Return(instant)
			source.EXPECT().Clock24h().Return(true)
			display.EXPECT().SetText(timeID, "14:07").DoAndReturn(func(render.LayerID, string) error {
				nested = a.Handle(Event{Kind: EventMinuteTick})
				return nil
			})
			display.EXPECT().SetText(dateID, "Wed\n13 Dec").Return(nil)
			display.EXPECT().Flush().Return(nil)

			Expect(a.Handle(Event{Kind: EventMinuteTick})).To(Succeed())
			Expect(nested).To(MatchError(ErrBusy))
		})

		It("should surface display errors", func() {
			source.EXPECT().Now().Return(instant)
			source.EXPECT().Clock24h().Return(true)
			display.EXPECT().SetText(timeID, "14:07").Return(render.ErrLayerDestroyed)

			Expect(a.Handle(Event{Kind: EventMinuteTick})).To(MatchError(render.ErrLayerDestroyed))
			Expect(a.RefreshState()).To(Equal(Idle))
		})
	})

	Context("unload", func() {
		It("should release every element once in reverse order", func() {
			face := faces.Dated()
			a := newApp(face)
			expectLoad(face, true, "14:07", "Wed\n13 Dec")
			Expect(a.Handle(Event{Kind: EventLoad})).To(Succeed())

			gomock.InOrder(
				ticks.EXPECT().Unsubscribe().Times(1),
				display.EXPECT().DestroyLayer(dateID).Return(nil).Times(1),
				display.EXPECT().DestroyLayer(timeID).Return(nil).Times(1),
				display.EXPECT().DestroyLayer(bgID).Return(nil).Times(1),
				display.EXPECT().Flush().Return(nil),
			)

			Expect(a.Handle(Event{Kind: EventUnload})).To(Succeed())
			Expect(a.Handle(Event{Kind: EventUnload})).To(Succeed())

			Expect(a.Loaded()).To(BeFalse())
			Expect(a.Handle(Event{Kind: EventMinuteTick})).To(MatchError(ErrNotLoaded))
		})

		It("should be a no-op before load", func() {
			a := newApp(faces.Classic())
			Expect(a.Handle(Event{Kind: EventUnload})).To(Succeed())
		})
	})

	Context("event loop", func() {
		It("should refresh on ticks and unload on exit", func() {
			face := faces.Classic()
			a := newApp(face)

			handlers := make(chan tick.Handler, 1)
			display.EXPECT().SetBackground(face.Background)
			expectAssets(face)
			display.EXPECT().CreateImageLayer(face.ImageFrame, bitmap, render.ScaleModeFit).Return(bgID, nil)
			display.EXPECT().CreateTextLayer(face.Time.Frame, gomock.Any()).Return(timeID, nil)
			ticks.EXPECT().Subscribe(tick.MinuteUnit, gomock.Any()).Do(func(_ tick.Units, h tick.Handler) {
				handlers <- h
			})
			ticks.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			})
			expectRefresh(true, "14:07", "")

			done := make(chan error, 1)
			go func() { done <- a.Start(context.Background()) }()

			var handler tick.Handler
			Eventually(handlers).Should(Receive(&handler))
			Eventually(func() state.Phase { return store.Snapshot().Phase }).Should(Equal(state.RUNNING))

			instant = instant.Add(time.Minute)
			expectRefresh(true, "14:08", "")
			handler(tick.Event{Time: instant, Changed: tick.MinuteUnit | tick.SecondUnit})
			Eventually(func() string { return store.Snapshot().TimeText }).Should(Equal("14:08"))

			// Ticks without a minute change do not reach the loop.
			handler(tick.Event{Time: instant, Changed: tick.SecondUnit})

			ticks.EXPECT().Unsubscribe()
			display.EXPECT().DestroyLayer(timeID).Return(nil)
			display.EXPECT().DestroyLayer(bgID).Return(nil)
			display.EXPECT().Flush().Return(nil)

			a.Exit(nil)
			Eventually(done).Should(Receive(BeNil()))
			Expect(store.Snapshot().Phase).To(Equal(state.STOPPED))
			Expect(store.Snapshot().Refreshes).To(BeEquivalentTo(2))
		})

		It("should report a load failure without entering the loop", func() {
			face := faces.Classic()
			a := newApp(face)
			display.EXPECT().SetBackground(face.Background)
			loader.EXPECT().LoadImage(assets.ImageBackground).Return(nil, assets.ErrResourceUnavailable)

			err := a.Start(context.Background())

			Expect(err).To(MatchError(ErrResourceUnavailable))
			Expect(store.Snapshot().Phase).To(Equal(state.ERROR))
		})

		It("should refuse posts when not running", func() {
			a := newApp(faces.Classic())
			Expect(a.Refresh()).To(MatchError(ErrNotRunning))
			Expect(a.Reload()).To(MatchError(ErrNotRunning))
		})
	})
})
