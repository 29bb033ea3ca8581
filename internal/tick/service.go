package tick

import (
	"context"
	"sync"
	"time"
)

// Event is one tick delivery.
type Event struct {
	Time    time.Time
	Changed Units
	// Forced is set for deliveries requested through Trigger.
	Forced bool
}

type Handler func(Event)

type Clock interface {
	Now() time.Time
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Service delivers calendar-boundary ticks to a single subscriber. Handlers
// run on the goroutine that called Run, one at a time and in non-decreasing
// time order.
type Service struct {
	Clock  Clock
	After  func(time.Duration) <-chan time.Time
	Logger Logger

	mu      sync.Mutex
	units   Units
	handler Handler
	last    time.Time

	changed chan struct{}
	trigger chan struct{}
}

func NewService(clk Clock) *Service {
	return &Service{
		Clock:   clk,
		After:   time.After,
		changed: make(chan struct{}, 1),
		trigger: make(chan struct{}, 1),
	}
}

// Subscribe replaces the current subscription. Ticks are delivered whenever
// any unit in units changes.
func (s *Service) Subscribe(units Units, handler Handler) {
	s.mu.Lock()
	s.units = units
	s.handler = handler
	s.last = time.Time{}
	s.mu.Unlock()
	s.poke(s.changed)
}

func (s *Service) Unsubscribe() {
	s.mu.Lock()
	s.units = 0
	s.handler = nil
	s.mu.Unlock()
	s.poke(s.changed)
}

// ResetBaseline forgets the last delivered instant, so the next delivery is
// accepted even if the clock was set backwards.
func (s *Service) ResetBaseline() {
	s.mu.Lock()
	s.last = time.Time{}
	s.mu.Unlock()
}

// Trigger requests an immediate delivery with every subscribed unit marked
// as changed. Repeated calls before Run picks the request up coalesce.
func (s *Service) Trigger() {
	s.poke(s.trigger)
}

func (s *Service) poke(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Run blocks, delivering ticks, until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	// Subscriptions made before Run are picked up by the first iteration.
	select {
	case <-s.changed:
	default:
	}
	for {
		s.mu.Lock()
		units := s.units
		s.mu.Unlock()

		var wait <-chan time.Time
		if units != 0 {
			wait = s.After(untilNext(s.Clock.Now(), units.finest()))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.changed:
		case <-s.trigger:
			s.deliver(true)
		case <-wait:
			s.deliver(false)
		}
	}
}

func (s *Service) deliver(forced bool) {
	now := s.Clock.Now()

	s.mu.Lock()
	units, handler, last := s.units, s.handler, s.last
	if handler == nil || units == 0 {
		s.mu.Unlock()
		return
	}
	if !last.IsZero() && now.Before(last) {
		s.mu.Unlock()
		if s.Logger != nil {
			s.Logger.Errorf("tick", "clock moved backwards (%s < %s), tick suppressed", now.Format(time.RFC3339), last.Format(time.RFC3339))
		}
		return
	}
	changed := Changed(last, now)
	if forced {
		changed |= units
	}
	if changed&units == 0 {
		s.mu.Unlock()
		return
	}
	s.last = now
	s.mu.Unlock()

	handler(Event{Time: now, Changed: changed, Forced: forced})
}
