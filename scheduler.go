package repeat

import (
	"log/slog"

	"github.com/eapache/queue"
)

type eventKind uint8

const (
	eventScroll eventKind = iota
	eventResize
)

type frameEvent struct {
	kind eventKind
	tick ScrollTick
}

// Scheduler defers scroll ticks and resizes to the display frame.
//
// Events are queued in arrival order. Consecutive scroll ticks collapse into
// the latest one and consecutive resizes into one, so each Frame makes at most
// one scroll decision per run of ticks and a resize always completes before
// the ticks that follow it.
//
// Usage:
//
//	sched := repeat.NewScheduler(m, view)
//	view.OnResize(sched.PostResize)
//	src.OnChange(sched.PostResize)
//
//	// once per display frame
//	sched.Frame()
type Scheduler struct {
	manager *Manager
	events  *queue.Queue
	logger  *slog.Logger

	posted    int
	coalesced int
}

// NewScheduler creates a Scheduler for m and routes the viewport's scroll
// ticks through it.
func NewScheduler(m *Manager, view Viewport) *Scheduler {
	s := &Scheduler{
		manager: m,
		events:  queue.New(),
		logger:  m.logger,
	}
	view.SetScrollHandler(s.PostScroll)
	return s
}

// PostScroll queues a scroll tick.
func (s *Scheduler) PostScroll(tick ScrollTick) {
	s.posted++
	if last := s.last(); last != nil && last.kind == eventScroll {
		last.tick = tick
		s.coalesced++
		return
	}
	s.events.Add(&frameEvent{kind: eventScroll, tick: tick})
}

// PostResize queues a resize.
func (s *Scheduler) PostResize() {
	s.posted++
	if last := s.last(); last != nil && last.kind == eventResize {
		s.coalesced++
		return
	}
	s.events.Add(&frameEvent{kind: eventResize})
}

func (s *Scheduler) last() *frameEvent {
	n := s.events.Length()
	if n == 0 {
		return nil
	}
	return s.events.Get(n - 1).(*frameEvent)
}

// Pending returns the number of queued events.
func (s *Scheduler) Pending() int { return s.events.Length() }

// Coalesced returns how many posted events were merged into a queued one.
func (s *Scheduler) Coalesced() int { return s.coalesced }

// Frame delivers every queued event to the manager and returns how many it
// delivered. Once the manager is destroyed the queue is dropped instead.
func (s *Scheduler) Frame() int {
	if s.manager.Destroyed() {
		if dropped := s.events.Length(); dropped > 0 {
			s.events = queue.New()
			s.logger.Debug("repeat frame dropped", "events", dropped)
		}
		return 0
	}
	n := 0
	for s.events.Length() > 0 {
		ev := s.events.Remove().(*frameEvent)
		switch ev.kind {
		case eventScroll:
			s.manager.RenderScroll(ev.tick)
		case eventResize:
			s.manager.Resize()
		}
		n++
	}
	if n > 0 && verbose() {
		s.logger.Debug("repeat frame", "delivered", n, "posted", s.posted, "coalesced", s.coalesced)
	}
	return n
}
