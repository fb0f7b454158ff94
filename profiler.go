package probez

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/zoobzio/clockz"
)

// ErrSessionRunning is returned by StartSession while a session is live.
var ErrSessionRunning = errors.New("probez: session already running")

// eventBuffer is the capacity of the hand-off channel between producers and
// the drain worker. Producers block when it fills; the worker receives
// continuously, so sustained blocking means the worker is starved.
const eventBuffer = 256

// session bundles the state owned by one recording period, so a stopped
// session can never be confused with its successor.
type session struct {
	name     string
	timeline *Timeline
	events   chan Event
	stopCh   chan struct{}
	done     chan struct{}
}

// Profiler owns session lifecycle and the hand-off path from probes to the
// timeline. Construct one explicitly and pass it to instrumented code;
// independent profilers record independently, so tests never share state.
// Safe for concurrent use by multiple goroutines.
//
//nolint:govet // Field order optimized for readability over memory
type Profiler struct {
	// DeferDrain trades lower mid-session overhead for burstier
	// end-of-session work: the worker parks events locally and applies
	// them to the timeline only when the session stops. Read when
	// StartSession spawns the worker.
	DeferDrain bool

	clock  clockz.Clock
	logger zerolog.Logger

	mu          sync.Mutex // Guards session transitions and the name.
	sessionName string
	current     atomic.Pointer[session]
	running     atomic.Bool
}

// New creates a new profiler.
// Uses the real clock for production behavior.
func New() *Profiler {
	return &Profiler{
		clock:  clockz.RealClock,
		logger: zerolog.Nop(),
	}
}

// WithClock returns a new profiler with the specified clock.
// Enables clock injection for deterministic testing.
func (*Profiler) WithClock(clock clockz.Clock) *Profiler {
	return &Profiler{
		clock:  clock,
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the diagnostic logger and returns the profiler.
// The default logger discards everything.
func (p *Profiler) WithLogger(logger zerolog.Logger) *Profiler {
	p.logger = logger
	return p
}

// StartSession begins a recording period and spawns the drain worker.
// Returns ErrSessionRunning if a session is already live; stop it first.
func (p *Profiler) StartSession(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return ErrSessionRunning
	}

	s := &session{
		name:     name,
		timeline: NewTimeline(),
		events:   make(chan Event, eventBuffer),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	p.sessionName = name
	p.current.Store(s)
	p.running.Store(true)

	go p.drain(s, p.DeferDrain)

	p.logger.Debug().
		Str("session", name).
		Bool("defer_drain", p.DeferDrain).
		Msg("profiling session started")
	return nil
}

// StopSession ends the live session and returns its timeline. Blocks until
// the worker has applied every queued event and exited; ownership of the
// returned timeline transfers to the caller, and the next session starts
// from an empty one. Stopping with no live session returns a fresh empty
// timeline.
func (p *Profiler) StopSession() *Timeline {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.current.Load()
	if s == nil {
		// Joining a worker that never ran is a no-op.
		return NewTimeline()
	}

	p.running.Store(false)
	close(s.stopCh)
	<-s.done
	p.current.Store(nil)

	p.logger.Debug().
		Str("session", s.name).
		Int("events", s.timeline.Len()).
		Msg("profiling session stopped")
	return s.timeline
}

// SessionName returns the most recently started session's name. The name
// changes on every StartSession call, so capture it before starting a new
// session if it is still needed.
func (p *Profiler) SessionName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sessionName
}

// Running reports whether a session is live.
func (p *Profiler) Running() bool {
	return p.running.Load()
}

// RecordEvent hands one event to the live session. The send wakes the drain
// worker, which appends the event to the timeline; producers never block
// beyond the hand-off itself. Without a live session the event is discarded.
// A call racing StopSession may be dropped once the final sweep has passed;
// ordering records against stop is the caller's responsibility.
func (p *Profiler) RecordEvent(e Event) {
	s := p.current.Load()
	if s == nil {
		return
	}

	select {
	case s.events <- e:
	case <-s.stopCh:
		// Session is shutting down; dropping beats deadlocking here.
	}
}

// drain is the session worker: the only goroutine appending to the timeline
// while the session is live. It wakes on every RecordEvent send, applies the
// event, and exits after a final sweep once stopCh closes, so no event
// queued before stop is lost. With deferred draining it parks events in a
// local batch and applies them during the final sweep instead.
func (p *Profiler) drain(s *session, deferred bool) {
	defer close(s.done)

	var parked []Event
	apply := func(e Event) {
		if deferred {
			parked = append(parked, e)
			return
		}
		s.timeline.Push(e)
	}

	for {
		select {
		case e := <-s.events:
			apply(e)
		case <-s.stopCh:
			for {
				select {
				case e := <-s.events:
					apply(e)
				default:
					for _, e := range parked {
						s.timeline.Push(e)
					}
					return
				}
			}
		}
	}
}
