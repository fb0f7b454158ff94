package probez

import (
	"iter"
	"sync"
)

// Timeline is the ordered store of events recorded during a session.
// Insertion order is chronological by arrival, not by event start time;
// concurrent producers may interleave, and consumers needing true temporal
// order must sort by the events' own timestamps.
//
// Every mutating operation takes the internal lock for its full duration.
// Read accessors, iteration and Accept do NOT lock: they are meant for the
// single-owner phase after StopSession has handed the timeline over, which
// keeps lock overhead off every traversal step. Iterating a timeline that is
// still receiving events is a data race.
type Timeline struct {
	events []Event
	mu     sync.Mutex
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{
		events: make([]Event, 0, 8), // Start with small capacity.
	}
}

// Push appends an event to the tail. Always succeeds.
func (t *Timeline) Push(e Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, e)
}

// Pop removes the tail event. Panics on an empty timeline.
func (t *Timeline) Pop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = t.events[:len(t.events)-1]
}

// Clear removes every event, keeping the allocated capacity.
func (t *Timeline) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = t.events[:0]
}

// Front returns the first event. Panics on an empty timeline.
func (t *Timeline) Front() Event {
	return t.events[0]
}

// Back returns the last event. Panics on an empty timeline.
func (t *Timeline) Back() Event {
	return t.events[len(t.events)-1]
}

// Empty reports whether the timeline holds no events.
func (t *Timeline) Empty() bool {
	return len(t.events) == 0
}

// Len returns the number of events held.
func (t *Timeline) Len() int {
	return len(t.events)
}

// Cap returns the number of events the timeline can hold before growing.
func (t *Timeline) Cap() int {
	return cap(t.events)
}

// Reserve grows the capacity to at least n. A no-op when the timeline
// already holds that much.
func (t *Timeline) Reserve(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n <= cap(t.events) {
		return
	}
	grown := make([]Event, len(t.events), n)
	copy(grown, t.events)
	t.events = grown
}

// Resize sets the length to n, truncating the tail or padding with nil
// events as needed.
func (t *Timeline) Resize(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n <= len(t.events) {
		t.events = t.events[:n]
		return
	}
	for len(t.events) < n {
		t.events = append(t.events, nil)
	}
}

// Events returns the underlying slice for direct indexed access. The slice
// is shared with the timeline; callers own it only in the post-session,
// single-owner phase.
func (t *Timeline) Events() []Event {
	return t.events
}

// All iterates events in storage order.
func (t *Timeline) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, e := range t.events {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward iterates events in reverse storage order.
func (t *Timeline) Backward() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for i := len(t.events) - 1; i >= 0; i-- {
			if !yield(t.events[i]) {
				return
			}
		}
	}
}

// Accept traverses every event in storage order, invoking the visitor once
// per event. Read-only and unlocked, same single-owner assumption as
// iteration.
func (t *Timeline) Accept(v Visitor) {
	for _, e := range t.events {
		v.Visit(e)
	}
}
