package probez

import "time"

// Event is one record in a Timeline, tagged by kind.
// The kind set is closed: new kinds are added to this package next to
// TimingEvent, not by implementing the interface elsewhere. Consumers switch
// on the concrete type and must treat kinds they do not recognize as a
// silent no-op.
type Event interface {
	// isEvent restricts the kind set to this package.
	isEvent()
}

// TimingEvent records one timing measurement: a named interval measured on a
// single goroutine, bounded by two clock samples taken in order.
// Immutable once constructed. End >= Start is expected but not enforced by
// the type; probes guarantee it by sampling start before end.
type TimingEvent struct {
	Name  string    `json:"name"`
	TID   GID       `json:"tid"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (TimingEvent) isEvent() {}

// Duration returns the measured interval length.
func (e TimingEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Equal reports whether both events agree on name, goroutine id, start and
// end.
func (e TimingEvent) Equal(other TimingEvent) bool {
	return e.Name == other.Name &&
		e.TID == other.TID &&
		e.Start.Equal(other.Start) &&
		e.End.Equal(other.End)
}

// Contains reports whether other lies strictly inside this event's interval.
// Both bounds are exclusive: an event sharing a start or end time with this
// one is not contained. Callers needing inclusive containment must
// special-case equal bounds themselves.
func (e TimingEvent) Contains(other TimingEvent) bool {
	return other.Start.After(e.Start) && other.End.Before(e.End)
}
