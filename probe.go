package probez

import (
	"fmt"
	"runtime"
	"time"
)

// Probe measures the scope it was created in: construction samples the
// start time, End samples the end and records exactly one TimingEvent.
// Intended for defer:
//
//	defer p.Probe("load-assets").End()
//
// End is idempotent, so a probe finished early on one path is not recorded
// again by its deferred call. Probes are NOT thread-safe and stamp the event
// with the goroutine that calls End; do not pass a probe across goroutines.
type Probe struct {
	profiler *Profiler
	name     string
	start    time.Time
	finished bool
}

// Probe creates a scope-bound probe and samples its start time.
func (p *Profiler) Probe(name Key) *Probe {
	return &Probe{
		profiler: p,
		name:     name,
		start:    p.clock.Now(),
	}
}

// End samples the end time and records the measurement. Subsequent calls
// are no-ops.
func (pr *Probe) End() {
	if pr.finished {
		return
	}
	pr.finished = true

	// Sample before the hand-off so queueing time is not measured.
	end := pr.profiler.clock.Now()
	pr.profiler.RecordEvent(TimingEvent{
		Name:  pr.name,
		TID:   CurrentGID(),
		Start: pr.start,
		End:   end,
	})
}

// ManualProbe measures intervals on demand and may be reused: each
// Start/Stop pair records one TimingEvent. Stop without a prior Start
// records a zero start time; pairing the calls correctly is the caller's
// responsibility. Not thread-safe.
type ManualProbe struct {
	profiler *Profiler
	name     string
	start    time.Time
}

// ManualProbe creates a reusable probe bound to this profiler.
func (p *Profiler) ManualProbe() *ManualProbe {
	return &ManualProbe{profiler: p}
}

// Start begins a measurement, overwriting any in-flight one.
func (m *ManualProbe) Start(name Key) {
	m.name = name
	m.start = m.profiler.clock.Now()
}

// Stop ends the measurement begun by the most recent Start and records it.
func (m *ManualProbe) Stop() {
	end := m.profiler.clock.Now()
	m.profiler.RecordEvent(TimingEvent{
		Name:  m.name,
		TID:   CurrentGID(),
		Start: m.start,
		End:   end,
	})
}

// MeasureFunc creates a scope probe named "file:line function" after the
// call site, for instrumenting whole functions without naming them by hand:
//
//	defer p.MeasureFunc().End()
func (p *Profiler) MeasureFunc() *Probe {
	return p.Probe(callerLocation(2))
}

// callerLocation renders a caller's source location. skip counts frames
// above this function, as for runtime.Caller.
func callerLocation(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return fmt.Sprintf("%s:%d %s", file, line, name)
}
