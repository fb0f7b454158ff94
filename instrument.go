//go:build !probez_off
// +build !probez_off

package probez

// Package-level instrumentation helpers, compiled out under the probez_off
// build tag. The pipeline itself is always available; the tag only strips
// probe creation so instrumented call sites cost nothing in stripped builds.
//
// To strip instrumentation, build with the tag:
//
//	go build -tags=probez_off

// Enabled reports whether the instrumentation helpers are compiled in.
const Enabled = true

// Measure creates a scope probe on p, or an inert probe in stripped builds.
//
//	defer probez.Measure(p, "parse").End()
func Measure(p *Profiler, name Key) *Probe {
	return p.Probe(name)
}

// MeasureFunction creates a scope probe named after the calling function,
// or an inert probe in stripped builds.
func MeasureFunction(p *Profiler) *Probe {
	return p.Probe(callerLocation(2))
}
