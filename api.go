// Package probez provides a minimal, in-process performance profiling
// pipeline.
//
// probez records timing measurements made by lightweight probes into an
// ordered, thread-safe timeline without the complexity of a distributed
// tracing system. There is no cross-process correlation, no sampling and no
// network export; the timeline is a flat, chronologically-appended record
// that consumers interpret themselves.
//
// Core Components:.
//   - Profiler: Owns session lifecycle and the recording pipeline.
//   - Probe / ManualProbe: Produce timing events from instrumented code.
//   - Timeline: Thread-safe ordered store of recorded events.
//   - Visitor: Traversal protocol for serialization and analysis.
//
// Basic Usage:.
//
//	p := probez.New()
//	if err := p.StartSession("startup"); err != nil {
//		return err
//	}
//
//	// Measure a scope.
//	func() {
//		defer p.Probe("load-config").End()
//		loadConfig()
//	}()
//
//	timeline := p.StopSession()
//	visitor := probez.NewYAMLVisitor()
//	timeline.Accept(visitor)
//	fmt.Print(visitor.Dump())
//
// Thread Safety:.
//
// Profiler is safe for concurrent use by multiple goroutines; any number of
// producers may record events against one live session. Timeline mutators
// are internally locked. Iteration and Accept are NOT locked - they are
// meant for the post-session phase, after StopSession has handed the
// timeline to a single owner.
//
// Probes themselves are NOT thread-safe - do not share one probe instance
// between goroutines.
//
// Sessions:.
//
// At most one session is live per Profiler. Events recorded without a live
// session are discarded. StopSession blocks until the background worker has
// applied every queued event, then transfers timeline ownership to the
// caller; the next session starts from an empty timeline.
package probez

// Key represents a probe or event name.
type Key = string
