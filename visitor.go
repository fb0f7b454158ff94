package probez

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Visitor traverses a Timeline via Accept. Visit is called once per event in
// storage order and must not fail observably. Visitors switch on the
// concrete event kind and treat kinds they do not recognize as a silent
// no-op, never an error.
type Visitor interface {
	Visit(Event)
}

// VisitorFunc adapts a plain function to the Visitor protocol.
type VisitorFunc func(Event)

// Visit calls f(e).
func (f VisitorFunc) Visit(e Event) {
	f(e)
}

// YAMLVisitor serializes timing events to the timeline dump dialect:
//
//	timeline:
//	- !timing_event
//	  name:  fun1
//	  tid:   42
//	  start: 1724668800000000
//	  end:   1724668800100000
//
// One block per event in storage order; start and end are integer
// microseconds since the Unix epoch. Other event kinds are skipped. The
// layout is written by hand because the dialect's value alignment and local
// !timing_event tags are fixed, and a generic YAML encoder normalizes both
// away.
type YAMLVisitor struct {
	buf strings.Builder
}

// NewYAMLVisitor creates a visitor with the timeline document opened.
func NewYAMLVisitor() *YAMLVisitor {
	v := &YAMLVisitor{}
	v.buf.WriteString("timeline:\n")
	return v
}

// Visit appends one tagged block for a timing event. Other kinds are
// ignored.
func (v *YAMLVisitor) Visit(e Event) {
	switch ev := e.(type) {
	case TimingEvent:
		// Tag the block so readers know which kind it holds.
		v.buf.WriteString("- !timing_event\n")
		fmt.Fprintf(&v.buf, "  name:  %s\n", ev.Name)
		fmt.Fprintf(&v.buf, "  tid:   %s\n", ev.TID)
		fmt.Fprintf(&v.buf, "  start: %d\n", ev.Start.UnixMicro())
		fmt.Fprintf(&v.buf, "  end:   %d\n", ev.End.UnixMicro())
	}
}

// Dump returns the document built so far.
func (v *YAMLVisitor) Dump() string {
	return v.buf.String()
}

// ParseTimeline decodes a YAMLVisitor dump back into a timeline. Sequence
// entries whose tag is not !timing_event are skipped, mirroring how visitors
// ignore unknown kinds. The dump dialect carries microsecond counts, so
// sub-microsecond precision does not round-trip.
func ParseTimeline(data []byte) (*Timeline, error) {
	var doc struct {
		Timeline []yaml.Node `yaml:"timeline"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("probez: parse timeline: %w", err)
	}

	tl := NewTimeline()
	for _, node := range doc.Timeline {
		if node.Tag != "!timing_event" {
			continue
		}
		// Clear the local tag so the node decodes as a plain mapping.
		node.Tag = "!!map"

		var raw struct {
			Name  string `yaml:"name"`
			TID   uint64 `yaml:"tid"`
			Start int64  `yaml:"start"`
			End   int64  `yaml:"end"`
		}
		if err := node.Decode(&raw); err != nil {
			return nil, fmt.Errorf("probez: parse timing event: %w", err)
		}

		tl.Push(TimingEvent{
			Name:  raw.Name,
			TID:   GID(raw.TID),
			Start: time.UnixMicro(raw.Start),
			End:   time.UnixMicro(raw.End),
		})
	}
	return tl, nil
}
