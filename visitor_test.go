package probez

import (
	"strings"
	"testing"
	"time"
)

// markerEvent is a second event kind used to exercise the extension
// contract: visitors that do not recognize it must skip it silently.
type markerEvent struct {
	label string
}

func (markerEvent) isEvent() {}

func TestYAMLVisitorDump(t *testing.T) {
	start := time.UnixMicro(1700000000000000)
	end := start.Add(100 * time.Millisecond)

	tl := NewTimeline()
	tl.Push(TimingEvent{Name: "fun1", TID: 7, Start: start, End: end})

	v := NewYAMLVisitor()
	tl.Accept(v)

	want := "timeline:\n" +
		"- !timing_event\n" +
		"  name:  fun1\n" +
		"  tid:   7\n" +
		"  start: 1700000000000000\n" +
		"  end:   1700000000100000\n"
	if got := v.Dump(); got != want {
		t.Errorf("Expected dump:\n%s\ngot:\n%s", want, got)
	}
}

func TestYAMLVisitorMultipleEvents(t *testing.T) {
	tl := NewTimeline()
	tl.Push(timingAt("first", 0, 10))
	tl.Push(timingAt("second", 10, 20))

	v := NewYAMLVisitor()
	tl.Accept(v)

	dump := v.Dump()
	if got := strings.Count(dump, "- !timing_event"); got != 2 {
		t.Errorf("Expected 2 event blocks, got %d", got)
	}
	if strings.Index(dump, "first") > strings.Index(dump, "second") {
		t.Error("Expected storage order to be preserved in the dump")
	}
}

func TestYAMLVisitorSkipsUnknownKinds(t *testing.T) {
	tl := NewTimeline()
	tl.Push(markerEvent{label: "checkpoint"})
	tl.Push(timingAt("timed", 0, 10))

	v := NewYAMLVisitor()
	tl.Accept(v)

	dump := v.Dump()
	if got := strings.Count(dump, "- !timing_event"); got != 1 {
		t.Errorf("Expected 1 event block, got %d", got)
	}
	if strings.Contains(dump, "checkpoint") {
		t.Error("Expected unknown kinds to be skipped silently")
	}
}

func TestVisitorFunc(t *testing.T) {
	tl := NewTimeline()
	tl.Push(timingAt("a", 0, 1))
	tl.Push(markerEvent{label: "b"})
	tl.Push(timingAt("c", 1, 2))

	var visits int
	tl.Accept(VisitorFunc(func(Event) {
		visits++
	}))

	if visits != 3 {
		t.Errorf("Expected 3 visits, got %d", visits)
	}
}

func TestParseTimelineRoundTrip(t *testing.T) {
	events := []TimingEvent{
		{Name: "fun1", TID: 7, Start: time.UnixMicro(100), End: time.UnixMicro(200)},
		{Name: "fun2", TID: 9, Start: time.UnixMicro(150), End: time.UnixMicro(180)},
	}

	tl := NewTimeline()
	for _, e := range events {
		tl.Push(e)
	}

	v := NewYAMLVisitor()
	tl.Accept(v)

	parsed, err := ParseTimeline([]byte(v.Dump()))
	if err != nil {
		t.Fatalf("Expected dump to parse, got %v", err)
	}
	if parsed.Len() != len(events) {
		t.Fatalf("Expected %d events, got %d", len(events), parsed.Len())
	}
	for i, want := range events {
		got := parsed.Events()[i].(TimingEvent)
		if !got.Equal(want) {
			t.Errorf("Expected event %d to round-trip as %+v, got %+v", i, want, got)
		}
	}
}

func TestParseTimelineSkipsUnknownTags(t *testing.T) {
	doc := "timeline:\n" +
		"- !marker_event\n" +
		"  label: checkpoint\n" +
		"- !timing_event\n" +
		"  name:  kept\n" +
		"  tid:   3\n" +
		"  start: 100\n" +
		"  end:   200\n"

	parsed, err := ParseTimeline([]byte(doc))
	if err != nil {
		t.Fatalf("Expected document to parse, got %v", err)
	}
	if parsed.Len() != 1 {
		t.Fatalf("Expected unknown tags to be skipped, got %d events", parsed.Len())
	}
	if e := parsed.Front().(TimingEvent); e.Name != "kept" {
		t.Errorf("Expected the tagged timing event, got %q", e.Name)
	}
}

func TestParseTimelineInvalid(t *testing.T) {
	if _, err := ParseTimeline([]byte("timeline: [")); err == nil {
		t.Error("Expected malformed YAML to return an error")
	}
}

func TestParseTimelineEmpty(t *testing.T) {
	parsed, err := ParseTimeline([]byte("timeline:\n"))
	if err != nil {
		t.Fatalf("Expected empty document to parse, got %v", err)
	}
	if !parsed.Empty() {
		t.Errorf("Expected empty timeline, got %d events", parsed.Len())
	}
}
