package track

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// traceRecord is the JSON-lines wire shape of one event.
type traceRecord struct {
	Time   time.Time `json:"ts"`
	Type   string    `json:"type"`
	Handle Handle    `json:"handle"`
	Kind   Kind      `json:"kind"`
	Label  string    `json:"label,omitempty"`
}

// TraceWriter is an Observer that appends one JSON record per line to
// the underlying writer.
type TraceWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewTraceWriter returns a trace-writing observer over w.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{enc: json.NewEncoder(w)}
}

// OnResourceEvent writes the event. Encoding errors are dropped; traces
// are diagnostics, not data of record.
func (t *TraceWriter) OnResourceEvent(e Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.enc.Encode(traceRecord{
		Time:   e.Time,
		Type:   e.Type.String(),
		Handle: e.Handle,
		Kind:   e.Kind,
		Label:  e.Label,
	})
}

// DecodeTrace reads a JSON-lines trace back into events. Blank lines
// are skipped; a malformed line fails the whole decode.
func DecodeTrace(r io.Reader) ([]Event, error) {
	var events []Event
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec traceRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("trace line %d: %w", line, err)
		}
		events = append(events, Event{
			Time:   rec.Time,
			Type:   parseEventType(rec.Type),
			Handle: rec.Handle,
			Kind:   rec.Kind,
			Label:  rec.Label,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func parseEventType(s string) EventType {
	switch s {
	case "acquired":
		return EventAcquired
	case "released":
		return EventReleased
	case "stolen":
		return EventStolen
	default:
		return EventType(255)
	}
}
