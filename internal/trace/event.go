package trace

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Kind says what an event marks.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
	KindHeartbeat
)

func (k Kind) String() string {
	switch k {
	case KindBegin:
		return "begin"
	case KindEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindHeartbeat:
		return "heartbeat"
	}
	return "unknown"
}

// Event is one trace record. Fields is shared with the span that produced
// it and must not be modified by tracers.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64
	Name     string
	Detail   string
	Elapsed  time.Duration // KindEnd only
	Fields   map[string]string
}

// Format selects how events are written.
type Format uint8

const (
	FormatAuto Format = iota
	FormatText
	FormatNDJSON
)

// ParseFormat accepts auto, text, ndjson and json (same as ndjson).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	}
	return FormatAuto, fmt.Errorf("trace format %q: want auto|text|ndjson", s)
}

// FormatForPath resolves FormatAuto by file extension. Stderr gets text.
func FormatForPath(f Format, path string) Format {
	if f != FormatAuto {
		return f
	}
	if strings.HasSuffix(path, ".ndjson") || strings.HasSuffix(path, ".json") {
		return FormatNDJSON
	}
	return FormatText
}

// AppendEvent appends ev rendered in format f, newline included.
func AppendEvent(buf []byte, ev *Event, f Format) []byte {
	if f == FormatNDJSON {
		return appendJSON(buf, ev)
	}
	return appendText(buf, ev)
}

var kindMarks = map[Kind]string{KindBegin: ">", KindEnd: "<", KindPoint: "*", KindHeartbeat: "~"}

// appendText renders "#seq scope mark name (detail) k=v +elapsed".
func appendText(buf []byte, ev *Event) []byte {
	buf = fmt.Appendf(buf, "#%-6d %-5s %s %s", ev.Seq, ev.Scope, kindMarks[ev.Kind], ev.Name)
	if ev.Detail != "" {
		buf = fmt.Appendf(buf, " (%s)", ev.Detail)
	}
	keys := make([]string, 0, len(ev.Fields))
	for k := range ev.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		buf = fmt.Appendf(buf, " %s=%s", k, ev.Fields[k])
	}
	if ev.Kind == KindEnd {
		buf = fmt.Appendf(buf, " +%s", ev.Elapsed)
	}
	return append(buf, '\n')
}

type jsonEvent struct {
	Time      string            `json:"time"`
	Seq       uint64            `json:"seq"`
	Kind      string            `json:"kind"`
	Scope     string            `json:"scope"`
	Span      uint64            `json:"span,omitempty"`
	Parent    uint64            `json:"parent,omitempty"`
	Name      string            `json:"name"`
	Detail    string            `json:"detail,omitempty"`
	ElapsedNS int64             `json:"elapsed_ns,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

func appendJSON(buf []byte, ev *Event) []byte {
	data, err := json.Marshal(jsonEvent{
		Time:      ev.Time.UTC().Format(time.RFC3339Nano),
		Seq:       ev.Seq,
		Kind:      ev.Kind.String(),
		Scope:     ev.Scope.String(),
		Span:      ev.SpanID,
		Parent:    ev.ParentID,
		Name:      ev.Name,
		Detail:    ev.Detail,
		ElapsedNS: int64(ev.Elapsed),
		Fields:    ev.Fields,
	})
	if err != nil {
		return fmt.Appendf(buf, `{"seq":%d,"error":%q}`+"\n", ev.Seq, err.Error())
	}
	return append(append(buf, data...), '\n')
}
