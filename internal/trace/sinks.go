package trace

import (
	"errors"
	"io"
	"sync"
)

// StreamTracer writes each event to w as soon as it is emitted.
type StreamTracer struct {
	level  Level
	format Format

	mu     sync.Mutex
	w      io.Writer
	closer io.Closer // set when the tracer opened w itself
	buf    []byte
}

// NewStreamTracer writes to w; FormatAuto means text. The caller keeps
// ownership of w.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	if format == FormatAuto {
		format = FormatText
	}
	return &StreamTracer{w: w, level: level, format: format}
}

func (t *StreamTracer) Emit(ev Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = AppendEvent(t.buf[:0], &ev, t.format)
	// ошибки записи трассы не должны ронять команду
	_, _ = t.w.Write(t.buf)
}

func (t *StreamTracer) Level() Level { return t.level }

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	if f, ok := t.w.(interface{ Sync() error }); ok && t.closer != nil {
		return f.Sync()
	}
	return nil
}

func (t *StreamTracer) Close() error {
	err := t.Flush()
	if t.closer != nil {
		err = errors.Join(err, t.closer.Close())
		t.closer = nil
	}
	return err
}

// RingTracer keeps the most recent events in memory.
type RingTracer struct {
	level Level

	mu     sync.Mutex
	events []Event
	next   int
	filled bool
}

// NewRingTracer keeps up to size events; size <= 0 means 4096.
func NewRingTracer(size int, level Level) *RingTracer {
	if size <= 0 {
		size = defaultRingSize
	}
	return &RingTracer{level: level, events: make([]Event, size)}
}

func (t *RingTracer) Emit(ev Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	t.events[t.next] = ev
	t.next++
	if t.next == len(t.events) {
		t.next = 0
		t.filled = true
	}
	t.mu.Unlock()
}

// Snapshot returns the buffered events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.filled {
		return append([]Event(nil), t.events[:t.next]...)
	}
	out := make([]Event, 0, len(t.events))
	out = append(out, t.events[t.next:]...)
	return append(out, t.events[:t.next]...)
}

// Dump writes the buffered events to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	var buf []byte
	for _, ev := range t.Snapshot() {
		buf = AppendEvent(buf, &ev, format)
	}
	_, err := w.Write(buf)
	return err
}

func (t *RingTracer) Level() Level { return t.level }
func (t *RingTracer) Flush() error { return nil }
func (t *RingTracer) Close() error { return nil }

// Tee forwards every event to all of its tracers.
type Tee struct {
	tracers []Tracer
	level   Level
}

// NewTee records at the deepest level among tracers.
func NewTee(tracers ...Tracer) *Tee {
	tee := &Tee{tracers: tracers}
	for _, t := range tracers {
		tee.level = max(tee.level, t.Level())
	}
	return tee
}

func (t *Tee) Emit(ev Event) {
	for _, tr := range t.tracers {
		tr.Emit(ev)
	}
}

func (t *Tee) Level() Level { return t.level }

func (t *Tee) Flush() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Flush())
	}
	return errors.Join(errs...)
}

func (t *Tee) Close() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

// Ring finds the ring buffer behind t, if any.
func Ring(t Tracer) *RingTracer {
	switch v := t.(type) {
	case *RingTracer:
		return v
	case *Tee:
		for _, tr := range v.tracers {
			if r := Ring(tr); r != nil {
				return r
			}
		}
	}
	return nil
}
