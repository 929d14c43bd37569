package trace

import (
	"strconv"
	"sync"
	"time"
)

// Heartbeat emits a run-scope event every interval. A trace whose
// heartbeats continue without new file events points at a stuck file.
type Heartbeat struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartHeartbeat returns nil when t records nothing or every <= 0.
func StartHeartbeat(t Tracer, every time.Duration) *Heartbeat {
	if every <= 0 || !Wants(t, ScopeRun) {
		return nil
	}
	h := &Heartbeat{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(h.done)
		tick := time.NewTicker(every)
		defer tick.Stop()
		for n := 1; ; n++ {
			select {
			case <-h.stop:
				return
			case now := <-tick.C:
				t.Emit(Event{
					Time:   now,
					Seq:    nextSeq(),
					Kind:   KindHeartbeat,
					Scope:  ScopeRun,
					Name:   "heartbeat",
					Detail: "#" + strconv.Itoa(n),
				})
			}
		}
	}()
	return h
}

// Stop ends the heartbeat and waits for its goroutine. Safe on nil and
// safe to call twice.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() { close(h.stop) })
	<-h.done
}
