package ui

import (
	"errors"
	"strings"
	"testing"

	"jsindent/internal/driver"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	files := []string{"a.js", "b.js"}
	m := NewProgressModel("reindent", files, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageIndent, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "indenting" {
		t.Fatalf("status = %q, want indenting", got)
	}
	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageIndent, Status: driver.StatusDone, Changed: true})
	m.applyEvent(driver.Event{File: "b.js", Stage: driver.StageLoad, Status: driver.StatusError, Err: errors.New("boom")})
	// a finished file ignores late events
	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageLoad, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "unknown.js", Status: driver.StatusDone})

	if m.items[0].status != "changed" || m.items[1].status != "error" {
		t.Fatalf("statuses = %q, %q", m.items[0].status, m.items[1].status)
	}
	if m.changed != 1 || m.failed != 1 {
		t.Fatalf("changed=%d failed=%d", m.changed, m.failed)
	}
	if got := m.fraction(); got != 1.0 {
		t.Fatalf("fraction = %v, want 1", got)
	}

	view := m.View()
	for _, want := range []string{"2 files, 1 changed, 1 failed", "a.js", "b.js"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		ev   driver.Event
		want string
	}{
		{driver.Event{Status: driver.StatusQueued}, "queued"},
		{driver.Event{Status: driver.StatusWorking, Stage: driver.StageWrite}, "writing"},
		{driver.Event{Status: driver.StatusDone}, "ok"},
		{driver.Event{Status: driver.StatusDone, Cached: true}, "ok*"},
		{driver.Event{Status: driver.StatusDone, Changed: true, Cached: true}, "changed*"},
	}
	for _, tt := range tests {
		if got := statusLabel(tt.ev); got != tt.want {
			t.Errorf("statusLabel(%+v) = %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("src/components/very/long/path.js", 12); len(got) > 12 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncate(long) = %q", got)
	}
	if got := truncate("short.js", 20); got != "short.js" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Errorf("truncate(narrow) = %q", got)
	}
}
