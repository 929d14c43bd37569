package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("collect")
	tm.End(idx, "3 files")
	tm.End(42, "ignored")
	tm.AddFile("a.js", 2*time.Millisecond)
	tm.AddFile("b.js", 5*time.Millisecond)
	tm.AddFile("c.js", time.Millisecond)

	r := tm.Report(2)
	if len(r.Phases) != 1 || r.Phases[0].Name != "collect" || r.Phases[0].Note != "3 files" {
		t.Fatalf("phases = %+v", r.Phases)
	}
	if len(r.Slowest) != 2 || r.Slowest[0].Path != "b.js" || r.Slowest[1].Path != "a.js" {
		t.Fatalf("slowest = %+v", r.Slowest)
	}
	if r := tm.Report(0); r.Slowest != nil {
		t.Fatalf("Report(0).Slowest = %+v", r.Slowest)
	}

	s := tm.Summary(1)
	for _, want := range []string{"collect", "// 3 files", "total", "slowest files:", "b.js"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "a.js") {
		t.Errorf("summary lists more than one file:\n%s", s)
	}
}
