package observ

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Phase records the duration of one step of a run.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks run phases and per-file durations. Safe for concurrent use.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
	files  []FileReport
}

// FileReport is the time spent on one file.
type FileReport struct {
	Path       string  `json:"path"`
	DurationMS float64 `json:"duration_ms"`
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// AddFile records how long a file took.
func (t *Timer) AddFile(path string, d time.Duration) {
	t.mu.Lock()
	t.files = append(t.files, FileReport{Path: path, DurationMS: durationToMillis(d)})
	t.mu.Unlock()
}

// PhaseReport is a phase flattened for output.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
	Slowest []FileReport  `json:"slowest,omitempty"`
}

// Report returns the phases in start order, the total and the slowest
// files (at most top of them, slowest first).
func (t *Timer) Report(top int) Report {
	t.mu.Lock()
	defer t.mu.Unlock()

	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)

	if top > 0 && len(t.files) > 0 {
		files := append([]FileReport(nil), t.files...)
		sort.SliceStable(files, func(i, j int) bool { return files[i].DurationMS > files[j].DurationMS })
		report.Slowest = files[:min(top, len(files))]
	}
	return report
}

// Summary returns a human-readable table of the report.
func (t *Timer) Summary(top int) string {
	report := t.Report(top)
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "  %-20s %7.2f ms\n", "total", report.TotalMS)
	if len(report.Slowest) > 0 {
		b.WriteString("slowest files:\n")
		for _, f := range report.Slowest {
			fmt.Fprintf(&b, "  %7.2f ms  %s\n", f.DurationMS, f.Path)
		}
	}
	return b.String()
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
