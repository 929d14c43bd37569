package diag

import "jsindent/internal/source"

// DedupReporter forwards each distinct (code, severity, span, message) once.
// Reindent --explain reloads files that several paths may name.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]bool
}

type dedupKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: map[dedupKey]bool{}}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r == nil || r.next == nil {
		return
	}
	k := dedupKey{code, sev, primary, msg}
	if r.seen[k] {
		return
	}
	r.seen[k] = true
	r.next.Report(code, sev, primary, msg, notes)
}
