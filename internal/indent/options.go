package indent

import "jsindent/internal/trace"

// Option configures an Engine.
type Option func(*Engine)

// WithTracer sends one ScopeLine span per query and, at stack level, one
// ScopeStack point event per stack mutation to t.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) {
		if t == nil {
			t = trace.Nop
		}
		e.tracer = t
	}
}

// WithParentSpan nests the per-query spans under an existing span.
func WithParentSpan(id uint64) Option {
	return func(e *Engine) { e.parent = id }
}
