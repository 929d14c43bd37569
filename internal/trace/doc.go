// Package trace records what jsindent did on the way to an answer.
//
// Events are grouped by scope. A run is one CLI command or LSP request, a
// file is one file of a reindent, a line is one engine query and a stack
// event is a single push, pop or retag of the nesting stack. The level
// picks the deepest scope that is recorded:
//
//	jsindent indent --trace=- --trace-level=stack app.js 12
//
// Tracers either stream events as they happen (text or NDJSON) or keep
// the last N in a ring that is dumped when the command fails.
package trace
