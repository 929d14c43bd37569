// Package indent computes the indentation of the line being edited in a
// JavaScript-like source file from the text that precedes it.
//
// The engine does not parse. It replays the token stream of the preceding
// text over a nesting stack: every bracket and every if/for/while/else pushes
// a frame carrying the whitespace a new line at that level would get, every
// closer pops one, and every line break overwrites the top frame with the
// whitespace the user actually typed. Frames remember whether their
// whitespace is real (typed) or guessed (derived by shifting), and a guessed
// frame never compounds into a deeper guess.
//
// Dangling single-statement bodies ("if (x)\n  y();") are tracked with the
// TagIfCond frame: it lives until the next typed line break or an opening
// brace, whichever comes first.
//
// Typical use:
//
//	eng, err := indent.New(indent.DefaultConfig())
//	col, err := eng.ComputeIndent("if (x) {\n  y();", "z();") // 2
package indent
