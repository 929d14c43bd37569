// Package token defines lexical token kinds for JavaScript-like sources.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace and comments are ordinary tokens, not trivia: concatenating
//     the Text of every token reproduces the input byte for byte.
//   - Template literals are one token including every ${...} substitution,
//     so nothing inside a template is ever punctuation.
package token
