package lexer

import (
	"jsindent/internal/source"
	"jsindent/internal/token"
)

// All drains the lexer and returns every token before EOF.
func (lx *Lexer) All() []token.Token {
	out := make([]token.Token, 0, len(lx.file.Content)/3+1)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

// Tokenize lexes text held in memory. Diagnostics are dropped; the stream is
// still complete for malformed input.
func Tokenize(text string) []token.Token {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<text>", []byte(text)))
	return New(file, Options{}).All()
}
