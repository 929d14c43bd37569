package lexer

import (
	"jsindent/internal/source"
	"jsindent/internal/token"
)

// Lexer turns a source file into a lossless token stream: whitespace and
// comments are returned as tokens, so the concatenated texts equal the input.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	prev   token.Kind // последний значимый токен, EOF если его ещё не было
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		prev:   token.EOF,
	}
}

// Next возвращает следующий токен. После конца ввода всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}
	tok := lx.scanToken()
	if !tok.Kind.IsTrivia() {
		lx.prev = tok.Kind
	}
	return tok
}

func (lx *Lexer) scanToken() token.Token {
	ch := lx.cursor.Peek()

	switch {
	case isSpaceByte(ch):
		return lx.scanSpace()

	case ch == '/' && (lx.cursor.PeekAt(1) == '/' || lx.cursor.PeekAt(1) == '*'):
		return lx.scanComment()

	case ch == '/' && regexAllowedAfter(lx.prev):
		return lx.scanRegexOrSlash()

	case ch == '#':
		return lx.scanHash()

	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		// пробел, идентификатор или мусор: решает руна
		r, _ := lx.peekRune()
		if isSpaceRune(r) {
			return lx.scanSpace()
		}
		return lx.scanIdentOrKeyword()

	case isDec(ch), lx.isNumberAfterDot():
		return lx.scanNumber()

	case ch == '"' || ch == '\'':
		return lx.scanString(ch)

	case ch == '`':
		return lx.scanTemplate()

	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
