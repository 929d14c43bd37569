package lexer

import (
	"jsindent/internal/diag"
	"jsindent/internal/token"
)

// scanSpace коалесцирует любую последовательность пробельных символов.
// Если внутри есть '\n', токен получает Kind Newline.
func (lx *Lexer) scanSpace() token.Token {
	start := lx.cursor.Mark()
	kind := token.Space
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSpaceByte(b) {
			if b == '\n' {
				kind = token.Newline
			}
			lx.cursor.Bump()
			continue
		}
		if b < utf8RuneSelf {
			break
		}
		r, _ := lx.peekRune()
		if !isSpaceRune(r) {
			break
		}
		lx.bumpRune()
	}
	return lx.emit(kind, start)
}

// //... до '\n' (не включая) и /* ... */ без вложенности
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	if lx.cursor.Bump() == '/' {
		lx.skipToLineEnd()
		return lx.emit(token.LineComment, start)
	}

	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.emit(token.BlockComment, start)
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(token.BlockComment, start)
	lx.errLex(diag.LexUnterminatedBlockComment, tok.Span, "unterminated block comment")
	return tok
}

// '#!' в самом начале файла это hashbang, '#name' это приватное поле класса.
func (lx *Lexer) scanHash() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.Off == 0 && lx.cursor.PeekAt(1) == '!' {
		lx.skipToLineEnd()
		return lx.emit(token.Hashbang, start)
	}
	lx.cursor.Bump()
	r, sz := lx.peekRune()
	if sz > 0 && isIdentStartRune(r) {
		lx.scanIdentTail()
		return lx.emit(token.PrivateName, start)
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unexpected '#'")
	return tok
}

func (lx *Lexer) skipToLineEnd() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}
