package lexer

import (
	"jsindent/internal/diag"
	"jsindent/internal/token"
)

// '...' или "...". Escape съедает следующий байт, включая '\n' (продолжение строки).
// Неэкранированный перевод строки обрывает литерал: токен Invalid до '\n'.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case quote:
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.Peek() == '\r' && lx.cursor.PeekAt(1) == '\n' {
				lx.cursor.Bump()
			}
			lx.bumpRune()
			continue
		case '\n':
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexUnterminatedString, tok.Span, "newline in string literal")
			return tok
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanTemplate читает `...` целиком, включая подстановки ${...}.
// Внутри подстановки работает обычный лексер, поэтому строки, комментарии и
// вложенные шаблоны со скобками не ломают подсчёт глубины.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '`'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '`':
			lx.cursor.Bump()
			return lx.emit(token.TemplateLit, start)
		case '\\':
			lx.cursor.Bump()
			lx.bumpRune()
			continue
		case '$':
			if lx.cursor.PeekAt(1) == '{' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.skipSubstitution()
				continue
			}
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(token.TemplateLit, start)
	lx.errLex(diag.LexUnterminatedTemplate, tok.Span, "unterminated template literal")
	return tok
}

// skipSubstitution съедает тело ${...} вместе с закрывающей '}' (если она есть).
func (lx *Lexer) skipSubstitution() {
	saved := lx.prev
	defer func() { lx.prev = saved }()

	lx.prev = token.LBrace
	depth := 0
	for !lx.cursor.EOF() {
		tok := lx.scanToken()
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		}
		if !tok.Kind.IsTrivia() {
			lx.prev = tok.Kind
		}
	}
}
