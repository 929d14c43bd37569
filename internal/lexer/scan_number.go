package lexer

import (
	"jsindent/internal/diag"
	"jsindent/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b..., 0o..., 0x..., 1.0, .5, 1., 1e-3, 10n.
// Неверные формы: репорт, токен Invalid, лексинг продолжается.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		var digit func(byte) bool
		switch lx.cursor.PeekAt(1) {
		case 'b', 'B':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		case 'o', 'O':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'x', 'X':
			digit = isHex
		}
		if digit != nil {
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !digit(lx.cursor.Peek()) {
				return lx.badNumber(start, "expected digits after radix prefix")
			}
			lx.eatDigits(digit)
			lx.cursor.Eat('n')
			return lx.finishNumber(start)
		}
	}

	lx.eatDigits(isDec)

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDigits(isDec)
	} else if lx.cursor.Eat('n') {
		return lx.finishNumber(start)
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return lx.badNumber(start, "expected digit after exponent")
		}
		lx.eatDigits(isDec)
	}
	return lx.finishNumber(start)
}

func (lx *Lexer) eatDigits(digit func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if !digit(b) && b != '_' {
			return
		}
		lx.cursor.Bump()
	}
}

// finishNumber: идентификатор сразу после числа (3in, 1px) считается ошибкой.
func (lx *Lexer) finishNumber(start Mark) token.Token {
	if b := lx.cursor.Peek(); !lx.cursor.EOF() && isIdentStartByte(b) {
		for isIdentContinueByte(lx.cursor.Peek()) && !lx.cursor.EOF() {
			lx.cursor.Bump()
		}
		return lx.badNumber(start, "identifier starts immediately after numeric literal")
	}
	return lx.emit(token.NumberLit, start)
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexBadNumber, tok.Span, msg)
	return tok
}
