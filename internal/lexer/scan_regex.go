package lexer

import (
	"jsindent/internal/token"
)

// regexAllowedAfter решает, начинает ли '/' регулярное выражение, по
// предыдущему значимому токену. После значения ('a', 1, ')', ']', '}')
// это деление.
func regexAllowedAfter(prev token.Kind) bool {
	switch prev {
	case token.EOF:
		return true
	case token.RParen, token.RBracket, token.RBrace,
		token.PlusPlus, token.MinusMinus:
		return false
	case token.KwReturn, token.KwThrow, token.KwNew, token.KwDelete,
		token.KwTypeof, token.KwVoid, token.KwIn, token.KwInstanceof,
		token.KwCase, token.KwDo, token.KwElse, token.KwYield, token.KwAwait,
		token.KwExtends:
		return true
	}
	return prev.IsPunctOrOp()
}

// scanRegexOrSlash пробует прочитать /body/flags. Перевод строки или конец
// ввода до закрывающего '/' означает откат, и '/' становится оператором.
func (lx *Lexer) scanRegexOrSlash() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	inClass := false
	for {
		if lx.cursor.EOF() {
			break
		}
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
		switch {
		case b == '\\':
			if c := lx.cursor.Peek(); c == '\n' || c == '\r' || lx.cursor.EOF() {
				lx.cursor.Reset(start)
				return lx.scanOperatorOrPunct()
			}
			lx.bumpRune()
		case b == '[':
			inClass = true
		case b == ']':
			inClass = false
		case b == '/' && !inClass:
			for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.emit(token.RegexLit, start)
		}
	}
	lx.cursor.Reset(start)
	return lx.scanOperatorOrPunct()
}
