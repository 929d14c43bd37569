package lexer

import (
	"jsindent/internal/diag"
	"jsindent/internal/token"
)

// Жадность: пробуем самый длинный пунктуатор (">>>=", 4 байта) и укорачиваем.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	rest := lx.file.Content[lx.cursor.Off:lx.cursor.Limit]

	for n := min(token.MaxPunctLen, len(rest)); n > 0; n-- {
		k, ok := token.LookupPunct(string(rest[:n]))
		if !ok {
			continue
		}
		// a?.5:1 это тернарный оператор, а не optional chaining
		if k == token.QuestionDot && len(rest) > 2 && isDec(rest[2]) {
			k, n = token.Question, 1
		}
		for range n {
			lx.cursor.Bump()
		}
		return lx.emit(k, start)
	}

	// неизвестный символ: съедаем целую руну, чтобы не резать UTF-8
	lx.bumpRune()
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character "+tok.Text)
	return tok
}
