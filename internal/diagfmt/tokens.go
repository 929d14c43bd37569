package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"

	"jsindent/internal/source"
	"jsindent/internal/token"
)

// maxTextColumn ограничивает ширину колонки с текстом токена.
const maxTextColumn = 32

type TokenOutput struct {
	Kind  string         `json:"kind"`
	Text  string         `json:"text,omitempty"`
	Span  source.Span    `json:"span"`
	Start source.LineCol `json:"start"`
	End   source.LineCol `json:"end"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате,
// выравнивая колонку текста по ширине на экране.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	quoted := make([]string, len(tokens))
	col := 0
	for i, tok := range tokens {
		quoted[i] = strconv.Quote(tok.Text)
		if width := runewidth.StringWidth(quoted[i]); width > col {
			col = width
		}
	}
	col = min(col, maxTextColumn)

	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		text := quoted[i]
		if runewidth.StringWidth(text) > maxTextColumn {
			text = runewidth.Truncate(text, maxTextColumn, "...")
		}
		if _, err := fmt.Fprintf(w, "%3d: %-15s %s at %d:%d-%d:%d\n",
			i+1, tok.Kind.String(), runewidth.FillRight(text, col),
			start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Span:  tok.Span,
			Start: start,
			End:   end,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
