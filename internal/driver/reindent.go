package driver

import (
	"strings"

	"jsindent/internal/config"
	"jsindent/internal/indent"
	"jsindent/internal/lexer"
	"jsindent/internal/source"
	"jsindent/internal/token"
)

// ReindentStats counts what a reindent pass did.
type ReindentStats struct {
	Lines   int // lines looked at
	Changed int // lines whose leading whitespace was rewritten
	Frozen  int // lines left alone because they start inside a literal or comment
}

// ReindentOutput is the reindented text of one file.
type ReindentOutput struct {
	// Text uses '\n' line endings; File.Restore re-applies the original encoding.
	Text  []byte
	Stats ReindentStats
}

// Changed reports whether any line was rewritten.
func (o *ReindentOutput) Changed() bool { return o != nil && o.Stats.Changed > 0 }

// ReindentSource recomputes the leading whitespace of every line of file.
func ReindentSource(file *source.File, s config.Settings, opts ...indent.Option) (*ReindentOutput, error) {
	lines := file.Lines()
	out, stats, err := ReindentLines(lines, 0, len(lines), s, opts...)
	if err != nil {
		return nil, err
	}
	text := strings.Join(out, "\n")
	if len(file.Content) > 0 && file.Content[len(file.Content)-1] == '\n' {
		text += "\n"
	}
	return &ReindentOutput{Text: []byte(text), Stats: stats}, nil
}

// ReindentLines returns a copy of lines with lines[from:to] reindented. Each
// line is indented from the already reindented lines above it. Blank lines
// become empty; lines that begin inside a template literal, a block comment
// or a continued string keep their text as is. Lines must not carry their
// terminators.
func ReindentLines(lines []string, from, to int, s config.Settings, opts ...indent.Option) ([]string, ReindentStats, error) {
	var stats ReindentStats
	eng, err := indent.New(s.Indent, opts...)
	if err != nil {
		return nil, stats, err
	}
	from = max(from, 0)
	to = min(to, len(lines))

	out := append([]string(nil), lines...)
	if from >= to {
		return out, stats, nil
	}
	frozen := frozenLines(strings.Join(lines[:to], "\n"), to)
	for i := from; i < to; i++ {
		stats.Lines++
		line := out[i]
		if frozen[i] {
			stats.Frozen++
			continue
		}
		_, rest := indent.SplitIndent(line)
		next := ""
		if rest != "" {
			ws, err := eng.IndentString(contextBefore(out, i, s.ContextLines), rest)
			if err != nil {
				return nil, stats, err
			}
			next = ws + rest
		}
		if next != line {
			stats.Changed++
			out[i] = next
		}
	}
	return out, stats, nil
}

// frozenLines marks the 0-based lines whose first byte lies inside a
// multi-line token of text.
func frozenLines(text string, n int) []bool {
	frozen := make([]bool, n)
	line := 0
	for _, tok := range lexer.Tokenize(text) {
		breaks := strings.Count(tok.Text, "\n")
		if breaks == 0 {
			continue
		}
		switch tok.Kind {
		case token.TemplateLit, token.BlockComment, token.StringLit, token.Invalid:
			for l := line + 1; l <= line+breaks && l < n; l++ {
				frozen[l] = true
			}
		}
		line += breaks
	}
	return frozen
}
