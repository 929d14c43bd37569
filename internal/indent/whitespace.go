package indent

import (
	"fmt"
	"strings"
)

// Expand replaces each tab with spaces up to the next multiple of TabStop.
func (c Config) Expand(ws string) (string, error) {
	if strings.Trim(ws, " \t") != "" {
		return "", fmt.Errorf("expand %q: %w", ws, ErrNotWhitespace)
	}
	if !strings.Contains(ws, "\t") {
		return ws, nil
	}
	var sb strings.Builder
	col := 0
	for i := range len(ws) {
		if ws[i] == '\t' {
			n := c.TabStop - col%c.TabStop
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteByte(' ')
		col++
	}
	return sb.String(), nil
}

// Unexpand replaces each run of exactly TabStop spaces with one tab,
// scanning left to right. Leftover spaces stay.
func (c Config) Unexpand(ws string) (string, error) {
	if strings.Trim(ws, " ") != "" {
		return "", fmt.Errorf("unexpand %q: %w", ws, ErrNotSpaces)
	}
	return strings.ReplaceAll(ws, strings.Repeat(" ", c.TabStop), "\t"), nil
}

// Width returns the display width of ws after tab expansion.
func (c Config) Width(ws string) (int, error) {
	if strings.Trim(ws, " \t") != "" {
		return 0, fmt.Errorf("width of %q: %w", ws, ErrNotWhitespace)
	}
	return c.width(ws), nil
}

// width assumes ws holds only spaces and tabs.
func (c Config) width(ws string) int {
	col := 0
	for i := range len(ws) {
		if ws[i] == '\t' {
			col += c.TabStop - col%c.TabStop
		} else {
			col++
		}
	}
	return col
}

// render turns a width into whitespace. Tabs are used for StyleTabs, or for
// StyleInfer when the whitespace it was derived from had a tab.
func (c Config) render(width int, from string) string {
	ws := strings.Repeat(" ", width)
	if c.Style == StyleTabs || (c.Style == StyleInfer && strings.Contains(from, "\t")) {
		return strings.ReplaceAll(ws, strings.Repeat(" ", c.TabStop), "\t")
	}
	return ws
}

// SplitIndent splits s into its leading run of spaces and tabs and the rest.
func SplitIndent(s string) (ws, rest string) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i], s[i:]
}

// lineIndent keeps the trailing run of spaces and tabs of text, the part of a
// whitespace token after its last line break that can start a line. Stray
// '\r', '\v' and '\f' before it are dropped.
func lineIndent(text string) string {
	i := len(text)
	for i > 0 && (text[i-1] == ' ' || text[i-1] == '\t') {
		i--
	}
	return text[i:]
}
