package indent

// ShiftRight returns s with its leading whitespace moved count levels deeper.
// The width is first rounded down to a multiple of ShiftWidth. Whatever
// follows the leading whitespace is kept, so whole lines can be shifted.
// A negative count is treated as zero.
func (c Config) ShiftRight(s string, count int) string {
	ws, rest := SplitIndent(s)
	width := c.width(ws)
	width -= width % c.ShiftWidth
	width += c.ShiftWidth * max(count, 0)
	return c.render(width, ws) + rest
}

// ShiftLeft returns s with its leading whitespace moved count levels
// shallower, never below column zero. Rounding a misaligned width down to a
// multiple of ShiftWidth uses up one of the count levels.
func (c Config) ShiftLeft(s string, count int) string {
	ws, rest := SplitIndent(s)
	count = max(count, 0)
	width := c.width(ws)
	if r := width % c.ShiftWidth; r != 0 {
		width -= r
		if count > 0 {
			count--
		}
	}
	width = max(width-c.ShiftWidth*count, 0)
	return c.render(width, ws) + rest
}
