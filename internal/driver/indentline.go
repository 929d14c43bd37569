package driver

import (
	"errors"
	"fmt"
	"strings"

	"jsindent/internal/config"
	"jsindent/internal/indent"
)

// ErrLineOutOfRange is returned for a line number outside the buffer.
var ErrLineOutOfRange = errors.New("line number out of range")

// IndentLine returns the indentation column for the 1-based line lnum of
// lines. At most s.ContextLines lines above it are taken into account.
func IndentLine(lines []string, lnum int, s config.Settings, opts ...indent.Option) (int, error) {
	eng, ctx, line, err := lineQuery(lines, lnum, s, opts)
	if err != nil {
		return 0, err
	}
	return eng.ComputeIndent(ctx, line)
}

// IndentLineString is IndentLine returning the whitespace to put in front of
// the line, rendered per s.Indent.Style.
func IndentLineString(lines []string, lnum int, s config.Settings, opts ...indent.Option) (string, error) {
	eng, ctx, line, err := lineQuery(lines, lnum, s, opts)
	if err != nil {
		return "", err
	}
	return eng.IndentString(ctx, line)
}

func lineQuery(lines []string, lnum int, s config.Settings, opts []indent.Option) (*indent.Engine, string, string, error) {
	if lnum < 1 || lnum > len(lines) {
		return nil, "", "", fmt.Errorf("%w: %d (buffer has %d lines)", ErrLineOutOfRange, lnum, len(lines))
	}
	eng, err := indent.New(s.Indent, opts...)
	if err != nil {
		return nil, "", "", err
	}
	return eng, contextBefore(lines, lnum-1, s.ContextLines), lines[lnum-1], nil
}

// contextBefore joins the lines above idx, at most window of them (0 = all).
// Blank lines right above idx are left out: an empty line would otherwise
// become the real indentation of the enclosing block.
func contextBefore(lines []string, idx, window int) string {
	lo := 0
	if window > 0 && idx > window {
		lo = idx - window
	}
	hi := idx
	for hi > lo && strings.TrimSpace(lines[hi-1]) == "" {
		hi--
	}
	return strings.Join(lines[lo:hi], "\n")
}
