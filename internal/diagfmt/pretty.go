package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsindent/internal/diag"
	"jsindent/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, note, gutter, caret func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		if !enabled {
			return fmt.Sprint
		}
		c := color.New(attrs...)
		c.EnableColor()
		return c.Sprint
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan),
		note:   mk(color.FgBlue),
		gutter: mk(color.FgHiBlack),
		caret:  mk(color.FgGreen, color.Bold),
	}
}

func (p palette) severity(s diag.Severity) func(a ...interface{}) string {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil || fs == nil {
		return nil
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)
		sev := p.severity(d.Severity)
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
			displayPath(file.Path, opts), start.Line, start.Col,
			sev(d.Severity.String()+" "+d.Code.ID()), d.Message); err != nil {
			return err
		}
		if err := writeSnippet(w, file, start, end, opts.Context, p); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			ns, _ := fs.Resolve(n.Span)
			if _, err := fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				p.note("note"), displayPath(nf.Path, opts), ns.Line, ns.Col, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSnippet(w io.Writer, file *source.File, start, end source.LineCol, context int, p palette) error {
	line := int(start.Line)
	count := file.LineCount()
	if line < 1 || line > count {
		return nil
	}
	context = max(context, 0)
	first := max(1, line-context)
	last := min(count, line+context)
	gw := len(strconv.Itoa(last))

	for n := first; n <= last; n++ {
		text := file.GetLine(n)
		if _, err := fmt.Fprintf(w, "%s %s\n",
			p.gutter(fmt.Sprintf("%*d |", gw, n)), expandTabs(text)); err != nil {
			return err
		}
		if n != line {
			continue
		}
		col := min(int(start.Col)-1, len(text))
		stop := len(text)
		if end.Line == start.Line {
			stop = min(max(int(end.Col)-1, col), len(text))
		}
		pad := runewidth.StringWidth(expandTabs(text[:col]))
		width := max(runewidth.StringWidth(expandTabs(text[col:stop])), 1)
		marker := "^" + strings.Repeat("~", width-1)
		if _, err := fmt.Fprintf(w, "%s %s%s\n",
			p.gutter(strings.Repeat(" ", gw)+" |"), strings.Repeat(" ", pad), p.caret(marker)); err != nil {
			return err
		}
	}
	return nil
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func displayPath(path string, opts PrettyOpts) string {
	switch opts.PathMode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		base := opts.BaseDir
		if base == "" {
			base = "."
		}
		absBase, err1 := filepath.Abs(base)
		absPath, err2 := filepath.Abs(path)
		if err1 == nil && err2 == nil {
			if rel, err := filepath.Rel(absBase, absPath); err == nil {
				return filepath.ToSlash(rel)
			}
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}
