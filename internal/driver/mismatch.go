package driver

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"jsindent/internal/config"
	"jsindent/internal/diag"
	"jsindent/internal/indent"
	"jsindent/internal/source"
)

// ReportMismatches compares file with its reindented text and reports an
// IndentMismatch warning for every line whose leading whitespace differs.
// The span covers the current leading whitespace of the line.
func ReportMismatches(file *source.File, reindented []byte, s config.Settings, r diag.Reporter) int {
	if file == nil || r == nil {
		return 0
	}
	before := file.Lines()
	after := strings.Split(strings.TrimSuffix(string(reindented), "\n"), "\n")
	if len(before) != len(after) {
		return 0
	}

	reported := 0
	for i := range before {
		if before[i] == after[i] {
			continue
		}
		haveWS, _ := indent.SplitIndent(before[i])
		wantWS, _ := indent.SplitIndent(after[i])
		have, err := s.Indent.Width(haveWS)
		if err != nil {
			continue
		}
		want, err := s.Indent.Width(wantWS)
		if err != nil {
			continue
		}

		start := lineStart(file, i)
		wsLen, err := safecast.Conv[uint32](len(haveWS))
		if err != nil {
			continue
		}
		sp := source.Span{File: file.ID, Start: start, End: start + wsLen}
		d := diag.New(diag.SevWarning, diag.IndentMismatch, sp,
			fmt.Sprintf("indented to column %d, expected %d", have, want))
		if j := prevNonBlank(before, i); j >= 0 {
			ws, _ := indent.SplitIndent(before[j])
			if off, err := safecast.Conv[uint32](len(ws)); err == nil {
				at := lineStart(file, j) + off
				d = d.WithNote(source.Span{File: file.ID, Start: at, End: at},
					fmt.Sprintf("expected column follows line %d", j+1))
			}
		}
		r.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
		reported++
	}
	return reported
}

func prevNonBlank(lines []string, idx int) int {
	for j := idx - 1; j >= 0; j-- {
		if strings.TrimSpace(lines[j]) != "" {
			return j
		}
	}
	return -1
}

// lineStart returns the byte offset of the 0-based line idx.
func lineStart(file *source.File, idx int) uint32 {
	if idx == 0 || idx > len(file.LineIdx) {
		return 0
	}
	return file.LineIdx[idx-1] + 1
}
