package diag

import (
	"fmt"
	"strings"

	"jsindent/internal/source"
)

// FormatShort renders diagnostics one per line as
// "path:line:col: SEVERITY CODE: message", in the bag's current order.
// Notes follow their diagnostic indented by two spaces when includeNotes is set.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := range diags {
		d := &diags[i]
		writeEntry(&sb, fs, d.Primary, "", d.Severity.String()+" "+d.Code.ID(), d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			writeEntry(&sb, fs, n.Span, "  ", "note", n.Msg)
		}
	}
	return sb.String()
}

func writeEntry(sb *strings.Builder, fs *source.FileSet, sp source.Span, indent, label, msg string) {
	path := fs.Get(sp.File).Path
	start, _ := fs.Resolve(sp)
	fmt.Fprintf(sb, "%s%s:%d:%d: %s: %s\n", indent, path, start.Line, start.Col, label, msg)
}
