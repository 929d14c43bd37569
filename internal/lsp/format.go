package lsp

import (
	"encoding/json"

	"jsindent/internal/driver"
	"jsindent/internal/indent"
)

func (s *Server) handleOnTypeFormatting(msg *rpcMessage) error {
	var params documentOnTypeFormattingParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	return s.sendResponse(msg.ID, s.onTypeEdits(params))
}

// onTypeEdits reindents the line the cursor is on. Unlike whole-buffer
// formatting, a blank line gets its indentation: after a line break that
// is where the user is about to type.
func (s *Server) onTypeEdits(params documentOnTypeFormattingParams) []textEdit {
	edits := []textEdit{}
	text, ok := s.snapshot(params.TextDocument.URI)
	if !ok {
		s.logf("onTypeFormatting: document not open: %s", params.TextDocument.URI)
		return edits
	}
	settings, err := s.settingsFor(params.TextDocument.URI, params.Options)
	if err != nil {
		s.logf("onTypeFormatting: %v", err)
		return edits
	}
	lines := splitLines(text)
	lnum := params.Position.Line
	if lnum < 0 || lnum >= len(lines) {
		return edits
	}
	ws, err := driver.IndentLineString(lines, lnum+1, settings, indent.WithTracer(s.tracer))
	if err != nil {
		s.logf("onTypeFormatting: %v", err)
		return edits
	}
	if edit, changed := leadingEdit(lnum, lines[lnum], ws); changed {
		edits = append(edits, edit)
	}
	s.tracef("onTypeFormatting: ch=%q line=%d indent=%q", params.Ch, lnum, ws)
	return edits
}

func (s *Server) handleRangeFormatting(msg *rpcMessage) error {
	var params documentRangeFormattingParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	from, to := params.Range.Start.Line, params.Range.End.Line+1
	// a selection that ends at column 0 does not include that line
	if params.Range.End.Character == 0 && params.Range.End.Line > params.Range.Start.Line {
		to--
	}
	return s.sendResponse(msg.ID, s.reindentEdits(params.TextDocument.URI, params.Options, from, to))
}

func (s *Server) handleFormatting(msg *rpcMessage) error {
	var params documentFormattingParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	return s.sendResponse(msg.ID, s.reindentEdits(params.TextDocument.URI, params.Options, 0, -1))
}

// reindentEdits reindents lines [from, to) of a document; to < 0 means to
// the end.
func (s *Server) reindentEdits(uri string, opts *formattingOptions, from, to int) []textEdit {
	edits := []textEdit{}
	text, ok := s.snapshot(uri)
	if !ok {
		s.logf("formatting: document not open: %s", uri)
		return edits
	}
	settings, err := s.settingsFor(uri, opts)
	if err != nil {
		s.logf("formatting: %v", err)
		return edits
	}
	lines := splitLines(text)
	if to < 0 || to > len(lines) {
		to = len(lines)
	}
	out, stats, err := driver.ReindentLines(lines, from, to, settings, indent.WithTracer(s.tracer))
	if err != nil {
		s.logf("formatting: %v", err)
		return edits
	}
	for i := max(from, 0); i < to; i++ {
		if out[i] == lines[i] {
			continue
		}
		ws, _ := indent.SplitIndent(out[i])
		if edit, changed := leadingEdit(i, lines[i], ws); changed {
			edits = append(edits, edit)
		}
	}
	s.tracef("formatting: uri=%s lines=%d changed=%d frozen=%d", uri, stats.Lines, stats.Changed, stats.Frozen)
	return edits
}

func (s *Server) handleIndent(msg *rpcMessage) error {
	var params textDocumentPositionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	text, ok := s.snapshot(params.TextDocument.URI)
	if !ok {
		return s.sendError(msg.ID, codeInvalidParams, "document not open")
	}
	settings, err := s.settingsFor(params.TextDocument.URI, nil)
	if err != nil {
		return s.sendError(msg.ID, codeInvalidParams, err.Error())
	}
	lines := splitLines(text)
	lnum := params.Position.Line + 1
	ws, err := driver.IndentLineString(lines, lnum, settings, indent.WithTracer(s.tracer))
	if err != nil {
		return s.sendError(msg.ID, codeInvalidParams, err.Error())
	}
	col, err := settings.Indent.Width(ws)
	if err != nil {
		return s.sendError(msg.ID, codeInvalidParams, err.Error())
	}
	return s.sendResponse(msg.ID, indentResult{Column: col, Indent: ws})
}

// leadingEdit replaces the leading whitespace of line lnum with ws.
func leadingEdit(lnum int, line, ws string) (textEdit, bool) {
	cur, _ := indent.SplitIndent(line)
	if cur == ws {
		return textEdit{}, false
	}
	return textEdit{
		Range: lspRange{
			Start: position{Line: lnum, Character: 0},
			End:   position{Line: lnum, Character: utf16Width(cur)},
		},
		NewText: ws,
	}, true
}
