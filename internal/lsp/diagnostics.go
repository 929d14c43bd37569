package lsp

import (
	"jsindent/internal/diag"
	"jsindent/internal/driver"
)

// maxDocDiagnostics caps what one document publishes.
const maxDocDiagnostics = 100

// publishDiagnostics sends the lexer diagnostics of an open document:
// unterminated strings, templates and comments are what throws the
// indentation of every following line off.
func (s *Server) publishDiagnostics(uri string) error {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	var text string
	var ver int
	if ok {
		text, ver = doc.text, doc.version
	}
	s.mu.Unlock()
	if !ok {
		return s.clearDiagnostics(uri)
	}

	name := uriToPath(uri)
	if name == "" {
		name = uri
	}
	res := driver.TokenizeText(name, text, maxDocDiagnostics)
	items := res.Bag.Items()
	out := make([]lspDiagnostic, 0, len(items))
	for _, d := range items {
		out = append(out, lspDiagnostic{
			Range:    rangeForSpan(res.File, d.Primary),
			Severity: lspSeverity(d.Severity),
			Code:     d.Code.ID(),
			Source:   "jsindent",
			Message:  d.Message,
		})
	}
	s.tracef("publishDiagnostics: uri=%s count=%d", uri, len(out))
	return s.sendNotification("textDocument/publishDiagnostics", publishDiagnosticsParams{
		URI:         uri,
		Version:     ver,
		Diagnostics: out,
	})
}

func (s *Server) clearDiagnostics(uri string) error {
	return s.sendNotification("textDocument/publishDiagnostics", publishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []lspDiagnostic{},
	})
}

func lspSeverity(sev diag.Severity) int {
	switch sev {
	case diag.SevError:
		return 1
	case diag.SevWarning:
		return 2
	}
	return 3
}
