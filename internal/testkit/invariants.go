package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"jsindent/internal/source"
	"jsindent/internal/token"
)

// CheckTokenInvariants runs the token-stream invariants on a lexed file:
// 1) every token is non-empty and belongs to sf
// 2) tokens are contiguous: each starts where the previous ended
// 3) Text equals the source bytes under Span
// 4) the stream covers the whole file
// 5) whitespace tokens are Newline iff they contain '\n'
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var off uint32
	for i, tok := range toks {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d (%v): empty span %v", i, tok.Kind, sp)
		}
		if sp.Start != off {
			return fmt.Errorf("token %d (%v): gap or overlap at %d, previous ended at %d", i, tok.Kind, sp.Start, off)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d (%v): span end beyond content: %d > %d", i, tok.Kind, sp.End, lenContent)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d (%v): text %q does not match source %q", i, tok.Kind, tok.Text, got)
		}
		if tok.Kind.Category() == token.CatWhitespace {
			hasNL := false
			for j := range len(tok.Text) {
				if tok.Text[j] == '\n' {
					hasNL = true
					break
				}
			}
			if hasNL != (tok.Kind == token.Newline) {
				return fmt.Errorf("token %d: whitespace %q has kind %v", i, tok.Text, tok.Kind)
			}
		}
		off = sp.End
	}
	if off != lenContent {
		return fmt.Errorf("stream ends at %d, file has %d bytes", off, lenContent)
	}
	return nil
}
