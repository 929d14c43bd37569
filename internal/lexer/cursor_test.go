package lexer

import (
	"testing"

	"jsindent/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(content))
	return fs.Get(id)
}

func TestCursorSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Error("Expected EOF after reading all bytes")
	}
	if cursor.Bump() != 0 || cursor.Peek() != 0 {
		t.Error("Expected zero bytes past EOF")
	}
}

func TestCursorMarkResetSpan(t *testing.T) {
	cursor := NewCursor(createFile("hello"))
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("SpanFrom = %v, want 0..2", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 0 {
		t.Errorf("Reset: Off = %d", cursor.Off)
	}
	if cursor.PeekAt(4) != 'o' || cursor.PeekAt(5) != 0 {
		t.Error("PeekAt bounds")
	}
	if !cursor.Eat('h') || cursor.Eat('h') {
		t.Error("Eat")
	}
}
