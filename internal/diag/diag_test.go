package diag

import (
	"testing"

	"jsindent/internal/source"
)

func TestBagLimitAndSort(t *testing.T) {
	b := NewBag(2)
	if !b.Add(New(SevWarning, LexUnknownChar, source.Span{Start: 5, End: 6}, "b")) {
		t.Fatal("first Add rejected")
	}
	if !b.Add(New(SevError, LexUnterminatedString, source.Span{Start: 1, End: 3}, "a")) {
		t.Fatal("second Add rejected")
	}
	if b.Add(New(SevInfo, LexInfo, source.Span{}, "c")) {
		t.Fatal("Add beyond limit accepted")
	}
	b.Sort()
	if got := b.Items()[0].Message; got != "a" {
		t.Fatalf("first after Sort = %q, want a", got)
	}
	if b.Items()[1].Severity != SevWarning {
		t.Fatalf("second after Sort = %v, want warning", b.Items()[1].Severity)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 1, End: 2}
	r.Report(LexUnknownChar, SevError, sp, "x", nil)
	r.Report(LexUnknownChar, SevError, sp, "x", nil)
	r.Report(LexUnknownChar, SevError, sp, "y", nil)
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.js", []byte("let s = 'x\nfoo"))
	d := New(SevError, LexUnterminatedString, source.Span{File: id, Start: 8, End: 10}, "unterminated string literal").
		WithNote(source.Span{File: id, Start: 11, End: 11}, "line ends here")

	got := FormatShort([]Diagnostic{d}, fs, true)
	want := "a.js:1:9: ERROR LEX1002: unterminated string literal\n" +
		"  a.js:2:1: note: line ends here\n"
	if got != want {
		t.Fatalf("FormatShort:\n got %q\nwant %q", got, want)
	}
	if FormatShort(nil, fs, true) != "" {
		t.Fatal("empty input must render empty")
	}
}

func TestCodeString(t *testing.T) {
	if got := LexUnterminatedTemplate.ID(); got != "LEX1005" {
		t.Fatalf("ID = %q", got)
	}
	if got := CfgInvalidValue.ID(); got != "CFG5002" {
		t.Fatalf("ID = %q", got)
	}
	if got := Code(4242).Title(); got != "unknown error" {
		t.Fatalf("Title = %q", got)
	}
}
