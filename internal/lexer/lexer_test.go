package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"jsindent/internal/diag"
	"jsindent/internal/lexer"
	"jsindent/internal/source"
	"jsindent/internal/testkit"
	"jsindent/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

// lexAll лексит строку и сразу проверяет инварианты потока
func lexAll(t *testing.T, input string) ([]token.Token, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.js", []byte(input)))
	reporter := &testReporter{}
	toks := lexer.New(file, lexer.Options{Reporter: reporter}).All()
	if err := testkit.CheckTokenInvariants(toks, file); err != nil {
		t.Fatalf("invariants for %q: %v\ntokens: %s", input, err, tokensToString(toks))
	}
	return toks, reporter
}

// significant убирает пробелы и комментарии
func significant(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, tok := range toks {
		if !tok.Kind.IsTrivia() {
			out = append(out, tok)
		}
	}
	return out
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	toks, reporter := lexAll(t, input)
	if len(toks) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %s\nDiagnostics: %v",
			len(expected), len(toks), input, tokensToString(toks), reporter.codes())
	}
	for i, tok := range toks {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, kind token.Kind) {
	t.Helper()
	toks, _ := lexAll(t, input)
	if len(toks) != 1 {
		t.Fatalf("%q: expected one token, got %s", input, tokensToString(toks))
	}
	if toks[0].Kind != kind {
		t.Errorf("%q: expected kind %v, got %v", input, kind, toks[0].Kind)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestWhitespaceRuns(t *testing.T) {
	expectTokens(t, "a \t b", []token.Kind{token.Ident, token.Space, token.Ident})
	expectTokens(t, "a\n\n    b", []token.Kind{token.Ident, token.Newline, token.Ident})
	expectTokens(t, "a \n\t\r\n  b", []token.Kind{token.Ident, token.Newline, token.Ident})
	expectTokens(t, "a b", []token.Kind{token.Ident, token.Space, token.Ident})

	toks, _ := lexAll(t, "x\n  \t y")
	if toks[1].Text != "\n  \t " {
		t.Errorf("newline run text = %q", toks[1].Text)
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"foo", token.Ident},
		{"$el", token.Ident},
		{"_private", token.Ident},
		{"x123", token.Ident},
		{"имя", token.Ident},
		{"if", token.KwIf},
		{"else", token.KwElse},
		{"for", token.KwFor},
		{"while", token.KwWhile},
		{"If", token.Ident},
		{"iffy", token.Ident},
		{"forEach", token.Ident},
		{"elsewhere", token.Ident},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind)
		})
	}
}

func TestNumbers(t *testing.T) {
	for _, in := range []string{"0", "42", "1_000", "3.14", ".5", "1.", "1e10", "2.5E-3", "0xFF", "0b1010", "0o777", "10n", "0x1fn"} {
		t.Run(in, func(t *testing.T) {
			expectSingleToken(t, in, token.NumberLit)
		})
	}
}

func TestBadNumbers(t *testing.T) {
	for _, in := range []string{"1e", "0x", "3in"} {
		t.Run(in, func(t *testing.T) {
			toks, rep := lexAll(t, in)
			if toks[0].Kind != token.Invalid {
				t.Fatalf("expected Invalid, got %s", tokensToString(toks))
			}
			if len(rep.diagnostics) == 0 || rep.diagnostics[0].Code != diag.LexBadNumber {
				t.Fatalf("expected LexBadNumber, got %v", rep.codes())
			}
		})
	}
}

func TestPunctuatorsLongestMatch(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{">>>=", token.UShrAssign},
		{">>>", token.UShr},
		{"===", token.EqEqEq},
		{"!==", token.BangEqEq},
		{"**=", token.StarStarAssign},
		{"...", token.DotDotDot},
		{"=>", token.FatArrow},
		{"??=", token.QuestionQAssign},
		{"?.", token.QuestionDot},
		{"{", token.LBrace},
		{"}", token.RBrace},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind)
		})
	}
}

func TestOptionalChainVsTernary(t *testing.T) {
	toks, _ := lexAll(t, "a?.5:1")
	sig := significant(toks)
	want := []token.Kind{token.Ident, token.Question, token.NumberLit, token.Colon, token.NumberLit}
	if len(sig) != len(want) {
		t.Fatalf("got %s", tokensToString(sig))
	}
	for i := range want {
		if sig[i].Kind != want[i] {
			t.Errorf("token %d = %v, want %v", i, sig[i].Kind, want[i])
		}
	}
}

func TestStrings(t *testing.T) {
	expectSingleToken(t, `"a{b"`, token.StringLit)
	expectSingleToken(t, `'it\'s {'`, token.StringLit)
	expectSingleToken(t, "'line\\\ncontinued'", token.StringLit)
}

func TestUnterminatedStringStopsAtNewline(t *testing.T) {
	toks, rep := lexAll(t, "x = 'abc {\nif")
	want := []token.Kind{token.Ident, token.Space, token.Assign, token.Space, token.Invalid, token.Newline, token.KwIf}
	if len(toks) != len(want) {
		t.Fatalf("got %s", tokensToString(toks))
	}
	for i := range want {
		if toks[i].Kind != want[i] {
			t.Errorf("token %d = %v, want %v", i, toks[i].Kind, want[i])
		}
	}
	if toks[4].Text != "'abc {" {
		t.Errorf("string token text = %q", toks[4].Text)
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("diagnostics = %v", rep.codes())
	}
}

func TestComments(t *testing.T) {
	expectTokens(t, "a // { ( [\nb", []token.Kind{token.Ident, token.Space, token.LineComment, token.Newline, token.Ident})
	expectTokens(t, "a /* { \n } */ b", []token.Kind{token.Ident, token.Space, token.BlockComment, token.Space, token.Ident})

	toks, rep := lexAll(t, "a /* {")
	if toks[len(toks)-1].Kind != token.BlockComment {
		t.Fatalf("got %s", tokensToString(toks))
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexUnterminatedBlockComment {
		t.Errorf("diagnostics = %v", rep.codes())
	}
}

func TestHashbangAndPrivateName(t *testing.T) {
	expectTokens(t, "#!/usr/bin/env node\nx", []token.Kind{token.Hashbang, token.Newline, token.Ident})
	expectTokens(t, "this.#count", []token.Kind{token.KwThis, token.Dot, token.PrivateName})

	toks, rep := lexAll(t, "a # b")
	if toks[2].Kind != token.Invalid || len(rep.diagnostics) != 1 {
		t.Fatalf("got %s, diagnostics %v", tokensToString(toks), rep.codes())
	}
}

func TestTemplateLiterals(t *testing.T) {
	expectSingleToken(t, "`plain {`", token.TemplateLit)
	expectSingleToken(t, "`a ${b} c`", token.TemplateLit)
	expectSingleToken(t, "`a ${ {x: 1}.x } c`", token.TemplateLit)
	expectSingleToken(t, "`a ${ '}' } c`", token.TemplateLit)
	expectSingleToken(t, "`outer ${ `inner ${x}` } done`", token.TemplateLit)
	expectSingleToken(t, "`multi\nline {\n`", token.TemplateLit)

	toks, rep := lexAll(t, "`never ${ closed")
	if len(toks) != 1 || toks[0].Kind != token.TemplateLit {
		t.Fatalf("got %s", tokensToString(toks))
	}
	if len(rep.diagnostics) == 0 || rep.diagnostics[len(rep.diagnostics)-1].Code != diag.LexUnterminatedTemplate {
		t.Errorf("diagnostics = %v", rep.codes())
	}
}

func TestRegexVersusDivision(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Kind
	}{
		{"x = /{/g", []token.Kind{token.Ident, token.Assign, token.RegexLit}},
		{"a / b / c", []token.Kind{token.Ident, token.Slash, token.Ident, token.Slash, token.Ident}},
		{"f(/[/]}/)", []token.Kind{token.Ident, token.LParen, token.RegexLit, token.RParen}},
		{"return /\\//.test(s)", []token.Kind{token.KwReturn, token.RegexLit, token.Dot, token.Ident, token.LParen, token.Ident, token.RParen}},
		{"(a) / 2", []token.Kind{token.LParen, token.Ident, token.RParen, token.Slash, token.NumberLit}},
		{"x = a\n/ b", []token.Kind{token.Ident, token.Assign, token.Ident, token.Slash, token.Ident}},
		{"x = / {\n}", []token.Kind{token.Ident, token.Assign, token.Slash, token.LBrace, token.RBrace}},
		{"/=/", []token.Kind{token.RegexLit}},
		{"a /= 2", []token.Kind{token.Ident, token.SlashAssign, token.NumberLit}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, _ := lexAll(t, tt.input)
			sig := significant(toks)
			if len(sig) != len(tt.want) {
				t.Fatalf("got %s", tokensToString(sig))
			}
			for i := range tt.want {
				if sig[i].Kind != tt.want[i] {
					t.Errorf("token %d = %v(%q), want %v", i, sig[i].Kind, sig[i].Text, tt.want[i])
				}
			}
		})
	}
}

func TestUnknownCharacter(t *testing.T) {
	toks, rep := lexAll(t, "a § b")
	if toks[2].Kind != token.Invalid || toks[2].Text != "§" {
		t.Fatalf("got %s", tokensToString(toks))
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("diagnostics = %v", rep.codes())
	}
}

func TestTokenizeReconstructsInput(t *testing.T) {
	inputs := []string{
		"",
		"function f(a, b) {\n  if (a) {\n    return `${a}`;\n  }\n  else b();\n}\n",
		"const re = /[\\]}]+/u; // }\n",
		"x = 'unterminated {\ny = \"ok\"",
		"\t\tfoo(/* ( */ 1)\r\n",
		"`${`${`deep`}`}`",
	}
	for _, in := range inputs {
		var sb strings.Builder
		for _, tok := range lexer.Tokenize(in) {
			sb.WriteString(tok.Text)
		}
		if sb.String() != in {
			t.Errorf("reconstructed %q, want %q", sb.String(), in)
		}
	}
}

func TestNextAfterEOF(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual("e.js", []byte("a"))), lexer.Options{})
	_ = lx.Next()
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
	}
}
