package token_test

import (
	"testing"

	"jsindent/internal/source"
	"jsindent/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestCategory(t *testing.T) {
	cases := []struct {
		kind token.Kind
		want token.Category
	}{
		{token.Space, token.CatWhitespace},
		{token.Newline, token.CatWhitespace},
		{token.LParen, token.CatPunct},
		{token.RParen, token.CatPunct},
		{token.LBrace, token.CatPunct},
		{token.RBrace, token.CatPunct},
		{token.LBracket, token.CatPunct},
		{token.RBracket, token.CatPunct},
		{token.KwIf, token.CatKeyword},
		{token.KwAwait, token.CatKeyword},
		{token.KwBreak, token.CatKeyword},
		{token.Semicolon, token.CatOther},
		{token.FatArrow, token.CatOther},
		{token.Ident, token.CatOther},
		{token.StringLit, token.CatOther},
		{token.TemplateLit, token.CatOther},
		{token.LineComment, token.CatOther},
		{token.Invalid, token.CatOther},
	}
	for _, c := range cases {
		if got := c.kind.Category(); got != c.want {
			t.Errorf("%v.Category() = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestBrackets(t *testing.T) {
	for _, k := range []token.Kind{token.LParen, token.LBrace, token.LBracket} {
		if !tok(k).IsOpen() || tok(k).IsClose() {
			t.Fatalf("%v should open", k)
		}
	}
	for _, k := range []token.Kind{token.RParen, token.RBrace, token.RBracket} {
		if !tok(k).IsClose() || tok(k).IsOpen() {
			t.Fatalf("%v should close", k)
		}
	}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.NumberLit, token.StringLit, token.TemplateLit, token.RegexLit, token.KwNull}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := token.KwIf.String(); got != "Kw:if" {
		t.Fatalf("KwIf.String() = %q", got)
	}
	if got := token.UShrAssign.String(); got != "Op:>>>=" {
		t.Fatalf("UShrAssign.String() = %q", got)
	}
	if got := token.Newline.String(); got != "Newline" {
		t.Fatalf("Newline.String() = %q", got)
	}
}
