package token

import (
	"jsindent/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Category is a shorthand for t.Kind.Category().
func (t Token) Category() Category { return t.Kind.Category() }

// IsLiteral reports whether the token is a number, string, template or regex literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, TemplateLit, RegexLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsOpen reports whether the token opens a bracket pair.
func (t Token) IsOpen() bool {
	return t.Kind == LParen || t.Kind == LBrace || t.Kind == LBracket
}

// IsClose reports whether the token closes a bracket pair.
func (t Token) IsClose() bool {
	return t.Kind == RParen || t.Kind == RBrace || t.Kind == RBracket
}

// HasNewline reports whether a whitespace token spans a line break.
func (t Token) HasNewline() bool { return t.Kind == Newline }
