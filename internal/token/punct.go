package token

var punctText = map[Kind]string{
	LParen:           "(",
	RParen:           ")",
	LBrace:           "{",
	RBrace:           "}",
	LBracket:         "[",
	RBracket:         "]",
	Semicolon:        ";",
	Comma:            ",",
	Dot:              ".",
	DotDotDot:        "...",
	Question:         "?",
	QuestionDot:      "?.",
	QuestionQuestion: "??",
	Colon:            ":",
	FatArrow:         "=>",
	Assign:           "=",
	EqEq:             "==",
	EqEqEq:           "===",
	Bang:             "!",
	BangEq:           "!=",
	BangEqEq:         "!==",
	Lt:               "<",
	LtEq:             "<=",
	Gt:               ">",
	GtEq:             ">=",
	Plus:             "+",
	PlusPlus:         "++",
	Minus:            "-",
	MinusMinus:       "--",
	Star:             "*",
	StarStar:         "**",
	Slash:            "/",
	Percent:          "%",
	Shl:              "<<",
	Shr:              ">>",
	UShr:             ">>>",
	Amp:              "&",
	Pipe:             "|",
	Caret:            "^",
	Tilde:            "~",
	AndAnd:           "&&",
	OrOr:             "||",
	PlusAssign:       "+=",
	MinusAssign:      "-=",
	StarAssign:       "*=",
	StarStarAssign:   "**=",
	SlashAssign:      "/=",
	PercentAssign:    "%=",
	ShlAssign:        "<<=",
	ShrAssign:        ">>=",
	UShrAssign:       ">>>=",
	AmpAssign:        "&=",
	PipeAssign:       "|=",
	CaretAssign:      "^=",
	AndAndAssign:     "&&=",
	OrOrAssign:       "||=",
	QuestionQAssign:  "??=",
	At:               "@",
}

var puncts = func() map[string]Kind {
	m := make(map[string]Kind, len(punctText))
	for k, s := range punctText {
		m[s] = k
	}
	return m
}()

// MaxPunctLen is the length of the longest punctuator (">>>=").
const MaxPunctLen = 4

// LookupPunct returns the punctuator kind for an exact lexeme.
func LookupPunct(s string) (Kind, bool) {
	k, ok := puncts[s]
	return k, ok
}

// Text returns the fixed spelling of a keyword or punctuator kind,
// or "" for kinds whose text varies.
func (k Kind) Text() string {
	if s, ok := punctText[k]; ok {
		return s
	}
	return keywordText[k]
}
