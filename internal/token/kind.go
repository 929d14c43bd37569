package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Space is a run of whitespace without line breaks.
	Space
	// Newline is a run of whitespace containing at least one '\n'.
	Newline
	// LineComment is // up to (not including) the line break.
	LineComment
	// BlockComment is /* ... */.
	BlockComment
	// Hashbang is #! on the very first line.
	Hashbang

	// Ident represents an identifier token.
	Ident
	// PrivateName is #name inside a class body.
	PrivateName
	// NumberLit is any numeric literal, BigInt included.
	NumberLit
	// StringLit is a single or double quoted string.
	StringLit
	// TemplateLit is a whole `...` literal with substitutions.
	TemplateLit
	// RegexLit is /body/flags.
	RegexLit

	keywordBeg
	KwBreak      // break
	KwCase       // case
	KwCatch      // catch
	KwClass      // class
	KwConst      // const
	KwContinue   // continue
	KwDebugger   // debugger
	KwDefault    // default
	KwDelete     // delete
	KwDo         // do
	KwElse       // else
	KwExport     // export
	KwExtends    // extends
	KwFalse      // false
	KwFinally    // finally
	KwFor        // for
	KwFunction   // function
	KwIf         // if
	KwImport     // import
	KwIn         // in
	KwInstanceof // instanceof
	KwNew        // new
	KwNull       // null
	KwReturn     // return
	KwSuper      // super
	KwSwitch     // switch
	KwThis       // this
	KwThrow      // throw
	KwTrue       // true
	KwTry        // try
	KwTypeof     // typeof
	KwVar        // var
	KwVoid       // void
	KwWhile      // while
	KwWith       // with
	KwLet        // let
	KwYield      // yield
	KwAwait      // await
	keywordEnd

	punctBeg
	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]

	Semicolon        // ;
	Comma            // ,
	Dot              // .
	DotDotDot        // ...
	Question         // ?
	QuestionDot      // ?.
	QuestionQuestion // ??
	Colon            // :
	FatArrow         // =>

	Assign           // =
	EqEq             // ==
	EqEqEq           // ===
	Bang             // !
	BangEq           // !=
	BangEqEq         // !==
	Lt               // <
	LtEq             // <=
	Gt               // >
	GtEq             // >=
	Plus             // +
	PlusPlus         // ++
	Minus            // -
	MinusMinus       // --
	Star             // *
	StarStar         // **
	Slash            // /
	Percent          // %
	Shl              // <<
	Shr              // >>
	UShr             // >>>
	Amp              // &
	Pipe             // |
	Caret            // ^
	Tilde            // ~
	AndAnd           // &&
	OrOr             // ||
	PlusAssign       // +=
	MinusAssign      // -=
	StarAssign       // *=
	StarStarAssign   // **=
	SlashAssign      // /=
	PercentAssign    // %=
	ShlAssign        // <<=
	ShrAssign        // >>=
	UShrAssign       // >>>=
	AmpAssign        // &=
	PipeAssign       // |=
	CaretAssign      // ^=
	AndAndAssign     // &&=
	OrOrAssign       // ||=
	QuestionQAssign  // ??=
	At               // @
	punctEnd
)

// Category is the coarse classification the indentation engine consumes.
type Category uint8

const (
	// CatOther covers identifiers, literals, comments and operators.
	CatOther Category = iota
	// CatWhitespace covers Space and Newline.
	CatWhitespace
	// CatPunct covers the six bracket kinds only.
	CatPunct
	// CatKeyword covers reserved words.
	CatKeyword
)

// Category returns the coarse category of k.
func (k Kind) Category() Category {
	switch {
	case k == Space || k == Newline:
		return CatWhitespace
	case k >= LParen && k <= RBracket:
		return CatPunct
	case k.IsKeyword():
		return CatKeyword
	default:
		return CatOther
	}
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k > keywordBeg && k < keywordEnd }

// IsPunctOrOp reports whether k is a bracket, punctuator or operator.
func (k Kind) IsPunctOrOp() bool { return k > punctBeg && k < punctEnd }

// IsTrivia reports whether k carries no syntax (whitespace or comment).
func (k Kind) IsTrivia() bool {
	switch k {
	case Space, Newline, LineComment, BlockComment, Hashbang:
		return true
	default:
		return false
	}
}

var kindNames = map[Kind]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Space:        "Space",
	Newline:      "Newline",
	LineComment:  "LineComment",
	BlockComment: "BlockComment",
	Hashbang:     "Hashbang",
	Ident:        "Ident",
	PrivateName:  "PrivateName",
	NumberLit:    "NumberLit",
	StringLit:    "StringLit",
	TemplateLit:  "TemplateLit",
	RegexLit:     "RegexLit",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k.IsKeyword() {
		return "Kw:" + keywordText[k]
	}
	if k.IsPunctOrOp() {
		return "Op:" + punctText[k]
	}
	return "Kind(?)"
}

func (c Category) String() string {
	switch c {
	case CatWhitespace:
		return "whitespace"
	case CatPunct:
		return "punct"
	case CatKeyword:
		return "keyword"
	default:
		return "other"
	}
}
