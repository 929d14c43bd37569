package indent

// Tag identifies what opened a nesting frame.
type Tag uint8

const (
	// TagNone marks the bottom frame: the seed or a frame synthesized after
	// popping the last one.
	TagNone Tag = iota
	TagBrace
	TagParen
	TagBracket
	// TagIf is an if/for/while whose condition is still open.
	TagIf
	// TagIfCond is a dangling single-statement body after a closed condition
	// or after else.
	TagIfCond
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagBrace:
		return "{"
	case TagParen:
		return "("
	case TagBracket:
		return "["
	case TagIf:
		return "if"
	case TagIfCond:
		return "if_cond"
	default:
		return "?"
	}
}

// Frame is one nesting level: the whitespace a new line at this level gets.
// Real is set only when WS was copied from the start of a typed line.
type Frame struct {
	Tag  Tag
	WS   string
	Real bool
}
