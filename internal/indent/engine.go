package indent

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"jsindent/internal/lexer"
	"jsindent/internal/token"
	"jsindent/internal/trace"
)

// Engine answers indentation queries. It keeps its stack between queries
// only to reuse the allocation; no state carries over. Not safe for
// concurrent use.
type Engine struct {
	cfg    Config
	tracer trace.Tracer
	parent uint64
	stack  *Stack
}

// New validates cfg and returns an engine that uses a copy of it.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, tracer: trace.Nop}
	for _, opt := range opts {
		opt(e)
	}
	e.stack = NewStack(cfg, "")
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// ComputeIndent returns the column the line after context should start at.
// context is everything before the line, without the line break that ends
// its last line; currentLine is the line itself.
func (e *Engine) ComputeIndent(context, currentLine string) (int, error) {
	top, err := e.run(context, currentLine)
	if err != nil {
		return 0, err
	}
	return e.cfg.width(top.WS), nil
}

// IndentString is ComputeIndent returning whitespace ready to be written back:
// spaces for StyleSpaces, tabs where possible for StyleTabs, and for
// StyleInfer tabs only if the whitespace it came from had them.
func (e *Engine) IndentString(context, currentLine string) (string, error) {
	top, err := e.run(context, currentLine)
	if err != nil {
		return "", err
	}
	return e.cfg.render(e.cfg.width(top.WS), top.WS), nil
}

// ComputeIndent is a one-shot query with a fresh engine.
func ComputeIndent(context, currentLine string, cfg Config) (int, error) {
	e, err := New(cfg)
	if err != nil {
		return 0, err
	}
	return e.ComputeIndent(context, currentLine)
}

func (e *Engine) run(context, currentLine string) (Frame, error) {
	if err := e.cfg.Validate(); err != nil {
		return Frame{}, err
	}
	if e.stack == nil {
		e.stack = NewStack(e.cfg, "")
	}
	if e.tracer == nil {
		e.tracer = trace.Nop
	}
	if context == "" {
		return Frame{Tag: TagNone, Real: true}, nil
	}

	span := trace.Begin(e.tracer, trace.ScopeLine, "indent", e.parent)
	st := e.stack
	st.reset(seedIndent(context))
	if trace.Wants(e.tracer, trace.ScopeStack) {
		st.Observe(func(op string, f Frame) { e.point(span.ID(), op, f) })
		defer st.Observe(nil)
	}

	for _, tok := range lexer.Tokenize(context) {
		switch tok.Category() {
		case token.CatWhitespace:
			nl := strings.LastIndexByte(tok.Text, '\n')
			if nl < 0 {
				continue
			}
			closeRealDangling(st)
			top := st.Top()
			top.WS = lineIndent(tok.Text[nl+1:])
			top.Real = true
			e.point(span.ID(), "update", *top)

		case token.CatPunct:
			switch tok.Kind {
			case token.LBrace:
				st.Push(TagBrace)
			case token.LParen:
				st.Push(TagParen)
			case token.LBracket:
				st.Push(TagBracket)
			default:
				st.Pop()
				if tok.Kind == token.RParen && st.Top().Tag == TagIf {
					st.Top().Tag = TagIfCond
					e.point(span.ID(), "retag", *st.Top())
				}
			}

		case token.CatKeyword:
			switch tok.Kind {
			case token.KwIf, token.KwFor, token.KwWhile:
				st.Push(TagIf)
			case token.KwElse:
				st.Push(TagIfCond)
			}
		}
	}

	// в конце контекста нет перевода строки, который закрыл бы тело
	closeRealDangling(st)

	line := strings.TrimLeftFunc(currentLine, unicode.IsSpace)
	switch {
	case strings.HasPrefix(line, "}"), strings.HasPrefix(line, ")"), strings.HasPrefix(line, "]"):
		st.Pop()
	case strings.HasPrefix(line, "{") && st.Top().Tag == TagIfCond:
		st.Pop()
	}

	top := *st.Top()
	span.Field("depth", strconv.Itoa(st.Len())).
		Field("real", strconv.FormatBool(top.Real)).
		End("col=" + strconv.Itoa(e.cfg.width(top.WS)))
	return top, nil
}

// closeRealDangling closes the dangling bodies on top once a real line
// break has been seen for them.
func closeRealDangling(st *Stack) {
	if top := st.Top(); top.Tag == TagIfCond && top.Real {
		st.CloseDangling()
	}
}

// seedIndent returns the whitespace that starts the first line with code:
// the tail, after the last line break, of the leading whitespace of context.
func seedIndent(context string) string {
	i := 0
	for i < len(context) && isASCIISpace(context[i]) {
		i++
	}
	lead := context[:i]
	return lineIndent(lead[strings.LastIndexByte(lead, '\n')+1:])
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func (e *Engine) point(parent uint64, op string, f Frame) {
	if !trace.Wants(e.tracer, trace.ScopeStack) {
		return
	}
	trace.Point(e.tracer, trace.ScopeStack, op,
		fmt.Sprintf("%s ws=%d real=%t", f.Tag, e.cfg.width(f.WS), f.Real), parent)
}
