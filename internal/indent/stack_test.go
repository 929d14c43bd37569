package indent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushDerivesFromTop(t *testing.T) {
	s := NewStack(DefaultConfig(), "    ")

	s.Push(TagBrace)
	assert.Equal(t, Frame{Tag: TagBrace, WS: "        ", Real: false}, *s.Top())

	// guessed top: the guess is copied, not compounded
	s.Push(TagParen)
	assert.Equal(t, Frame{Tag: TagParen, WS: "        ", Real: false}, *s.Top())

	s.PushWS(TagBracket, "  ")
	assert.Equal(t, Frame{Tag: TagBracket, WS: "  ", Real: true}, *s.Top())
	assert.Equal(t, 4, s.Len())
}

func TestStackPopSynthesizesBottom(t *testing.T) {
	s := NewStack(DefaultConfig(), "        ")

	got := s.Pop()
	assert.Equal(t, Frame{Tag: TagNone, WS: "        ", Real: true}, got)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, Frame{Tag: TagNone, WS: "    ", Real: true}, *s.Top())

	s.Pop()
	s.Pop()
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "", s.Top().WS)
}

func TestStackPushClosesDangling(t *testing.T) {
	s := NewStack(DefaultConfig(), "")
	s.Push(TagIfCond)
	s.Push(TagIfCond)
	assert.Equal(t, 2, s.Len(), "second else closes the first")

	s.Push(TagBrace)
	frames := s.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, TagNone, frames[0].Tag)
	assert.Equal(t, TagBrace, frames[1].Tag)
	// whitespace was derived from the dangling frame before it closed
	assert.Equal(t, "    ", frames[1].WS)
}

func TestStackCloseDangling(t *testing.T) {
	s := NewStack(DefaultConfig(), "")
	s.Push(TagBrace)
	s.PushWS(TagIfCond, "    ")
	s.Top().Tag = TagIfCond
	s.CloseDangling()
	assert.Equal(t, TagBrace, s.Top().Tag)
	s.CloseDangling()
	assert.Equal(t, 2, s.Len())
}

func TestStackNeverEmpty(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tags := []Tag{TagBrace, TagParen, TagBracket, TagIf, TagIfCond}
	s := NewStack(Config{TabStop: 4, ShiftWidth: 2, Style: StyleInfer}, "\t")
	for range 2000 {
		switch r.Intn(4) {
		case 0:
			s.Push(tags[r.Intn(len(tags))])
		case 1:
			s.PushWS(tags[r.Intn(len(tags))], "  ")
		default:
			s.Pop()
		}
		require.GreaterOrEqual(t, s.Len(), 1)
	}
}

func TestStackObserve(t *testing.T) {
	s := NewStack(DefaultConfig(), "")
	var ops []string
	s.Observe(func(op string, f Frame) { ops = append(ops, op+":"+f.Tag.String()) })
	s.Push(TagParen)
	s.Pop()
	s.Pop()
	assert.Equal(t, []string{"push:(", "pop:(", "pop:none", "push:none"}, ops)
}
