package indent

// Stack is the nesting state of one query. It is never empty: popping the
// last frame synthesizes a new bottom frame one level shallower.
type Stack struct {
	cfg    Config
	frames []Frame
	hook   func(op string, f Frame)
}

// NewStack returns a stack holding the real bottom frame {TagNone, seed}.
func NewStack(cfg Config, seed string) *Stack {
	s := &Stack{cfg: cfg, frames: make([]Frame, 0, 16)}
	s.frames = append(s.frames, Frame{Tag: TagNone, WS: seed, Real: true})
	return s
}

func (s *Stack) reset(seed string) {
	s.frames = append(s.frames[:0], Frame{Tag: TagNone, WS: seed, Real: true})
}

// Top returns the top frame. Updates through the pointer change the stack.
func (s *Stack) Top() *Frame {
	return &s.frames[len(s.frames)-1]
}

// Len returns the number of frames, always at least one.
func (s *Stack) Len() int { return len(s.frames) }

// Frames returns a copy of the frames, bottom first.
func (s *Stack) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// Push opens a level derived from the top: a real top is shifted right one
// level, a guessed top is copied unchanged. The new frame is guessed.
// Dangling TagIfCond frames are closed before the new frame goes on.
func (s *Stack) Push(tag Tag) {
	top := s.Top()
	ws := top.WS
	if top.Real {
		ws = s.cfg.ShiftRight(top.WS, 1)
	}
	s.push(Frame{Tag: tag, WS: ws})
}

// PushWS opens a level with explicit whitespace. The new frame is real.
func (s *Stack) PushWS(tag Tag, ws string) {
	s.push(Frame{Tag: tag, WS: ws, Real: true})
}

func (s *Stack) push(f Frame) {
	s.CloseDangling()
	s.frames = append(s.frames, f)
	s.note("push", f)
}

// Pop removes and returns the top frame. When that empties the stack a real
// TagNone frame one level shallower than the removed one takes its place.
func (s *Stack) Pop() Frame {
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	s.note("pop", f)
	if len(s.frames) == 0 {
		bottom := Frame{Tag: TagNone, WS: s.cfg.ShiftLeft(f.WS, 1), Real: true}
		s.frames = append(s.frames, bottom)
		s.note("push", bottom)
	}
	return f
}

// CloseDangling pops while the top is TagIfCond.
func (s *Stack) CloseDangling() {
	for s.Top().Tag == TagIfCond {
		s.Pop()
	}
}

// Observe installs fn to be called after every push and pop.
func (s *Stack) Observe(fn func(op string, f Frame)) { s.hook = fn }

func (s *Stack) note(op string, f Frame) {
	if s.hook != nil {
		s.hook(op, f)
	}
}
