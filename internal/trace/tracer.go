package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer receives events. Implementations must be safe for concurrent use;
// reindent workers share one tracer.
type Tracer interface {
	Emit(ev Event)
	Level() Level
	Flush() error
	Close() error
}

type nop struct{}

func (nop) Emit(Event)     {}
func (nop) Level() Level   { return LevelOff }
func (nop) Flush() error   { return nil }
func (nop) Close() error   { return nil }

// Nop records nothing.
var Nop Tracer = nop{}

// Wants reports whether t records events of scope. Callers that build
// expensive details check it first.
func Wants(t Tracer, scope Scope) bool {
	return t != nil && t.Level().ShouldEmit(scope)
}

// StorageMode says where events go.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1 // written as they happen
	ModeRing                          // kept in memory, dumped on failure
	ModeBoth
)

var modeNames = map[string]StorageMode{"stream": ModeStream, "ring": ModeRing, "both": ModeBoth}

func (m StorageMode) String() string {
	for name, v := range modeNames {
		if v == m {
			return name
		}
	}
	return "unknown"
}

// ParseMode accepts stream, ring and both.
func ParseMode(s string) (StorageMode, error) {
	if m, ok := modeNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("trace mode %q: want stream|ring|both", s)
}

// Config describes the tracer built by New.
type Config struct {
	Level      Level
	Mode       StorageMode
	Format     Format    // FormatAuto picks by OutputPath
	Output     io.Writer // overrides OutputPath
	OutputPath string    // "" or "-" is stderr
	RingSize   int       // default 4096
}

const defaultRingSize = 4096

var errNoMode = errors.New("trace: storage mode not set")

// New builds a tracer for cfg. LevelOff yields Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if cfg.Mode == 0 {
		return nil, errNoMode
	}
	var ring *RingTracer
	if cfg.Mode == ModeRing || cfg.Mode == ModeBoth {
		ring = NewRingTracer(cfg.RingSize, cfg.Level)
		if cfg.Mode == ModeRing {
			return ring, nil
		}
	}

	w, owned, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}
	stream := NewStreamTracer(w, cfg.Level, FormatForPath(cfg.Format, cfg.OutputPath))
	if owned != nil {
		stream.closer = owned
	}
	if ring == nil {
		return stream, nil
	}
	return NewTee(stream, ring), nil
}

func openOutput(cfg Config) (io.Writer, io.Closer, error) {
	switch {
	case cfg.Output != nil:
		return cfg.Output, nil, nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return os.Stderr, nil, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("trace: open output: %w", err)
	}
	return f, f, nil
}
