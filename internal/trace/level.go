package trace

import (
	"fmt"
	"strings"
)

// Scope is the granularity of an event. Deeper scopes have larger values.
type Scope uint8

const (
	ScopeRun Scope = iota + 1
	ScopeFile
	ScopeLine
	ScopeStack
)

var scopeNames = [...]string{"", "run", "file", "line", "stack"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && s != 0 {
		return scopeNames[s]
	}
	return "unknown"
}

// Level is the deepest scope a tracer records. LevelOff records nothing.
type Level uint8

const (
	LevelOff Level = iota
	LevelRun
	LevelFile
	LevelLine
	LevelStack
)

var levelNames = [...]string{"off", "run", "file", "line", "stack"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts the names printed by Level.String, case-insensitively.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("trace level %q: want one of %s", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope are recorded at level l.
func (l Level) ShouldEmit(scope Scope) bool {
	return scope != 0 && uint8(scope) <= uint8(l)
}
