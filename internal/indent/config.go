package indent

import (
	"fmt"
	"strings"
)

// TabStyle selects how computed whitespace is rendered.
type TabStyle uint8

const (
	// StyleInfer keeps tabs when the whitespace being shifted contained one.
	StyleInfer TabStyle = iota
	// StyleSpaces always renders spaces.
	StyleSpaces
	// StyleTabs collapses every TabStop spaces into a tab.
	StyleTabs
)

func (s TabStyle) String() string {
	switch s {
	case StyleInfer:
		return "infer"
	case StyleSpaces:
		return "spaces"
	case StyleTabs:
		return "tabs"
	default:
		return fmt.Sprintf("TabStyle(%d)", uint8(s))
	}
}

// ParseTabStyle converts "spaces", "tabs" or "infer" to a TabStyle.
func ParseTabStyle(s string) (TabStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "infer", "":
		return StyleInfer, nil
	case "spaces", "expand":
		return StyleSpaces, nil
	case "tabs", "keep":
		return StyleTabs, nil
	default:
		return StyleInfer, fmt.Errorf("%w: unknown tab style %q (expected: spaces|tabs|infer)", ErrInvalidConfig, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s TabStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so TOML and JSON
// settings can carry the style by name.
func (s *TabStyle) UnmarshalText(text []byte) error {
	v, err := ParseTabStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Config holds the engine settings. It is a value: engines copy it.
type Config struct {
	TabStop    int
	ShiftWidth int
	Style      TabStyle
}

// DefaultConfig returns tab stop 8, shift width 4, inferred tab style.
func DefaultConfig() Config {
	return Config{TabStop: 8, ShiftWidth: 4, Style: StyleInfer}
}

// Validate reports an error wrapping ErrInvalidConfig for unusable settings.
func (c Config) Validate() error {
	if c.TabStop <= 0 {
		return fmt.Errorf("%w: tab stop must be positive, got %d", ErrInvalidConfig, c.TabStop)
	}
	if c.ShiftWidth <= 0 {
		return fmt.Errorf("%w: shift width must be positive, got %d", ErrInvalidConfig, c.ShiftWidth)
	}
	if c.Style > StyleTabs {
		return fmt.Errorf("%w: unknown tab style %d", ErrInvalidConfig, uint8(c.Style))
	}
	return nil
}
