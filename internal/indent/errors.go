package indent

import "errors"

var (
	// ErrInvalidConfig is wrapped by every configuration error.
	ErrInvalidConfig = errors.New("invalid indent config")
	// ErrNotWhitespace is returned by Expand for input other than spaces and tabs.
	ErrNotWhitespace = errors.New("not whitespace")
	// ErrNotSpaces is returned by Unexpand for input other than spaces.
	ErrNotSpaces = errors.New("not spaces")
)
