package config

import "jsindent/internal/indent"

// Overrides carries values set on the command line or by an editor. Nil
// fields leave the underlying setting alone.
type Overrides struct {
	TabStop      *int
	ShiftWidth   *int
	Style        *indent.TabStyle
	ContextLines *int
}

// Apply returns s with every non-nil override applied and validates the result.
func (s Settings) Apply(o Overrides) (Settings, error) {
	if o.TabStop != nil {
		s.Indent.TabStop = *o.TabStop
	}
	if o.ShiftWidth != nil {
		s.Indent.ShiftWidth = *o.ShiftWidth
	}
	if o.Style != nil {
		s.Indent.Style = *o.Style
	}
	if o.ContextLines != nil {
		s.ContextLines = *o.ContextLines
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Empty reports whether no override is set.
func (o Overrides) Empty() bool {
	return o.TabStop == nil && o.ShiftWidth == nil && o.Style == nil && o.ContextLines == nil
}
