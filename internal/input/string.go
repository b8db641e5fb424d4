package input

import "strings"

// String is a text-valued input. The empty string is the omitted-value
// sentinel. Values never contain a double quote, which would not survive
// formatting and re-tokenizing.
type String struct {
	spec
	Value *string
}

// NewString creates a text-valued input.
func NewString(name string, opts ...Option) *String {
	return &String{spec: newSpec(name, opts)}
}

// Get returns the explicit value, if one was given.
func (s *String) Get() (string, bool) {
	if s.Value == nil || *s.Value == "" {
		return "", false
	}
	return *s.Value, true
}

// Set stores an explicit value. It reports false, leaving the input
// untouched, when value contains a double quote.
func (s *String) Set(value string) bool {
	if strings.ContainsRune(value, '"') {
		return false
	}
	s.Value = &value
	return true
}

func (s *String) IsSet() bool { return s.Value != nil }

func (s *String) Reset() { s.Value = nil }

func (s *String) Process(tokens []string, index *int) bool {
	i := *index
	if i < 0 || i >= len(tokens) {
		return false
	}
	if s.matchName(tokens[i]) {
		raw, ok := s.candidate(tokens, i)
		if !ok || raw == "" {
			return s.omitted(i+1, index)
		}
		if !s.Set(raw) {
			return false
		}
		*index = i + 2
		return true
	}
	if raw, ok := s.equalsValue(tokens[i]); ok {
		if raw == "" {
			return s.omitted(i+1, index)
		}
		if !s.Set(raw) {
			return false
		}
		*index = i + 1
		return true
	}
	return false
}

func (s *String) Format(useEquals bool) string {
	value, ok := s.Get()
	if !ok {
		return ""
	}
	return joinValue(s.name, quoteIfNeeded(value), useEquals)
}

func (s *String) omitted(next int, index *int) bool {
	if s.required {
		s.Value = nil
		return false
	}
	empty := ""
	s.Value = &empty
	*index = next
	return true
}
