package input

import (
	"strings"
)

// Input is one flag token with an optional trailing value.
type Input interface {
	// Name returns the primary flag token.
	Name() string
	// Names returns the primary token followed by every alternate spelling.
	Names() []string
	// LongName returns the verbose alias, if any.
	LongName() string
	// Required reports whether a trailing value is mandatory once the flag is present.
	Required() bool
	// Matches reports whether token is this flag, in either spaced or equals form.
	Matches(token string) bool
	// Process consumes the flag starting at *index. On success *index is left at
	// the first unconsumed token. On failure *index is unchanged.
	Process(tokens []string, index *int) bool
	// Format renders the flag and its value, or "" when there is nothing to emit.
	Format(useEquals bool) string
	// IsSet reports whether the value slot holds anything.
	IsSet() bool
	// Reset clears the value slot.
	Reset()
}

// Option configures the shared properties of an input.
type Option func(*spec)

// WithAltNames registers additional accepted spellings.
func WithAltNames(names ...string) Option {
	return func(s *spec) {
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				s.altNames = append(s.altNames, name)
			}
		}
	}
}

// WithLongName sets a verbose alias used for display.
func WithLongName(name string) Option {
	return func(s *spec) {
		s.longName = strings.TrimSpace(name)
	}
}

// Optional marks the trailing value as optional.
func Optional() Option {
	return func(s *spec) {
		s.required = false
	}
}

// WithStop installs a lookahead predicate. A candidate value token for which
// stop returns true is never consumed; it is treated as the next flag.
func WithStop(stop func(token string) bool) Option {
	return func(s *spec) {
		s.stop = stop
	}
}

type spec struct {
	name     string
	altNames []string
	longName string
	required bool
	stop     func(string) bool
}

func newSpec(name string, opts []Option) spec {
	s := spec{name: strings.TrimSpace(name), required: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

func (s *spec) Name() string { return s.name }

func (s *spec) LongName() string { return s.longName }

func (s *spec) Required() bool { return s.required }

func (s *spec) Names() []string {
	names := make([]string, 0, 1+len(s.altNames))
	names = append(names, s.name)
	return append(names, s.altNames...)
}

func (s *spec) Matches(token string) bool {
	if s.matchName(token) {
		return true
	}
	_, ok := s.equalsValue(token)
	return ok
}

func (s *spec) matchName(token string) bool {
	if token == s.name {
		return true
	}
	for _, alt := range s.altNames {
		if token == alt {
			return true
		}
	}
	return false
}

// equalsValue returns the value half of "<name>=<value>".
func (s *spec) equalsValue(token string) (string, bool) {
	for _, name := range s.Names() {
		if name == "" {
			continue
		}
		if strings.HasPrefix(token, name+"=") {
			return token[len(name)+1:], true
		}
	}
	return "", false
}

// candidate returns the token after index when it may be taken as a value.
func (s *spec) candidate(tokens []string, index int) (string, bool) {
	next := index + 1
	if next >= len(tokens) {
		return "", false
	}
	if s.stop != nil && s.stop(tokens[next]) {
		return "", false
	}
	return tokens[next], true
}

func joinValue(name, value string, useEquals bool) string {
	if useEquals {
		return name + "=" + value
	}
	return name + " " + value
}

func quoteIfNeeded(value string) string {
	if value == "" || strings.ContainsAny(value, " \t") {
		return `"` + value + `"`
	}
	return value
}
