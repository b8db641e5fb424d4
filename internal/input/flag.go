package input

// Flag is a bare switch: present or absent, no trailing value.
type Flag struct {
	spec
	Value bool
}

// NewFlag creates a bare switch input.
func NewFlag(name string, opts ...Option) *Flag {
	return &Flag{spec: newSpec(name, append(append([]Option(nil), opts...), Optional()))}
}

func (f *Flag) IsSet() bool { return f.Value }

func (f *Flag) Reset() { f.Value = false }

func (f *Flag) Process(tokens []string, index *int) bool {
	i := *index
	if i < 0 || i >= len(tokens) {
		return false
	}
	if f.matchName(tokens[i]) {
		f.Value = true
		*index = i + 1
		return true
	}
	if raw, ok := f.equalsValue(tokens[i]); ok {
		value, ok := ParseBool(raw)
		if !ok {
			return false
		}
		f.Value = value
		*index = i + 1
		return true
	}
	return false
}

func (f *Flag) Format(bool) string {
	if !f.Value {
		return ""
	}
	return f.name
}

// Bool is a switch that carries an explicit true/false value.
type Bool struct {
	spec
	Value *bool
}

// NewBool creates a boolean-valued input.
func NewBool(name string, opts ...Option) *Bool {
	return &Bool{spec: newSpec(name, opts)}
}

func (b *Bool) IsSet() bool { return b.Value != nil }

func (b *Bool) Reset() { b.Value = nil }

func (b *Bool) Process(tokens []string, index *int) bool {
	i := *index
	if i < 0 || i >= len(tokens) {
		return false
	}
	if b.matchName(tokens[i]) {
		if raw, ok := b.candidate(tokens, i); ok {
			if value, ok := ParseBool(raw); ok {
				b.Value = &value
				*index = i + 2
				return true
			}
		}
		return b.omitted(i+1, index)
	}
	if raw, ok := b.equalsValue(tokens[i]); ok {
		value, ok := ParseBool(raw)
		if !ok {
			return b.omitted(i+1, index)
		}
		b.Value = &value
		*index = i + 1
		return true
	}
	return false
}

func (b *Bool) Format(useEquals bool) string {
	if b.Value == nil {
		return ""
	}
	value := "false"
	if *b.Value {
		value = "true"
	}
	return joinValue(b.name, value, useEquals)
}

// omitted treats a bare optional boolean as enabled.
func (b *Bool) omitted(next int, index *int) bool {
	if b.required {
		b.Value = nil
		return false
	}
	value := true
	b.Value = &value
	*index = next
	return true
}
