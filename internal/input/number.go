package input

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is an integer-valued input. When the value is optional, the type's
// minimum value is stored to mean "flag present, value omitted".
type Number[T constraints.Integer] struct {
	spec
	Value    *T
	MinValue *T
	MaxValue *T
}

func newNumber[T constraints.Integer](name string, opts []Option) *Number[T] {
	return &Number[T]{spec: newSpec(name, opts)}
}

// NewInt8 creates an 8-bit signed input.
func NewInt8(name string, opts ...Option) *Number[int8] { return newNumber[int8](name, opts) }

// NewInt16 creates a 16-bit signed input.
func NewInt16(name string, opts ...Option) *Number[int16] { return newNumber[int16](name, opts) }

// NewInt32 creates a 32-bit signed input.
func NewInt32(name string, opts ...Option) *Number[int32] { return newNumber[int32](name, opts) }

// NewInt64 creates a 64-bit signed input.
func NewInt64(name string, opts ...Option) *Number[int64] { return newNumber[int64](name, opts) }

// NewUInt8 creates an 8-bit unsigned input.
func NewUInt8(name string, opts ...Option) *Number[uint8] { return newNumber[uint8](name, opts) }

// NewUInt16 creates a 16-bit unsigned input.
func NewUInt16(name string, opts ...Option) *Number[uint16] { return newNumber[uint16](name, opts) }

// NewUInt32 creates a 32-bit unsigned input.
func NewUInt32(name string, opts ...Option) *Number[uint32] { return newNumber[uint32](name, opts) }

// WithBounds declares inclusive clamping bounds applied after parsing.
func (n *Number[T]) WithBounds(lo, hi T) *Number[T] {
	n.MinValue = &lo
	n.MaxValue = &hi
	return n
}

// Sentinel returns the placeholder for an omitted optional value.
func (n *Number[T]) Sentinel() T {
	lo, _ := typeRange[T]()
	return T(lo)
}

// IsSentinel reports whether the flag was seen without a value.
func (n *Number[T]) IsSentinel() bool {
	return !n.required && n.Value != nil && *n.Value == n.Sentinel()
}

// Get returns the explicit value, if one was given.
func (n *Number[T]) Get() (T, bool) {
	if n.Value == nil || n.IsSentinel() {
		return 0, false
	}
	return *n.Value, true
}

// Set stores an explicit value, clamped to the declared bounds.
func (n *Number[T]) Set(value T) {
	value = n.clamp(value)
	n.Value = &value
}

func (n *Number[T]) IsSet() bool { return n.Value != nil }

func (n *Number[T]) Reset() { n.Value = nil }

func (n *Number[T]) Process(tokens []string, index *int) bool {
	i := *index
	if i < 0 || i >= len(tokens) {
		return false
	}
	token := tokens[i]

	if n.matchName(token) {
		raw, ok := n.candidate(tokens, i)
		if !ok {
			return n.omitted(i+1, index)
		}
		value, ok := ParseInteger[T](raw)
		if !ok {
			return n.omitted(i+1, index)
		}
		n.Set(value)
		*index = i + 2
		return true
	}

	if raw, ok := n.equalsValue(token); ok {
		value, ok := ParseInteger[T](raw)
		if !ok {
			return n.omitted(i+1, index)
		}
		n.Set(value)
		*index = i + 1
		return true
	}
	return false
}

func (n *Number[T]) Format(useEquals bool) string {
	if n.Value == nil || n.IsSentinel() {
		return ""
	}
	return joinValue(n.name, strconv.FormatInt(int64(*n.Value), 10), useEquals)
}

func (n *Number[T]) omitted(next int, index *int) bool {
	if n.required {
		n.Value = nil
		return false
	}
	sentinel := n.Sentinel()
	n.Value = &sentinel
	*index = next
	return true
}

func (n *Number[T]) clamp(value T) T {
	if n.MinValue == nil || n.MaxValue == nil {
		return value
	}
	if value < *n.MinValue {
		return *n.MinValue
	}
	if value > *n.MaxValue {
		return *n.MaxValue
	}
	return value
}
