package input

import (
	"math"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// unitFactors maps the trailing unit suffixes accepted by numeric values.
var unitFactors = map[byte]int64{
	'c': 1,
	'w': 2,
	'd': 4,
	'q': 8,
	'k': 1024,
	'M': 1024 * 1024,
	'G': 1024 * 1024 * 1024,
}

// ParseInteger parses text with the shared numeric grammar and reports whether
// the result fits T.
func ParseInteger[T constraints.Integer](text string) (T, bool) {
	value, ok := parseInt64(text)
	if !ok {
		return 0, false
	}
	lo, hi := typeRange[T]()
	if value < lo || value > hi {
		return 0, false
	}
	return T(value), true
}

// ParseBool accepts the spellings understood by strconv plus yes/no.
func ParseBool(text string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	value, err := strconv.ParseBool(strings.TrimSpace(text))
	if err != nil {
		return false, false
	}
	return value, true
}

func parseInt64(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	// A complete hex literal wins over suffix stripping, so 0x1d is 29.
	if value, ok := parseHex(text); ok {
		return value, true
	}
	base, factor := extractFactor(text)
	if value, err := strconv.ParseInt(base, 10, 64); err == nil {
		return multiply(value, factor)
	}
	if value, ok := parseHex(base); ok {
		return multiply(value, factor)
	}
	return 0, false
}

func extractFactor(text string) (string, int64) {
	if len(text) < 2 {
		return text, 1
	}
	factor, ok := unitFactors[text[len(text)-1]]
	if !ok {
		return text, 1
	}
	return text[:len(text)-1], factor
}

func parseHex(text string) (int64, bool) {
	negative := false
	if strings.HasPrefix(text, "-") {
		negative = true
		text = text[1:]
	}
	if !strings.HasPrefix(text, "0x") && !strings.HasPrefix(text, "0X") {
		return 0, false
	}
	value, err := strconv.ParseInt(text[2:], 16, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		value = -value
	}
	return value, true
}

func multiply(value, factor int64) (int64, bool) {
	if factor == 1 {
		return value, true
	}
	if value > math.MaxInt64/factor || value < math.MinInt64/factor {
		return 0, false
	}
	return value * factor, true
}

// typeRange returns the bounds of T expressed as int64. Unsigned 64-bit values
// above MaxInt64 are not representable and are capped.
func typeRange[T constraints.Integer]() (int64, int64) {
	var zero T
	bits := uint(unsafe.Sizeof(zero)) * 8
	signed := zero-1 < zero
	if signed {
		return -1 << (bits - 1), 1<<(bits-1) - 1
	}
	if bits >= 64 {
		return 0, math.MaxInt64
	}
	return 0, 1<<bits - 1
}
