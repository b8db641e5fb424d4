package execution

import (
	"regexp"
	"strconv"
)

var driveLetterPattern = regexp.MustCompile(`^[A-Za-z]:?\\?$`)

// IsValidDriveLetter reports whether value names a drive such as D, D: or D:\.
func IsValidDriveLetter(value string) bool {
	return driveLetterPattern.MatchString(value)
}

// ParseBoundedInt parses a plain decimal integer and requires lo <= v <= hi.
func ParseBoundedInt(text string, lo, hi int64) (int64, bool) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil || value < lo || value > hi {
		return 0, false
	}
	return value, true
}

// ParseLBA parses a non-negative logical block address.
func ParseLBA(text string) (int64, bool) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}
