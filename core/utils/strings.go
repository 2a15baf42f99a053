package utils

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// IsBlank reports whether s is empty or only white space.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNumber reports whether s holds a base-10 integer that fits in int64.
func IsNumber(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}

// IsAlphanumeric reports whether s contains only ASCII letters and digits.
// The empty string qualifies.
func IsAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// Left returns the first n runes of s. Blank input, n <= 0 and n beyond
// the length all return s unchanged.
func Left(s string, n int) string {
	if IsBlank(s) || n <= 0 || n >= utf8.RuneCountInString(s) {
		return s
	}
	return string([]rune(s)[:n])
}

// Right returns the last n runes of s, with the same edge rules as Left.
func Right(s string, n int) string {
	if IsBlank(s) || n <= 0 {
		return s
	}
	r := []rune(s)
	if n >= len(r) {
		return s
	}
	return string(r[len(r)-n:])
}
