package utils

import (
	"strconv"
	"strings"
)

// ParseFloatOrZero parses a decimal amount, substituting zero when the value
// is empty or malformed. Negative results of a bad upstream record are
// clamped to zero as well, so a corrupt field can never subtract revenue.
func ParseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// ParseIntOrZero parses a non-negative integer count, substituting zero when
// the value is empty or malformed. A value like "12.0" coming from a numeric
// column is truncated the way parseInt would truncate it.
func ParseIntOrZero(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return int(f)
	}
	return 0
}
