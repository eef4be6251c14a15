package validation

import (
	"math"
	"strconv"
	"strings"
)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// ParseCoordinate parses a decimal degree string. Range is not checked.
func ParseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// IsCoordinate reports whether s is empty or a finite decimal number
func IsCoordinate(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, ok := ParseCoordinate(s)
	return ok
}
