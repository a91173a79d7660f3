package errors

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength bounds dot labels and floor names, in runes.
const MaxNameLength = 128

// ValidateDotName validates a user-supplied dot label.
// An empty name is valid; the UI renders a placeholder for it.
//
// Rejected:
//   - invalid UTF-8
//   - control characters (including newlines and null bytes)
//   - more than MaxNameLength runes
func ValidateDotName(name string) error {
	if !utf8.ValidString(name) {
		return New(ErrCodeInvalidInput, "dot name is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return New(ErrCodeInvalidInput, "dot name too long (%d > %d characters)", n, MaxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "dot name contains invalid control characters")
		}
	}
	return nil
}

// ValidateFloorName validates a floor identifier such as "Map 1".
// Floor names appear in URLs and DOT cluster ids, so slashes are rejected too.
func ValidateFloorName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "floor name cannot be empty")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return New(ErrCodeInvalidInput, "floor name too long (%d > %d characters)", n, MaxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "floor name contains invalid control characters")
		}
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "floor name cannot contain path separators")
	}
	return nil
}

// ValidateCoordinate rejects NaN and infinite coordinates.
func ValidateCoordinate(axis string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s coordinate must be finite, got %v", axis, v)
	}
	return nil
}
