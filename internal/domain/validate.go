package domain

import (
	"regexp"
	"strings"
)

// nameRx accepts ASCII letters, Hangul compatibility jamo, and Hangul
// syllables, so both English and Korean player names pass.
var nameRx = regexp.MustCompile(`[A-Za-z\x{3131}-\x{318E}\x{AC00}-\x{D7A3}]`)

// ValidatePlayerName trims the name and requires at least one alphabetic or
// Hangul character. Returns the trimmed name on success.
func ValidatePlayerName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || !nameRx.MatchString(trimmed) {
		return "", ErrInvalidName
	}
	return trimmed, nil
}

// ValidateGrade checks the submitted elementary-school grade level.
func ValidateGrade(grade int) error {
	if grade < 1 || grade > 6 {
		return ErrInvalidGrade
	}
	return nil
}
