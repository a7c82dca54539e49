package charter

import (
	"errors"
	"strings"
	"unicode"
)

const (
	minNameLength = 3
	maxNameLength = 12
)

// Name validation outcomes. Validation is advisory per keystroke but hard-
// blocks the Enter transition out of a naming stage.
var (
	ErrNameTooShort = errors.New("name too short (min 3 characters)")
	ErrNameTooLong  = errors.New("name too long (max 12 characters)")
)

// ValidateName checks the trimmed name against the fixed length bounds.
func ValidateName(s string) error {
	s = strings.TrimSpace(s)
	if len([]rune(s)) < minNameLength {
		return ErrNameTooShort
	}
	if len([]rune(s)) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// NormalizeName trims the name and upper-cases its first rune. Applied once,
// at the moment a name is accepted, never during typing.
func NormalizeName(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
