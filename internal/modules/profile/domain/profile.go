package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// Key is the persisted key of the player name. The value is the raw
	// name, not a JSON document.
	Key         = "playerName"
	DefaultName = "Guest"
	MaxNameLen  = 20
)

const (
	ErrNameEmpty   = "name is required"
	ErrNameTooLong = "name must be 20 characters or fewer"
)

type Validation struct {
	Valid bool
	Error string
}

// Normalize trims surrounding whitespace and composes the name (NFC) so a
// base letter followed by a combining mark counts as one character.
func Normalize(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

func Validate(name string) Validation {
	n := Normalize(name)
	if n == "" {
		return Validation{Error: ErrNameEmpty}
	}
	if utf8.RuneCountInString(n) > MaxNameLen {
		return Validation{Error: ErrNameTooLong}
	}
	return Validation{Valid: true}
}
