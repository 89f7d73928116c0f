package domain

import (
	"fmt"
	"strings"
)

// MaxIdentifierLen is the host limit for library and object names.
const MaxIdentifierLen = 10

// Identifier is a validated, uppercase host object name (a library or a
// save file). The zero value is invalid; use NewIdentifier.
type Identifier string

// NewIdentifier validates and normalizes a library or object name.
// Names are case-insensitive on the host, so the identifier is uppercased
// here, once, before it can appear in any generated command.
func NewIdentifier(name string) (Identifier, error) {
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidIdentifier)
	}
	if len(name) > MaxIdentifierLen {
		return "", fmt.Errorf("%w: %q is too long, maximum length is %d",
			ErrInvalidIdentifier, name, MaxIdentifierLen)
	}
	for _, r := range name {
		if !isObjectNameRune(r) {
			return "", fmt.Errorf("%w: %q contains invalid character %q",
				ErrInvalidIdentifier, name, r)
		}
	}
	return Identifier(strings.ToUpper(name)), nil
}

// String returns the normalized name.
func (id Identifier) String() string { return string(id) }

// isObjectNameRune reports whether r may appear in a host object name.
// The host accepts letters, digits, and the characters $, #, @, _ and
// period. Everything else is rejected rather than escaped, which keeps
// quoting out of command text entirely.
func isObjectNameRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '$' || r == '#' || r == '@' || r == '_' || r == '.':
		return true
	}
	return false
}
