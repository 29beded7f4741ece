package profile

import (
	"github.com/matheus3301/wave/internal/apperr"
)

const maxNameLen = 64

// ValidateName reports why name cannot be used as a profile directory.
// Names are 1 to 64 characters of a-z, 0-9, '-' and '_'.
func ValidateName(name string) error {
	switch {
	case name == "":
		return apperr.Validation("profile name is empty")
	case len(name) > maxNameLen:
		return apperr.Validation("profile name %q is longer than %d characters", name, maxNameLen)
	}
	for i, r := range name {
		if !nameRune(r) {
			return apperr.Validation("profile name %q: %q at offset %d is not one of a-z 0-9 - _", name, r, i)
		}
	}
	return nil
}

func nameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}
