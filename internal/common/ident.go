package common

import (
	"unicode"
	"unicode/utf8"
)

// IsIdentifier reports whether s is a valid Go identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError {
			return false
		}

		if !unicode.IsLetter(r) && r != '_' && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}

		i += size
	}

	return true
}

// IsQualifiedIdentifier reports whether s is an identifier optionally
// prefixed by a single package qualifier ("Name" or "pkg.Name").
func IsQualifiedIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return IsIdentifier(s[:i]) && IsIdentifier(s[i+1:])
		}
	}

	return IsIdentifier(s)
}
