package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds individual identifiers read from pedigree files.
const maxIDLength = 256

// ValidateIndividualID validates an individual identifier from a pedigree file.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - No leading or trailing whitespace
//   - Maximum length of 256 characters
func ValidateIndividualID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPedigree, "individual id cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidPedigree, "individual id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPedigree, "individual id %q contains control characters", id)
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidPedigree, "individual id %q has surrounding whitespace", id)
	}

	return nil
}

// ValidateIndex checks that i addresses a slot of an arena of size n.
// Negative values are rejected unless allowNone is set and i == -1.
func ValidateIndex(i, n int, allowNone bool, what string) error {
	if allowNone && i == -1 {
		return nil
	}
	if i < 0 || i >= n {
		return New(ErrCodeInvalidPedigree, "%s index %d out of range [0,%d)", what, i, n)
	}
	return nil
}
