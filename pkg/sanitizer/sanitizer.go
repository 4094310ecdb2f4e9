// Package sanitizer provides the input-cleaning transforms applied before
// form values reach the validation rules: whitespace handling, digit
// extraction for phone and OTP inputs, and name normalization.
//
// Transforms are pure string functions, composable with Apply and Compose.
package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentFolder decomposes characters and drops combining marks, turning
// "José" into "Jose" so accented input survives the ASCII-only name rule.
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace trims the string and folds internal whitespace runs into
// single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Digits strips every non-digit character.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FoldAccents replaces accented letters with their base form. Input that
// cannot be transformed is returned unchanged.
func FoldAccents(s string) string {
	out, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return out
}

// CleanName prepares free-typed name input for the person-name rule: accents
// folded, whitespace collapsed, characters outside letters/space/hyphen/
// apostrophe dropped.
func CleanName(s string) string {
	s = CollapseWhitespace(FoldAccents(s))

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r == ' ', r == '\'', r == '-':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Apply creates a functional composition pipeline for sanitization transforms.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable sanitization pipeline. Preferred over repeated
// Apply calls when the same transformation chain is used multiple times.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
