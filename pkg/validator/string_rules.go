package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// Person names allow letters, spaces, apostrophes and hyphens only.
var nameRegex = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s is required", label(field)),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// PersonName validates a patient or contact name: required, 2-50 characters
// after trimming, letters/spaces/apostrophes/hyphens only.
func PersonName(field, value string) Rule {
	trimmed := strings.TrimSpace(value)
	return Chain(
		RequiredString(field, value),
		Rule{
			Check: func() bool {
				return len(trimmed) >= 2 && len(trimmed) <= 50
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must be between 2 and 50 characters",
				TranslationKey: "validation.name_length",
				TranslationValues: map[string]any{
					"field": field,
					"min":   2,
					"max":   50,
				},
			},
		},
		Rule{
			Check: func() bool {
				return nameRegex.MatchString(trimmed)
			},
			Error: ValidationError{
				Field:          field,
				Message:        "can only contain letters, spaces, hyphens and apostrophes",
				TranslationKey: "validation.name_format",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		},
	)
}

// label turns a camelCase field key into a user-facing label fragment, e.g.
// "confirmPassword" -> "confirm password", "dateOfBirth" -> "date of birth".
func label(field string) string {
	if field == "" {
		return "field"
	}
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	s := b.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
