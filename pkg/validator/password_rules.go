package validator

import (
	"regexp"
	"strings"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
	whitespaceRegex  = regexp.MustCompile(`\s`)
)

// Strength is the coarse password quality tier shown next to the strength bar.
type Strength string

const (
	StrengthNone   Strength = "none"
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// PasswordStrength scores a password one point per character class present
// (uppercase, lowercase, digit, special) plus one point for length >= 12.
// Four or more points is strong, three is medium, anything below is weak.
// An empty password has no tier.
func PasswordStrength(value string) Strength {
	if value == "" {
		return StrengthNone
	}

	score := 0
	if uppercaseRegex.MatchString(value) {
		score++
	}
	if lowercaseRegex.MatchString(value) {
		score++
	}
	if digitRegex.MatchString(value) {
		score++
	}
	if specialCharRegex.MatchString(value) {
		score++
	}
	if len(value) >= 12 {
		score++
	}

	switch {
	case score >= 4:
		return StrengthStrong
	case score >= 3:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}

// PasswordChecklist reports which individual requirements a password already
// meets. The password input renders it as the live requirement list.
type PasswordChecklist struct {
	MinLength    bool
	Uppercase    bool
	Lowercase    bool
	Digit        bool
	SpecialChar  bool
	NoWhitespace bool
}

func ChecklistFor(value string) PasswordChecklist {
	return PasswordChecklist{
		MinLength:    len(value) >= 8,
		Uppercase:    uppercaseRegex.MatchString(value),
		Lowercase:    lowercaseRegex.MatchString(value),
		Digit:        digitRegex.MatchString(value),
		SpecialChar:  specialCharRegex.MatchString(value),
		NoWhitespace: value != "" && !whitespaceRegex.MatchString(value),
	}
}

// PasswordCharClasses requires at least one uppercase letter, one lowercase
// letter and one digit.
func PasswordCharClasses(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value) &&
				lowercaseRegex.MatchString(value) &&
				digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain an uppercase letter, a lowercase letter and a number",
			TranslationKey: "validation.password_char_classes",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotWeakPassword gates overall validity on the strength tier: a password
// scoring in the weak tier is rejected even when every hard requirement
// passes.
func NotWeakPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return PasswordStrength(value) != StrengthWeak
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password is too weak, add a special character or make it longer",
			TranslationKey: "validation.password_weak",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func NoWhitespace(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !whitespaceRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "cannot contain spaces",
			TranslationKey: "validation.password_whitespace",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotContainsPersonalInfo rejects passwords embedding the user's name or the
// local part of their email as a substring. Fragments shorter than three
// characters are ignored to avoid false positives on initials. The comparison
// is case-insensitive.
func NotContainsPersonalInfo(field, value string, fragments ...string) Rule {
	return Rule{
		Check: func() bool {
			lowered := strings.ToLower(value)
			for _, fragment := range fragments {
				fragment = strings.ToLower(strings.TrimSpace(fragment))
				if len(fragment) < 3 {
					continue
				}
				if strings.Contains(lowered, fragment) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain your name or email",
			TranslationKey: "validation.password_personal_info",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// StrictPassword composes the registration password chain: required, 8-128
// characters, mixed character classes, not weak, no whitespace, no personal
// fragments.
func StrictPassword(field, value string, personal ...string) Rule {
	return Chain(
		RequiredString(field, value),
		MinLenString(field, value, 8),
		MaxLenString(field, value, 128),
		PasswordCharClasses(field, value),
		NotWeakPassword(field, value),
		NoWhitespace(field, value),
		NotContainsPersonalInfo(field, value, personal...),
	)
}
