package validator

import (
	"regexp"
	"strings"
)

var loosePhoneRegex = regexp.MustCompile(`^(\+91|91)?[6-9]\d{9}$`)

// Obvious keyboard-walk numbers rejected even though they are shaped like
// valid mobiles.
var phoneBlacklist = map[string]bool{
	"1234567890": true,
	"0123456789": true,
	"0987654321": true,
}

// NormalizeIndianMobile reduces user input to the canonical 10-digit subscriber
// number: formatting characters are stripped, leading zeros removed, and a
// leading "91" country code dropped when it yields a 12-digit string. The
// result is not guaranteed to be valid; pass it through IndianMobile.
func NormalizeIndianMobile(value string) string {
	digits := strings.TrimLeft(digitsOnly(value), "0")
	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		digits = digits[2:]
	}
	return digits
}

// IndianMobile validates an Indian mobile number after normalization:
// exactly 10 digits, first digit 6-9, not a single repeated digit, not a
// known throwaway sequence. The throwaway check runs against both the raw
// digit string and the normalized one, and before the shape check, so
// "1234567890" reads as a fake number rather than a malformed one.
func IndianMobile(field, value string) Rule {
	raw := digitsOnly(value)
	digits := NormalizeIndianMobile(value)
	return Chain(
		RequiredString(field, value),
		Rule{
			Check: func() bool {
				return !allSameDigits(digits) && !phoneBlacklist[raw] && !phoneBlacklist[digits]
			},
			Error: ValidationError{
				Field:          field,
				Message:        "Enter a real phone number",
				TranslationKey: "validation.phone_fake",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		},
		Rule{
			Check: func() bool {
				if len(digits) != 10 {
					return false
				}
				return digits[0] >= '6' && digits[0] <= '9'
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must be a valid 10-digit mobile number",
				TranslationKey: "validation.phone",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		},
	)
}

// LooseIndianPhone validates the relaxed phone shape accepted on profile and
// family-member forms: an optional +91/91 prefix followed by a 10-digit
// mobile, with 10-15 digits overall after stripping formatting.
func LooseIndianPhone(field, value string) Rule {
	cleaned := stripPhoneFormatting(value)
	digitCount := len(strings.TrimPrefix(cleaned, "+"))
	return Chain(
		RequiredString(field, value),
		Rule{
			Check: func() bool {
				if digitCount < 10 || digitCount > 15 {
					return false
				}
				return loosePhoneRegex.MatchString(cleaned)
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must be a valid phone number",
				TranslationKey: "validation.phone_loose",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		},
	)
}

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripPhoneFormatting(value string) string {
	var b strings.Builder
	for i, r := range value {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigits(digits string) bool {
	if digits == "" {
		return false
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
