package validator

import "regexp"

const otpLength = 6

var otpRegex = regexp.MustCompile(`^[0-9]+$`)

// OTP validates a one-time password entry: exactly six digits.
func OTP(field, value string) Rule {
	return Chain(
		RequiredString(field, value),
		Rule{
			Check: func() bool {
				return len(value) == otpLength
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must be exactly 6 digits",
				TranslationKey: "validation.otp_length",
				TranslationValues: map[string]any{
					"field":  field,
					"length": otpLength,
				},
			},
		},
		Rule{
			Check: func() bool {
				return otpRegex.MatchString(value)
			},
			Error: ValidationError{
				Field:          field,
				Message:        "can only contain digits",
				TranslationKey: "validation.otp_digits",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		},
	)
}
