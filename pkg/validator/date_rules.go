package validator

import (
	"strconv"
	"time"
)

// dobLayout matches the value produced by a date input.
const dobLayout = "2006-01-02"

// DateOfBirth validates a patient date of birth: required, a parseable
// calendar date, not in the future, at least one year in the past, and at
// most 150 years old.
func DateOfBirth(field, value string) Rule {
	dob, parseErr := time.Parse(dobLayout, value)
	return Chain(
		RequiredString(field, value),
		Rule{
			Check: func() bool {
				return parseErr == nil
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must be a valid date",
				TranslationKey: "validation.date",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		},
		Rule{
			Check: func() bool {
				return !dob.After(time.Now())
			},
			Error: ValidationError{
				Field:          field,
				Message:        "date of birth cannot be in the future",
				TranslationKey: "validation.date_future",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		},
		Rule{
			Check: func() bool {
				return yearsSince(dob) >= 1
			},
			Error: ValidationError{
				Field:          field,
				Message:        "patient must be at least 1 year old",
				TranslationKey: "validation.min_age",
				TranslationValues: map[string]any{
					"field":   field,
					"min_age": 1,
				},
			},
		},
		Rule{
			Check: func() bool {
				return yearsSince(dob) <= 150
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must be a realistic date of birth",
				TranslationKey: "validation.max_age",
				TranslationValues: map[string]any{
					"field":   field,
					"max_age": 150,
				},
			},
		},
	)
}

// AgeYears validates a free-typed age field: an integer between 1 and 150.
func AgeYears(field, value string) Rule {
	age, convErr := strconv.Atoi(value)
	return Chain(
		RequiredString(field, value),
		Rule{
			Check: func() bool {
				return convErr == nil && age >= 1 && age <= 150
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must be a number between 1 and 150",
				TranslationKey: "validation.age_range",
				TranslationValues: map[string]any{
					"field": field,
					"min":   1,
					"max":   150,
				},
			},
		},
	)
}

// yearsSince computes full years elapsed since the birthdate, adjusting when
// the birthday has not yet occurred this year.
func yearsSince(birthdate time.Time) int {
	now := time.Now()
	years := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		years--
	}
	return years
}
