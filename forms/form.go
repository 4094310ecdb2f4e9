package forms

import (
	"errors"
	"fmt"

	"github.com/opdbook/formkit/pkg/validator"
)

var (
	// ErrUnknownField is returned when an event names a field the form does
	// not declare.
	ErrUnknownField = errors.New("unknown form field")

	// ErrValueType is returned when an event carries a value of the wrong
	// type for the field.
	ErrValueType = errors.New("unsupported value type for field")
)

// Form is a typed form schema: a fixed field set, an event-facing setter and
// a whole-snapshot validator.
type Form interface {
	// Fields lists the form's field keys in display order.
	Fields() []string

	// Set assigns a raw event value (string for inputs and selects, bool for
	// checkboxes) to the named field.
	Set(field string, value any) error

	// Validate re-runs every field and cross-field rule against the current
	// snapshot.
	Validate() Result
}

// Result is the outcome of validating a full form snapshot. Errors maps field
// keys to the first failing message per field; a field missing from the map
// currently passes its rules.
type Result struct {
	Valid            bool               `json:"valid"`
	Errors           map[string]string  `json:"errors"`
	PasswordStrength validator.Strength `json:"passwordStrength,omitempty"`
}

// resultFrom flattens an Apply error into a Result, keeping one message per
// field.
func resultFrom(err error, strength validator.Strength) Result {
	res := Result{
		Errors:           map[string]string{},
		PasswordStrength: strength,
	}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		for _, field := range verrs.Fields() {
			res.Errors[field] = verrs.First(field)
		}
	}
	res.Valid = len(res.Errors) == 0
	return res
}

func stringValue(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w %q: got %T, want string", ErrValueType, field, value)
	}
	return s, nil
}

func boolValue(field string, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		// Checkbox bindings sometimes deliver "on"/"true" instead of a bool.
		return v == "on" || v == "true" || v == "1", nil
	default:
		return false, fmt.Errorf("%w %q: got %T, want bool", ErrValueType, field, value)
	}
}

// passwordsMatch attributes a confirm-password mismatch to the dependent
// field, not the source field.
func passwordsMatch(field, confirm, password string) validator.Rule {
	return validator.Chain(
		validator.RequiredString(field, confirm),
		validator.Rule{
			Check: func() bool {
				return confirm == password
			},
			Error: validator.ValidationError{
				Field:          field,
				Message:        "Passwords do not match",
				TranslationKey: "validation.passwords_match",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		},
	)
}

func termsAccepted(field string, accepted bool) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return accepted
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        "You must accept the terms and conditions",
			TranslationKey: "validation.terms_accepted",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func differsFrom(field, value, other, message string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return value != other
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.differs_from",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
