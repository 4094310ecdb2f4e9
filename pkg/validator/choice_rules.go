package validator

import (
	"fmt"
	"strings"
)

var (
	genderOptions     = []string{"male", "female", "other"}
	bloodGroupOptions = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
	relationOptions   = []string{"spouse", "parent", "child", "sibling", "other"}
)

func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// Gender validates the gender selection.
func Gender(field, value string) Rule {
	return Chain(
		RequiredString(field, value),
		InListString(field, value, genderOptions),
	)
}

// BloodGroup validates one of the eight canonical blood groups.
func BloodGroup(field, value string) Rule {
	return Chain(
		RequiredString(field, value),
		InListString(field, value, bloodGroupOptions),
	)
}

// Relation validates the relationship of a family member or emergency contact
// to the patient.
func Relation(field, value string) Rule {
	return Chain(
		RequiredString(field, value),
		InListString(field, value, relationOptions),
	)
}
