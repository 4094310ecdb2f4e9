package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opdbook/formkit/pkg/validator"
)

func TestPersonName(t *testing.T) {
	t.Parallel()

	t.Run("accepts realistic names", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{
			"Jane Doe",
			"O'Connor",
			"Anne-Marie",
			"Li",
		} {
			assert.NoError(t, validator.Apply(validator.PersonName("name", name)), name)
		}
	})

	t.Run("empty reports required", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Name is required", firstMessage(t, validator.PersonName("name", "")))
		assert.Equal(t, "Name is required", firstMessage(t, validator.PersonName("name", "   ")))
	})

	t.Run("enforces trimmed length bounds", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "must be between 2 and 50 characters",
			firstMessage(t, validator.PersonName("name", "J")))
		assert.Equal(t, "must be between 2 and 50 characters",
			firstMessage(t, validator.PersonName("name", strings.Repeat("a", 51))))
		assert.NoError(t, validator.Apply(validator.PersonName("name", "  Jane  ")))
	})

	t.Run("rejects disallowed characters", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"Jane123", "Jane_Doe", "Jane@Doe"} {
			assert.Equal(t, "can only contain letters, spaces, hyphens and apostrophes",
				firstMessage(t, validator.PersonName("name", name)), name)
		}
	})
}

func TestRequiredString(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.RequiredString("email", "x")))
	assert.Error(t, validator.Apply(validator.RequiredString("email", " \t ")))

	t.Run("message uses a humanized field label", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Confirm password is required",
			firstMessage(t, validator.RequiredString("confirmPassword", "")))
		assert.Equal(t, "Date of birth is required",
			firstMessage(t, validator.RequiredString("dateOfBirth", "")))
	})
}
