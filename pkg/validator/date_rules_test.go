package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/opdbook/formkit/pkg/validator"
)

func TestDateOfBirth(t *testing.T) {
	t.Parallel()

	t.Run("accepts a plausible adult birthdate", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.DateOfBirth("dateOfBirth", "1995-05-05")))
	})

	t.Run("empty reports required", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Date of birth is required",
			firstMessage(t, validator.DateOfBirth("dateOfBirth", "")))
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		t.Parallel()

		for _, value := range []string{"not-a-date", "1995-13-40", "05/05/1995"} {
			assert.Equal(t, "must be a valid date",
				firstMessage(t, validator.DateOfBirth("dateOfBirth", value)), value)
		}
	})

	t.Run("rejects future dates", func(t *testing.T) {
		t.Parallel()

		future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
		assert.Equal(t, "date of birth cannot be in the future",
			firstMessage(t, validator.DateOfBirth("dateOfBirth", future)))
	})

	t.Run("rejects infants under one year", func(t *testing.T) {
		t.Parallel()

		recent := time.Now().AddDate(0, -6, 0).Format("2006-01-02")
		assert.Equal(t, "patient must be at least 1 year old",
			firstMessage(t, validator.DateOfBirth("dateOfBirth", recent)))
	})

	t.Run("rejects birthdates over 150 years back", func(t *testing.T) {
		t.Parallel()

		ancient := time.Now().AddDate(-151, 0, 0).Format("2006-01-02")
		assert.Equal(t, "must be a realistic date of birth",
			firstMessage(t, validator.DateOfBirth("dateOfBirth", ancient)))
	})
}

func TestAgeYears(t *testing.T) {
	t.Parallel()

	t.Run("accepts ages in range", func(t *testing.T) {
		t.Parallel()

		for _, value := range []string{"1", "30", "150"} {
			assert.NoError(t, validator.Apply(validator.AgeYears("age", value)), value)
		}
	})

	t.Run("rejects out-of-range and non-numeric", func(t *testing.T) {
		t.Parallel()

		for _, value := range []string{"0", "151", "-4", "abc", "29.5"} {
			assert.Error(t, validator.Apply(validator.AgeYears("age", value)), value)
		}
	})
}
