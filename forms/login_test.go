package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opdbook/formkit/forms"
)

func TestLoginForm_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		f := &forms.LoginForm{Email: "jane@gmail.com", Password: "anything"}
		res := f.Validate()
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("any non-empty password passes", func(t *testing.T) {
		t.Parallel()

		f := &forms.LoginForm{Email: "jane@gmail.com", Password: "x"}
		assert.True(t, f.Validate().Valid)
	})

	t.Run("empty form fails both fields", func(t *testing.T) {
		t.Parallel()

		res := forms.NewLoginForm().Validate()
		assert.False(t, res.Valid)
		assert.Equal(t, "Email is required", res.Errors["email"])
		assert.Equal(t, "Password is required", res.Errors["password"])
	})

	t.Run("login email is not TLD-restricted", func(t *testing.T) {
		t.Parallel()

		f := &forms.LoginForm{Email: "user@example.xyz", Password: "pw"}
		assert.True(t, f.Validate().Valid)
	})
}
