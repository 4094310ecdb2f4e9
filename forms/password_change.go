package forms

import "github.com/opdbook/formkit/pkg/validator"

// PasswordChangeForm carries an authenticated password change. The new
// password follows the strict rules minus personal-info containment (the
// account's name and email are not part of this form's snapshot) and must
// differ from the current one.
type PasswordChangeForm struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func NewPasswordChangeForm() *PasswordChangeForm {
	return &PasswordChangeForm{}
}

func (f *PasswordChangeForm) Fields() []string {
	return []string{"currentPassword", "newPassword", "confirmPassword"}
}

func (f *PasswordChangeForm) Set(field string, value any) error {
	s, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "currentPassword":
		f.CurrentPassword = s
	case "newPassword":
		f.NewPassword = s
	case "confirmPassword":
		f.ConfirmPassword = s
	default:
		return ErrUnknownField
	}
	return nil
}

func (f *PasswordChangeForm) Validate() Result {
	err := validator.Apply(
		validator.RequiredString("currentPassword", f.CurrentPassword),
		validator.Chain(
			validator.StrictPassword("newPassword", f.NewPassword),
			differsFrom("newPassword", f.NewPassword, f.CurrentPassword,
				"New password must be different from current password"),
		),
		passwordsMatch("confirmPassword", f.ConfirmPassword, f.NewPassword),
	)
	return resultFrom(err, validator.PasswordStrength(f.NewPassword))
}
