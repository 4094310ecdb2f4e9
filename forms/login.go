package forms

import "github.com/opdbook/formkit/pkg/validator"

// LoginForm carries the credentials entered on the sign-in page. The password
// is required-only; strength rules apply at registration and password change.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewLoginForm() *LoginForm {
	return &LoginForm{}
}

func (f *LoginForm) Fields() []string {
	return []string{"email", "password"}
}

func (f *LoginForm) Set(field string, value any) error {
	s, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "email":
		f.Email = s
	case "password":
		f.Password = s
	default:
		return ErrUnknownField
	}
	return nil
}

func (f *LoginForm) Validate() Result {
	err := validator.Apply(
		validator.Email("email", f.Email),
		validator.RequiredString("password", f.Password),
	)
	return resultFrom(err, validator.StrengthNone)
}
