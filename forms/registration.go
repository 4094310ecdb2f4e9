package forms

import (
	"strings"

	"github.com/opdbook/formkit/pkg/validator"
)

// RegistrationForm carries a new patient account application. Email uses the
// strict registration shape and the password must not embed the applicant's
// name or email username.
type RegistrationForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	DateOfBirth     string `json:"dateOfBirth"`
	Gender          string `json:"gender"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	TermsAccepted   bool   `json:"termsAccepted"`

	// EmailPolicy overrides the default registration TLD allow-list when set.
	EmailPolicy *validator.EmailPolicy `json:"-"`
}

func NewRegistrationForm() *RegistrationForm {
	return &RegistrationForm{}
}

func (f *RegistrationForm) Fields() []string {
	return []string{
		"name", "email", "phone", "dateOfBirth", "gender",
		"password", "confirmPassword", "termsAccepted",
	}
}

func (f *RegistrationForm) Set(field string, value any) error {
	if field == "termsAccepted" {
		accepted, err := boolValue(field, value)
		if err != nil {
			return err
		}
		f.TermsAccepted = accepted
		return nil
	}

	s, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "name":
		f.Name = s
	case "email":
		f.Email = s
	case "phone":
		f.Phone = s
	case "dateOfBirth":
		f.DateOfBirth = s
	case "gender":
		f.Gender = s
	case "password":
		f.Password = s
	case "confirmPassword":
		f.ConfirmPassword = s
	default:
		return ErrUnknownField
	}
	return nil
}

func (f *RegistrationForm) policy() validator.EmailPolicy {
	if f.EmailPolicy != nil {
		return *f.EmailPolicy
	}
	return validator.DefaultEmailPolicy()
}

func (f *RegistrationForm) Validate() Result {
	// Single name words count as personal fragments too, so "JaneDoe1!" is
	// caught for a user named "Jane Doe".
	personal := append(strings.Fields(f.Name), f.Name, validator.EmailLocalPart(f.Email))

	err := validator.Apply(
		validator.PersonName("name", f.Name),
		validator.StrictEmail("email", f.Email, f.policy()),
		validator.IndianMobile("phone", f.Phone),
		validator.DateOfBirth("dateOfBirth", f.DateOfBirth),
		validator.Gender("gender", f.Gender),
		validator.StrictPassword("password", f.Password, personal...),
		passwordsMatch("confirmPassword", f.ConfirmPassword, f.Password),
		termsAccepted("termsAccepted", f.TermsAccepted),
	)
	return resultFrom(err, validator.PasswordStrength(f.Password))
}
