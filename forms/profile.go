package forms

import (
	"strings"

	"github.com/opdbook/formkit/pkg/validator"
)

// EmergencyContact is the optional nested contact block on the profile form.
// Each of its fields validates independently when non-empty.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// ProfileForm carries a patient profile update. Address, blood group and the
// emergency contact are optional; phone accepts the relaxed +91 shape since
// stored profiles may carry the country code.
type ProfileForm struct {
	Name             string           `json:"name"`
	Age              string           `json:"age"`
	Gender           string           `json:"gender"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	Address          string           `json:"address"`
	BloodGroup       string           `json:"bloodGroup"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
}

func NewProfileForm() *ProfileForm {
	return &ProfileForm{}
}

func (f *ProfileForm) Fields() []string {
	return []string{
		"name", "age", "gender", "phone", "email", "address", "bloodGroup",
		"emergencyContact.name", "emergencyContact.phone", "emergencyContact.relation",
	}
}

func (f *ProfileForm) Set(field string, value any) error {
	s, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "name":
		f.Name = s
	case "age":
		f.Age = s
	case "gender":
		f.Gender = s
	case "phone":
		f.Phone = s
	case "email":
		f.Email = s
	case "address":
		f.Address = s
	case "bloodGroup":
		f.BloodGroup = s
	case "emergencyContact.name":
		f.EmergencyContact.Name = s
	case "emergencyContact.phone":
		f.EmergencyContact.Phone = s
	case "emergencyContact.relation":
		f.EmergencyContact.Relation = s
	default:
		return ErrUnknownField
	}
	return nil
}

func (f *ProfileForm) Validate() Result {
	rules := []validator.Rule{
		validator.PersonName("name", f.Name),
		validator.AgeYears("age", f.Age),
		validator.Gender("gender", f.Gender),
		validator.LooseIndianPhone("phone", f.Phone),
		validator.Email("email", f.Email),
	}

	if address := strings.TrimSpace(f.Address); address != "" {
		rules = append(rules, validator.Chain(
			validator.MinLenString("address", address, 10),
			validator.MaxLenString("address", address, 500),
		))
	}
	if f.BloodGroup != "" {
		rules = append(rules, validator.BloodGroup("bloodGroup", f.BloodGroup))
	}

	ec := f.EmergencyContact
	if strings.TrimSpace(ec.Name) != "" {
		rules = append(rules, validator.PersonName("emergencyContact.name", ec.Name))
	}
	if strings.TrimSpace(ec.Phone) != "" {
		rules = append(rules, validator.LooseIndianPhone("emergencyContact.phone", ec.Phone))
	}
	if strings.TrimSpace(ec.Relation) != "" {
		rules = append(rules, validator.Relation("emergencyContact.relation", ec.Relation))
	}

	return resultFrom(validator.Apply(rules...), validator.StrengthNone)
}
