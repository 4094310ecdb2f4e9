package forms

import "github.com/opdbook/formkit/pkg/validator"

// FamilyMemberForm carries a dependent added under a patient account: the
// profile shape minus email and address, plus a required relation to the
// account holder.
type FamilyMemberForm struct {
	Name       string `json:"name"`
	Age        string `json:"age"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Relation   string `json:"relation"`
	BloodGroup string `json:"bloodGroup"`
}

func NewFamilyMemberForm() *FamilyMemberForm {
	return &FamilyMemberForm{}
}

func (f *FamilyMemberForm) Fields() []string {
	return []string{"name", "age", "gender", "phone", "relation", "bloodGroup"}
}

func (f *FamilyMemberForm) Set(field string, value any) error {
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
	case "relation":
		f.Relation = s
	case "bloodGroup":
		f.BloodGroup = s
	default:
		return ErrUnknownField
	}
	return nil
}

func (f *FamilyMemberForm) Validate() Result {
	rules := []validator.Rule{
		validator.PersonName("name", f.Name),
		validator.AgeYears("age", f.Age),
		validator.Gender("gender", f.Gender),
		validator.LooseIndianPhone("phone", f.Phone),
		validator.Relation("relation", f.Relation),
	}
	if f.BloodGroup != "" {
		rules = append(rules, validator.BloodGroup("bloodGroup", f.BloodGroup))
	}
	return resultFrom(validator.Apply(rules...), validator.StrengthNone)
}
