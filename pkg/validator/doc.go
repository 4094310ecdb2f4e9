// Package validator provides the field-level validation rules behind the OPD
// booking forms: registration, login, profile, family members, password
// change, and OTP entry.
//
// Rules are small values pairing a Check function with translation-friendly
// error metadata. A field's rule chain is built with Chain, which reports the
// first failing step only, so the user sees one actionable message per field.
// Whole-form snapshots are evaluated with Apply, which aggregates failures
// across fields into a ValidationErrors slice implementing the error
// interface.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.PersonName("name", name),
//	    validator.StrictEmail("email", email, validator.DefaultEmailPolicy()),
//	    validator.IndianMobile("phone", phone),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // map field -> first message
//	}
//
// Every rule constructor is pure and allocation-light; there is no hidden
// state, so the package is safe for concurrent use. Business thresholds that
// are product decisions rather than format rules (the registration TLD
// allow-list) are carried as configurable data, see EmailPolicy.
package validator
