package handler

import "strings"

// SubmitError is a backend rejection mapped onto the form. When Field is
// empty the message belongs in the page-level banner instead of next to an
// input.
type SubmitError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// MapSubmitError attributes a backend error message to a form field by
// substring matching. The backend's error contract is free text, so this is a
// deliberately coarse fallback: "email" pins the message to the email field,
// "password" and "credentials" to the password field, anything else becomes a
// banner.
func MapSubmitError(message string) SubmitError {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "email"):
		return SubmitError{Field: "email", Message: message}
	case strings.Contains(lower, "password"), strings.Contains(lower, "credentials"):
		return SubmitError{Field: "password", Message: message}
	default:
		return SubmitError{Message: message}
	}
}
