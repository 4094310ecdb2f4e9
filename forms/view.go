package forms

import (
	"strings"

	"github.com/opdbook/formkit/pkg/validator"
)

// InputState drives the border color and trailing icon of a form field.
type InputState string

const (
	InputNeutral InputState = "neutral"
	InputError   InputState = "error"
	InputSuccess InputState = "success"
)

// InputView is the render-ready decoration of one field.
type InputView struct {
	State   InputState
	Message string
}

// FieldView computes the decoration for the named field from the current
// state: error when a visible error exists, success when the field is touched,
// non-empty and passing, neutral otherwise.
func FieldView[F Form](s *State[F], field, value string) InputView {
	if s.ShowError(field) {
		return InputView{State: InputError, Message: s.FieldError(field)}
	}
	if s.IsTouched(field) && strings.TrimSpace(value) != "" && s.FieldError(field) == "" {
		return InputView{State: InputSuccess}
	}
	return InputView{State: InputNeutral}
}

// StrengthBar is the password strength indicator: Filled of Total segments
// plus a label.
type StrengthBar struct {
	Filled int
	Total  int
	Label  string
}

// StrengthBarFor maps a strength tier onto the three-segment bar.
func StrengthBarFor(strength validator.Strength) StrengthBar {
	bar := StrengthBar{Total: 3}
	switch strength {
	case validator.StrengthWeak:
		bar.Filled = 1
		bar.Label = "Weak"
	case validator.StrengthMedium:
		bar.Filled = 2
		bar.Label = "Medium"
	case validator.StrengthStrong:
		bar.Filled = 3
		bar.Label = "Strong"
	}
	return bar
}

// FormatPhone regroups mobile keystrokes as "98765 43210" while typing. The
// formatting is cosmetic only; validation strips it back to raw digits.
func FormatPhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > 10 {
		d = d[:10]
	}
	if len(d) <= 5 {
		return d
	}
	return d[:5] + " " + d[5:]
}

// NormalizeOTP strips non-digit characters and truncates to six digits on
// every keystroke.
func NormalizeOTP(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == 6 {
			break
		}
	}
	return b.String()
}
