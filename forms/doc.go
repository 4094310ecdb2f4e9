// Package forms defines the typed form schemas of the OPD booking product
// and the state engine that drives their inline validation.
//
// Each form (login, registration, profile, family member, password change) is
// a concrete struct implementing the Form interface: a statically known field
// set, a Set method bridging UI events to typed fields, and a Validate method
// composing the field rules from pkg/validator together with the form's
// cross-field rules. Validate always re-runs every rule against the full
// snapshot, which keeps cross-field rules (confirm-password equality,
// password-contains-name) consistent; callers debounce instead.
//
// State wraps a Form with the interaction lifecycle: values, per-field error
// messages, touched flags, overall validity, trailing-debounce revalidation
// on change, synchronous revalidation on blur, and optimistic error clearing
// on focus. Which fields surface errors before being touched is explicit
// per-field configuration (WithRevealImmediately), not implicit drift.
//
// View-state helpers translate the resulting state into render-ready
// decoration (input border state, password strength bar, requirement
// checklist) and keystroke formatting (phone grouping, OTP digit stripping).
package forms
