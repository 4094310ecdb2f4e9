package forms

import (
	"maps"
	"sync"
	"time"

	"github.com/opdbook/formkit/pkg/debounce"
	"github.com/opdbook/formkit/pkg/validator"
)

const (
	// DefaultDebounce is the quiet window for change revalidation.
	DefaultDebounce = 300 * time.Millisecond

	// RegistrationDebounce is the longer window used by the registration
	// form, whose aggregator is the most expensive.
	RegistrationDebounce = 500 * time.Millisecond
)

type stateConfig struct {
	delay            time.Duration
	sched            debounce.Scheduler
	validateOnChange bool
	validateOnBlur   bool
	reveal           map[string]bool
	onValidate       func(Result)
}

// StateOption configures a form State.
type StateOption func(*stateConfig)

// WithDebounce sets the quiet window for change revalidation.
func WithDebounce(d time.Duration) StateOption {
	return func(c *stateConfig) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithScheduler replaces the wall-clock scheduler, letting tests drive the
// debounce deterministically.
func WithScheduler(s debounce.Scheduler) StateOption {
	return func(c *stateConfig) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithValidateOnChange enables or disables debounced revalidation on change.
func WithValidateOnChange(enabled bool) StateOption {
	return func(c *stateConfig) { c.validateOnChange = enabled }
}

// WithValidateOnBlur enables or disables synchronous revalidation on blur.
func WithValidateOnBlur(enabled bool) StateOption {
	return func(c *stateConfig) { c.validateOnBlur = enabled }
}

// WithRevealImmediately marks fields whose errors surface before the field is
// touched. The source UX shows name and email errors immediately on some
// forms; this makes that gating an explicit per-field decision.
func WithRevealImmediately(fields ...string) StateOption {
	return func(c *stateConfig) {
		for _, field := range fields {
			c.reveal[field] = true
		}
	}
}

// WithOnValidate registers a callback invoked after every full validation
// pass with its Result. It runs outside the state lock.
func WithOnValidate(fn func(Result)) StateOption {
	return func(c *stateConfig) { c.onValidate = fn }
}

// State owns the interaction lifecycle of one mounted form: the typed values,
// per-field errors, touched flags, derived validity, and the single pending
// debounced validation. Safe for concurrent use; each instance owns its own
// debouncer, released by Close.
type State[F Form] struct {
	mu            sync.Mutex
	cfg           stateConfig
	newForm       func() F
	form          F
	errors        map[string]string
	touched       map[string]bool
	valid         bool
	strength      validator.Strength
	hasInteracted bool
	deb           *debounce.Debouncer
}

// NewState mounts a fresh form produced by newForm. Reset calls newForm again
// to restore the initial snapshot.
func NewState[F Form](newForm func() F, opts ...StateOption) *State[F] {
	cfg := stateConfig{
		delay:            DefaultDebounce,
		sched:            debounce.TimerScheduler{},
		validateOnChange: true,
		validateOnBlur:   true,
		reveal:           map[string]bool{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &State[F]{
		cfg:      cfg,
		newForm:  newForm,
		form:     newForm(),
		errors:   map[string]string{},
		touched:  map[string]bool{},
		strength: validator.StrengthNone,
		deb:      debounce.New(cfg.delay, debounce.WithScheduler(cfg.sched)),
	}
}

// HandleChange applies a keystroke or selection to the named field, marks it
// touched, and schedules a debounced full revalidation. The first interaction
// with a freshly mounted form additionally marks every field touched and runs
// the aggregator immediately, so all missing-required errors appear at once.
func (s *State[F]) HandleChange(field string, value any) error {
	s.mu.Lock()
	if err := s.form.Set(field, value); err != nil {
		s.mu.Unlock()
		return err
	}
	s.touched[field] = true

	var immediate *Result
	if !s.hasInteracted {
		s.hasInteracted = true
		s.touchAllLocked()
		res := s.validateLocked()
		immediate = &res
	}
	scheduleRevalidation := s.cfg.validateOnChange
	s.mu.Unlock()

	if immediate != nil {
		s.notify(*immediate)
	}
	if scheduleRevalidation {
		s.deb.Trigger(s.revalidate)
	}
	return nil
}

// HandleBlur marks the field touched and revalidates synchronously (no
// debounce). Shares the first-interaction behavior of HandleChange.
func (s *State[F]) HandleBlur(field string) {
	s.mu.Lock()
	s.touched[field] = true
	if !s.hasInteracted {
		s.hasInteracted = true
		s.touchAllLocked()
	}

	if !s.cfg.validateOnBlur {
		s.mu.Unlock()
		return
	}
	res := s.validateLocked()
	s.mu.Unlock()

	s.notify(res)
}

// HandleFocus clears the field's error optimistically; it returns on the next
// blur or debounced change if still failing.
func (s *State[F]) HandleFocus(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.errors, field)
}

// ValidateAll force-runs the aggregator, marks every field touched, and
// returns the result. Submit handlers call it to gate submission.
func (s *State[F]) ValidateAll() Result {
	s.mu.Lock()
	s.hasInteracted = true
	s.touchAllLocked()
	res := s.validateLocked()
	s.mu.Unlock()

	s.notify(res)
	return res
}

// Reset restores the initial form snapshot and clears errors, touched flags,
// validity and any pending debounced validation.
func (s *State[F]) Reset() {
	s.deb.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = s.newForm()
	s.errors = map[string]string{}
	s.touched = map[string]bool{}
	s.valid = false
	s.strength = validator.StrengthNone
	s.hasInteracted = false
}

// SetFieldValue injects a value outside the normal event flow (for example a
// sanitized name) without touching the field or triggering validation.
func (s *State[F]) SetFieldValue(field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Set(field, value)
}

// SetFieldError overlays a message outside the normal event flow, such as a
// server-reported "already registered" conflict. The next full validation
// pass replaces it.
func (s *State[F]) SetFieldError(field, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[field] = message
	s.valid = false
}

// ClearFieldError removes the field's current error, if any.
func (s *State[F]) ClearFieldError(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.errors, field)
}

// Close cancels any pending debounced validation. Call on unmount.
func (s *State[F]) Close() {
	s.deb.Cancel()
}

// Form returns the live form snapshot. Mutate it only through Set-based
// methods.
func (s *State[F]) Form() F {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Errors returns a copy of the current field error map.
func (s *State[F]) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.errors)
}

// FieldError returns the current message for a field, or "".
func (s *State[F]) FieldError(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors[field]
}

// IsTouched reports whether the user has interacted with the field.
func (s *State[F]) IsTouched(field string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched[field]
}

// Valid reports the result of the most recent validation pass.
func (s *State[F]) Valid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valid
}

// Strength reports the password strength from the most recent validation
// pass.
func (s *State[F]) Strength() validator.Strength {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strength
}

// ShowError reports whether the field's error should be rendered: it must
// have one, and the field must be touched or configured to reveal
// immediately.
func (s *State[F]) ShowError(field string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errors[field] == "" {
		return false
	}
	return s.touched[field] || s.cfg.reveal[field]
}

func (s *State[F]) touchAllLocked() {
	for _, field := range s.form.Fields() {
		s.touched[field] = true
	}
}

func (s *State[F]) validateLocked() Result {
	res := s.form.Validate()
	s.errors = maps.Clone(res.Errors)
	s.valid = res.Valid
	s.strength = res.PasswordStrength
	return res
}

// revalidate is the debounced validation pass.
func (s *State[F]) revalidate() {
	s.mu.Lock()
	res := s.validateLocked()
	s.mu.Unlock()

	s.notify(res)
}

func (s *State[F]) notify(res Result) {
	if s.cfg.onValidate != nil {
		s.cfg.onValidate(res)
	}
}
