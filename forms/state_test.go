package forms_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opdbook/formkit/forms"
	"github.com/opdbook/formkit/pkg/debounce"
)

func newLoginState(sched *debounce.ManualScheduler, opts ...forms.StateOption) *forms.State[*forms.LoginForm] {
	opts = append([]forms.StateOption{forms.WithScheduler(sched)}, opts...)
	return forms.NewState(forms.NewLoginForm, opts...)
}

func TestState_FirstInteraction(t *testing.T) {
	t.Parallel()

	t.Run("first change touches all fields and validates once", func(t *testing.T) {
		t.Parallel()

		sched := debounce.NewManualScheduler()
		passes := 0
		s := newLoginState(sched, forms.WithOnValidate(func(forms.Result) { passes++ }))
		defer s.Close()

		require.NoError(t, s.HandleChange("email", "j"))

		assert.True(t, s.IsTouched("email"))
		assert.True(t, s.IsTouched("password"), "untouched field revealed on first interaction")
		assert.Equal(t, 1, passes)
		assert.Equal(t, "Password is required", s.FieldError("password"))
	})

	t.Run("first blur behaves the same", func(t *testing.T) {
		t.Parallel()

		sched := debounce.NewManualScheduler()
		s := newLoginState(sched)
		defer s.Close()

		s.HandleBlur("email")
		assert.True(t, s.IsTouched("password"))
		assert.Equal(t, "Email is required", s.FieldError("email"))
	})

	t.Run("second change does not re-trigger the reveal", func(t *testing.T) {
		t.Parallel()

		sched := debounce.NewManualScheduler()
		passes := 0
		s := newLoginState(sched, forms.WithOnValidate(func(forms.Result) { passes++ }))
		defer s.Close()

		require.NoError(t, s.HandleChange("email", "j"))
		require.NoError(t, s.HandleChange("email", "ja"))
		assert.Equal(t, 1, passes, "only the first-interaction pass ran synchronously")
	})
}

func TestState_DebouncedChangeValidation(t *testing.T) {
	t.Parallel()

	t.Run("burst of changes validates once with the final value", func(t *testing.T) {
		t.Parallel()

		sched := debounce.NewManualScheduler()
		var results []forms.Result
		s := newLoginState(sched, forms.WithOnValidate(func(r forms.Result) { results = append(results, r) }))
		defer s.Close()

		for _, v := range []string{"j", "ja", "jan", "jane@gmail.com"} {
			require.NoError(t, s.HandleChange("email", v))
		}
		require.NoError(t, s.HandleChange("password", "secret"))

		// One synchronous first-interaction pass so far.
		passes := len(results)
		assert.Equal(t, 1, passes)

		sched.Advance(forms.DefaultDebounce)
		require.Len(t, results, passes+1, "exactly one debounced pass after the quiet window")

		final := results[len(results)-1]
		assert.True(t, final.Valid)
		assert.True(t, s.Valid())
		assert.Empty(t, s.Errors())
	})

	t.Run("change validation can be disabled", func(t *testing.T) {
		t.Parallel()

		sched := debounce.NewManualScheduler()
		s := newLoginState(sched, forms.WithValidateOnChange(false))
		defer s.Close()

		require.NoError(t, s.HandleChange("email", "jane@gmail.com"))
		assert.Equal(t, 0, sched.Pending())
	})
}

func TestState_BlurAndFocus(t *testing.T) {
	t.Parallel()

	t.Run("blur validates synchronously", func(t *testing.T) {
		t.Parallel()

		sched := debounce.NewManualScheduler()
		s := newLoginState(sched)
		defer s.Close()

		require.NoError(t, s.HandleChange("email", "not-an-email"))
		s.HandleBlur("email")
		assert.Equal(t, "must be a valid email address", s.FieldError("email"))
	})

	t.Run("focus clears the error optimistically", func(t *testing.T) {
		t.Parallel()

		sched := debounce.NewManualScheduler()
		s := newLoginState(sched)
		defer s.Close()

		require.NoError(t, s.HandleChange("email", "not-an-email"))
		s.HandleBlur("email")
		require.NotEmpty(t, s.FieldError("email"))

		s.HandleFocus("email")
		assert.Empty(t, s.FieldError("email"))

		// The error returns on the next blur while still invalid.
		s.HandleBlur("email")
		assert.NotEmpty(t, s.FieldError("email"))
	})
}

func TestState_ValidateAllAndReset(t *testing.T) {
	t.Parallel()

	sched := debounce.NewManualScheduler()
	s := newLoginState(sched)
	defer s.Close()

	res := s.ValidateAll()
	assert.False(t, res.Valid)
	assert.True(t, s.IsTouched("email"))

	require.NoError(t, s.HandleChange("email", "jane@gmail.com"))
	require.NoError(t, s.HandleChange("password", "pw"))
	assert.True(t, s.ValidateAll().Valid)

	s.Reset()
	assert.False(t, s.Valid())
	assert.Empty(t, s.Errors())
	assert.False(t, s.IsTouched("email"))
	assert.Equal(t, "", s.Form().Email)
	assert.Equal(t, 0, sched.Pending(), "reset cancels the pending debounce")
}

func TestState_ImperativeEscapeHatches(t *testing.T) {
	t.Parallel()

	sched := debounce.NewManualScheduler()
	s := newLoginState(sched)
	defer s.Close()

	require.NoError(t, s.SetFieldValue("email", "injected@gmail.com"))
	assert.Equal(t, "injected@gmail.com", s.Form().Email)
	assert.False(t, s.IsTouched("email"), "imperative set does not touch")

	s.SetFieldError("email", "Email is already registered")
	assert.Equal(t, "Email is already registered", s.FieldError("email"))
	assert.False(t, s.Valid())

	s.ClearFieldError("email")
	assert.Empty(t, s.FieldError("email"))
}

func TestState_ShowError(t *testing.T) {
	t.Parallel()

	t.Run("touched gate by default", func(t *testing.T) {
		t.Parallel()

		sched := debounce.NewManualScheduler()
		s := newLoginState(sched)
		defer s.Close()

		s.SetFieldError("password", "Password is required")
		assert.False(t, s.ShowError("password"), "untouched field stays quiet")
	})

	t.Run("reveal-immediately bypasses the touched gate", func(t *testing.T) {
		t.Parallel()

		sched := debounce.NewManualScheduler()
		s := newLoginState(sched, forms.WithRevealImmediately("email"))
		defer s.Close()

		s.SetFieldError("email", "must be a valid email address")
		s.SetFieldError("password", "Password is required")

		assert.True(t, s.ShowError("email"))
		assert.False(t, s.ShowError("password"))
	})
}

func TestState_RegistrationDebounceWindow(t *testing.T) {
	t.Parallel()

	sched := debounce.NewManualScheduler()
	passes := 0
	s := forms.NewState(forms.NewRegistrationForm,
		forms.WithScheduler(sched),
		forms.WithDebounce(forms.RegistrationDebounce),
		forms.WithOnValidate(func(forms.Result) { passes++ }),
	)
	defer s.Close()

	require.NoError(t, s.HandleChange("name", "Jane Doe"))
	passes = 0

	sched.Advance(300 * time.Millisecond)
	assert.Equal(t, 0, passes, "registration waits the longer window")

	sched.Advance(200 * time.Millisecond)
	assert.Equal(t, 1, passes)
}
