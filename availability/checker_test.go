package availability_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/opdbook/formkit/availability"
	"github.com/opdbook/formkit/pkg/debounce"
)

// overlayRecorder is a minimal stand-in for the form state's error map.
type overlayRecorder struct {
	mu     sync.Mutex
	errors map[string]string
}

func newOverlayRecorder() *overlayRecorder {
	return &overlayRecorder{errors: map[string]string{}}
}

func (o *overlayRecorder) FieldError(field string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errors[field]
}

func (o *overlayRecorder) SetFieldError(field, message string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errors[field] = message
}

func (o *overlayRecorder) ClearFieldError(field string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.errors, field)
}

func TestChecker_MarksTakenEmail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"email":{"available":false}}`))
	}))
	defer srv.Close()

	sched := debounce.NewManualScheduler()
	overlay := newOverlayRecorder()
	checker := availability.NewChecker(availability.NewClient(srv.URL), overlay,
		availability.WithScheduler(sched))
	defer checker.Close()

	checker.Observe(availability.FieldEmail, "jane@gmail.com", true, true)
	sched.Advance(availability.DefaultDebounce)

	assert.Eventually(t, func() bool {
		return overlay.FieldError("email") == "Email is already registered"
	}, time.Second, 5*time.Millisecond)
}

func TestChecker_AvailableClearsOwnOverlayOnly(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"phone":{"available":true}}`))
	}))
	defer srv.Close()

	sched := debounce.NewManualScheduler()
	overlay := newOverlayRecorder()
	checker := availability.NewChecker(availability.NewClient(srv.URL), overlay,
		availability.WithScheduler(sched))
	defer checker.Close()

	t.Run("clears a stale taken message", func(t *testing.T) {
		overlay.SetFieldError("phone", "Phone number is already registered")

		checker.Observe(availability.FieldPhone, "9876543210", true, true)
		sched.Advance(availability.DefaultDebounce)

		assert.Eventually(t, func() bool {
			return overlay.FieldError("phone") == ""
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("leaves a synchronous rule error alone", func(t *testing.T) {
		overlay.SetFieldError("phone", "must be a valid 10-digit mobile number")

		checker.Observe(availability.FieldPhone, "9876543210", true, true)
		sched.Advance(availability.DefaultDebounce)

		// Give the probe goroutine time to land, then confirm the rule error
		// survived.
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, "must be a valid 10-digit mobile number", overlay.FieldError("phone"))
	})
}

func TestChecker_InvalidOrUntouchedCancelsProbe(t *testing.T) {
	t.Parallel()

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"email":{"available":false}}`))
	}))
	defer srv.Close()

	sched := debounce.NewManualScheduler()
	overlay := newOverlayRecorder()
	checker := availability.NewChecker(availability.NewClient(srv.URL), overlay,
		availability.WithScheduler(sched))
	defer checker.Close()

	checker.Observe(availability.FieldEmail, "jane@gmail.com", true, true)
	// The user keeps typing and breaks the address before the window closes.
	checker.Observe(availability.FieldEmail, "jane@", false, true)
	sched.Advance(availability.DefaultDebounce)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, requests)
	assert.Empty(t, overlay.FieldError("email"))

	checker.Observe(availability.FieldEmail, "jane@gmail.com", true, false)
	sched.Advance(availability.DefaultDebounce)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, requests, "untouched field is never probed")
}

func TestChecker_StaleResponseDiscarded(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	firstDone := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("email") == "old@gmail.com" {
			// Simulate a slow backend: hold the first probe until the second
			// one has completed.
			<-release
			_, _ = w.Write([]byte(`{"email":{"available":false}}`))
			close(firstDone)
			return
		}
		_, _ = w.Write([]byte(`{"email":{"available":true}}`))
	}))
	defer srv.Close()

	sched := debounce.NewManualScheduler()
	overlay := newOverlayRecorder()
	checker := availability.NewChecker(availability.NewClient(srv.URL), overlay,
		availability.WithScheduler(sched))
	defer checker.Close()

	checker.Observe(availability.FieldEmail, "old@gmail.com", true, true)
	sched.Advance(availability.DefaultDebounce)

	// Second probe supersedes the blocked first one.
	checker.Observe(availability.FieldEmail, "new@gmail.com", true, true)
	sched.Advance(availability.DefaultDebounce)

	// Let the first request finish after the second already won.
	close(release)
	select {
	case <-firstDone:
	case <-time.After(time.Second):
		// The superseded request was canceled before the handler wrote; that
		// also proves it could not have applied its verdict.
	}

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, overlay.FieldError("email"),
		"stale taken verdict must not overwrite the newer available verdict")
}

func TestChecker_NetworkFailureSwallowed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sched := debounce.NewManualScheduler()
	overlay := newOverlayRecorder()
	checker := availability.NewChecker(availability.NewClient(srv.URL), overlay,
		availability.WithScheduler(sched))
	defer checker.Close()

	checker.Observe(availability.FieldEmail, "jane@gmail.com", true, true)
	sched.Advance(availability.DefaultDebounce)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, overlay.FieldError("email"))
}
