package availability

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/opdbook/formkit/pkg/debounce"
)

// Field names a probed identifier on the registration form.
type Field string

const (
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
)

var takenMessages = map[Field]string{
	FieldEmail: "Email is already registered",
	FieldPhone: "Phone number is already registered",
}

// ErrorOverlay is the slice of the form state the checker writes through.
// *forms.State satisfies it.
type ErrorOverlay interface {
	FieldError(field string) string
	SetFieldError(field, message string)
	ClearFieldError(field string)
}

// Checker layers the debounced availability probe on top of a registration
// form. Observe is called on every email/phone change; the probe fires only
// once the field is syntactically valid and touched, 400ms after the last
// qualifying change.
//
// Every probe is stamped with a generation and cancels the previous in-flight
// request, so a superseded response can never overwrite a newer verdict.
type Checker struct {
	client  *Client
	overlay ErrorOverlay
	logger  *slog.Logger
	deb     *debounce.Debouncer

	gen atomic.Uint64

	mu     sync.Mutex
	cancel context.CancelFunc
}

// CheckerOption configures a Checker.
type CheckerOption func(*checkerConfig)

type checkerConfig struct {
	delay  time.Duration
	sched  debounce.Scheduler
	logger *slog.Logger
}

// WithDebounce overrides the 400ms probe window.
func WithDebounce(d time.Duration) CheckerOption {
	return func(c *checkerConfig) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithScheduler replaces the wall-clock scheduler for tests.
func WithScheduler(s debounce.Scheduler) CheckerOption {
	return func(c *checkerConfig) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithLogger sets the logger for swallowed probe failures.
func WithLogger(l *slog.Logger) CheckerOption {
	return func(c *checkerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewChecker wires a probe client onto a form's error overlay.
func NewChecker(client *Client, overlay ErrorOverlay, opts ...CheckerOption) *Checker {
	cfg := checkerConfig{
		delay:  DefaultDebounce,
		sched:  debounce.TimerScheduler{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Checker{
		client:  client,
		overlay: overlay,
		logger:  cfg.logger,
		deb:     debounce.New(cfg.delay, debounce.WithScheduler(cfg.sched)),
	}
}

// Observe reschedules the probe after a change to the field. Changes leaving
// the field syntactically invalid or untouched cancel any pending probe
// instead; the synchronous rules own that feedback.
func (c *Checker) Observe(field Field, value string, syntacticallyValid, touched bool) {
	if !syntacticallyValid || !touched {
		c.deb.Cancel()
		return
	}
	c.deb.Trigger(func() { c.probe(field, value) })
}

// Close cancels the pending probe and any in-flight request.
func (c *Checker) Close() {
	c.deb.Cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Checker) probe(field Field, value string) {
	gen := c.gen.Add(1)

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	var q Query
	switch field {
	case FieldEmail:
		q.Email = value
	case FieldPhone:
		q.Phone = value
	}

	go func() {
		defer cancel()

		res, err := c.client.Check(ctx, q)
		if err != nil {
			// Best-effort probe: failures are logged, never surfaced.
			c.logger.DebugContext(ctx, "availability probe failed",
				slog.String("field", string(field)), slog.Any("error", err))
			return
		}
		if gen != c.gen.Load() {
			// A newer probe superseded this one while it was in flight.
			return
		}
		c.apply(field, res)
	}()
}

func (c *Checker) apply(field Field, res Result) {
	var status *FieldStatus
	switch field {
	case FieldEmail:
		status = res.Email
	case FieldPhone:
		status = res.Phone
	}
	if status == nil {
		return
	}

	message := takenMessages[field]
	if status.Available {
		// Only remove our own overlay; a synchronous rule error that
		// appeared meanwhile stays.
		if c.overlay.FieldError(string(field)) == message {
			c.overlay.ClearFieldError(string(field))
		}
		return
	}
	c.overlay.SetFieldError(string(field), message)
}
