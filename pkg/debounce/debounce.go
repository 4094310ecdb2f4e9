// Package debounce provides a single-slot trailing debouncer: each Trigger
// supersedes the previous pending task, so a burst of calls produces exactly
// one execution after the configured quiet window.
//
// Timing is delegated to a Scheduler, which tests replace with a
// ManualScheduler to make the trailing-debounce contract assertable without
// wall-clock timers.
package debounce

import (
	"sync"
	"time"
)

// Debouncer owns at most one pending task at a time. A new Trigger cancels
// and replaces the pending one (trailing semantics, not throttling). Safe for
// concurrent use.
type Debouncer struct {
	mu      sync.Mutex
	sched   Scheduler
	delay   time.Duration
	cancel  func()
	pending func()
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithScheduler replaces the default TimerScheduler.
func WithScheduler(s Scheduler) Option {
	return func(d *Debouncer) {
		if s != nil {
			d.sched = s
		}
	}
}

// New returns a trailing debouncer with the given quiet window.
func New(delay time.Duration, opts ...Option) *Debouncer {
	d := &Debouncer{
		sched: TimerScheduler{},
		delay: delay,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Trigger schedules fn to run after the quiet window, replacing any pending
// task.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		d.cancel()
	}
	d.pending = fn
	d.cancel = d.sched.Schedule(d.delay, func() {
		d.mu.Lock()
		d.cancel = nil
		d.pending = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending task, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
		d.pending = nil
	}
}

// Flush runs the pending task immediately instead of waiting out the quiet
// window. It is a no-op when nothing is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fn := d.pending
	if d.cancel != nil {
		d.cancel()
	}
	d.cancel = nil
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Pending reports whether a task is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}
