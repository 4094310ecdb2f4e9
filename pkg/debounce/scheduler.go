package debounce

import (
	"sort"
	"sync"
	"time"
)

// Scheduler schedules a function to run after a delay and returns a cancel
// function. Cancel is a no-op once the function has started running.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) (cancel func())
}

// TimerScheduler runs scheduled functions on real timers. It is the
// production scheduler.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}

// ManualScheduler is a deterministic Scheduler for tests: nothing runs until
// the virtual clock is advanced, so debounce behavior can be asserted without
// sleeping.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	next  int
	tasks []*manualTask
}

type manualTask struct {
	id       int
	deadline time.Duration
	fn       func()
	canceled bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(delay time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := &manualTask{id: s.next, deadline: s.now + delay, fn: fn}
	s.next++
	s.tasks = append(s.tasks, task)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		task.canceled = true
	}
}

// Advance moves the virtual clock forward and runs every due, uncanceled task
// in deadline order. Tasks run without the scheduler lock held, so they may
// schedule or cancel further tasks.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	now := s.now
	s.mu.Unlock()

	for {
		task := s.popDue(now)
		if task == nil {
			return
		}
		task.fn()
	}
}

// Pending reports how many uncanceled tasks are waiting.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, task := range s.tasks {
		if !task.canceled {
			n++
		}
	}
	return n
}

func (s *ManualScheduler) popDue(now time.Duration) *manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].deadline == s.tasks[j].deadline {
			return s.tasks[i].id < s.tasks[j].id
		}
		return s.tasks[i].deadline < s.tasks[j].deadline
	})

	for i, task := range s.tasks {
		if task.canceled {
			continue
		}
		if task.deadline <= now {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return task
		}
		break
	}

	// Drop canceled tasks so the slice does not grow unbounded.
	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if !task.canceled {
			kept = append(kept, task)
		}
	}
	s.tasks = kept
	return nil
}
