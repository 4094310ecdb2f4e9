// Package session is the single funnel for the signed-in user's token and
// identity. Components never read ambient storage directly; they hold a Store
// and tests substitute an in-memory one.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNoSession is returned by Get when nobody is signed in.
var ErrNoSession = errors.New("session: no active session")

// Session is the signed-in state carried between requests.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// New mints a session for a user with a fresh opaque token.
func New(userID string) Session {
	return Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
}

// Store is the session repository: one active session per client.
type Store interface {
	// Get returns the active session or ErrNoSession.
	Get(ctx context.Context) (Session, error)

	// Set replaces the active session.
	Set(ctx context.Context, s Session) error

	// Clear signs out.
	Clear(ctx context.Context) error
}

// MemoryStore is the in-memory Store used by tests and the dev service.
type MemoryStore struct {
	mu      sync.RWMutex
	current *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(_ context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return Session{}, ErrNoSession
	}
	return *m.current, nil
}

func (m *MemoryStore) Set(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = &s
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	return nil
}
