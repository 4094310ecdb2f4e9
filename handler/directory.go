package handler

import (
	"context"
	"strings"
	"sync"

	"github.com/opdbook/formkit/pkg/validator"
)

// Lookup reports whether an identifier is already registered. Implementations
// back onto the patient registry; MemoryDirectory serves dev and tests.
type Lookup func(ctx context.Context, kind, value string) (taken bool, err error)

// MemoryDirectory is an in-memory identifier registry. Emails are matched
// case-insensitively; phone numbers are compared after Indian-mobile
// normalization so "+91 98765 43210" and "9876543210" collide.
type MemoryDirectory struct {
	mu     sync.RWMutex
	emails map[string]struct{}
	phones map[string]struct{}
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		emails: make(map[string]struct{}),
		phones: make(map[string]struct{}),
	}
}

// Register records an identifier as taken. Empty values are ignored.
func (d *MemoryDirectory) Register(kind, value string) {
	key := normalizeIdentifier(kind, value)
	if key == "" {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	switch kind {
	case "email":
		d.emails[key] = struct{}{}
	case "phone":
		d.phones[key] = struct{}{}
	}
}

// Lookup satisfies the Lookup contract.
func (d *MemoryDirectory) Lookup(_ context.Context, kind, value string) (bool, error) {
	key := normalizeIdentifier(kind, value)
	if key == "" {
		return false, nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	switch kind {
	case "email":
		_, taken := d.emails[key]
		return taken, nil
	case "phone":
		_, taken := d.phones[key]
		return taken, nil
	}
	return false, nil
}

func normalizeIdentifier(kind, value string) string {
	switch kind {
	case "email":
		return strings.ToLower(strings.TrimSpace(value))
	case "phone":
		return validator.NormalizeIndianMobile(value)
	}
	return ""
}
