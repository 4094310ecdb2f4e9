// Package availability implements the best-effort uniqueness probe behind the
// registration form: a debounced query against the auth backend confirming
// that an email or phone is not already registered.
//
// The probe never blocks typing and never hard-fails the form: network errors
// are swallowed, and only a verdict from the latest probe is ever applied —
// superseded in-flight requests are canceled and their late results
// discarded.
package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/opdbook/formkit/session"
)

// DefaultDebounce is the quiet window between the last qualifying keystroke
// and the probe.
const DefaultDebounce = 400 * time.Millisecond

var (
	// ErrUnexpectedStatus is returned when the backend answers with a
	// non-2xx status.
	ErrUnexpectedStatus = errors.New("availability: unexpected response status")

	// ErrEmptyQuery is returned when neither email nor phone is present.
	ErrEmptyQuery = errors.New("availability: query needs an email or phone")
)

// Query names the identifiers to probe. Either field may be empty.
type Query struct {
	Email string
	Phone string
}

// FieldStatus is the per-identifier verdict.
type FieldStatus struct {
	Available bool `json:"available"`
}

// Result mirrors the backend response body: a verdict per queried identifier.
type Result struct {
	Email *FieldStatus `json:"email,omitempty"`
	Phone *FieldStatus `json:"phone,omitempty"`
}

// Client issues availability lookups against the auth backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   session.Store
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithSessionStore attaches the session repository; when a session is
// present its token is sent as a bearer credential.
func WithSessionStore(store session.Store) ClientOption {
	return func(c *Client) { c.sessions = store }
}

// NewClient returns a client rooted at the backend base URL, e.g.
// "https://api.example.com".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check issues GET /api/auth/availability with the present identifiers as
// query parameters.
func (c *Client) Check(ctx context.Context, q Query) (Result, error) {
	if q.Email == "" && q.Phone == "" {
		return Result{}, ErrEmptyQuery
	}

	u, err := url.Parse(c.baseURL + "/api/auth/availability")
	if err != nil {
		return Result{}, fmt.Errorf("availability: invalid base URL: %w", err)
	}
	params := u.Query()
	if q.Email != "" {
		params.Set("email", q.Email)
	}
	if q.Phone != "" {
		params.Set("phone", q.Phone)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("availability: build request: %w", err)
	}
	c.authorize(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("availability: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("availability: decode response: %w", err)
	}
	return result, nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if c.sessions == nil {
		return
	}
	sess, err := c.sessions.Get(ctx)
	if err != nil || sess.Token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+sess.Token)
}
