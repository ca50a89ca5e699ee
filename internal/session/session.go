// Package session holds the mutable state of a client: the base URL and
// bearer token set by authentication, and the evaluation context sent on
// every fetch.
//
// Access follows a single-writer/many-readers discipline behind an RWMutex.
// Readers take a Snapshot so that one request always sees a consistent
// base URL, token and context even while the state is being replaced.
package session

import (
	"maps"
	"sync"
)

// State is an immutable view of the session
type State struct {
	BaseURL string
	Token   string
	Context map[string]any
}

// Session is the mutable state owned by one client
type Session struct {
	mu      sync.RWMutex
	baseURL string
	token   string
	evalCtx map[string]any
}

// New creates an empty session
func New() *Session {
	return &Session{evalCtx: map[string]any{}}
}

// Authenticated stores the base URL and token of a successful auth call,
// overwriting any previous values.
func (s *Session) Authenticated(baseURL, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.baseURL = baseURL
	s.token = token
}

// SetContext replaces the evaluation context wholesale. The map is copied.
func (s *Session) SetContext(evalCtx map[string]any) {
	next := maps.Clone(evalCtx)
	if next == nil {
		next = map[string]any{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evalCtx = next
}

// Snapshot returns the current state. The context map is a copy.
func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		BaseURL: s.baseURL,
		Token:   s.token,
		Context: maps.Clone(s.evalCtx),
	}
}
