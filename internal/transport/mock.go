package transport

import (
	"context"
	"maps"
	"sync"
)

// MockClient is a mock implementation of Client for testing
type MockClient struct {
	mu sync.RWMutex

	// Mock behaviors
	AuthenticateFunc  func(ctx context.Context, baseURL string, creds Credentials) (*AuthResponse, error)
	FeatureToggleFunc func(ctx context.Context, target Target, key string, evalCtx map[string]any) (*ToggleResponse, error)
	RemoteConfigFunc  func(ctx context.Context, target Target, key string, evalCtx map[string]any) (*ConfigResponse, error)

	// Call tracking
	AuthenticateCalls  int
	FeatureToggleCalls int
	RemoteConfigCalls  int

	// Last arguments seen by the evaluation calls
	LastTarget  Target
	LastKey     string
	LastContext map[string]any
}

// NewMockClient creates a new mock client
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Authenticate returns an empty token unless AuthenticateFunc is set
func (m *MockClient) Authenticate(ctx context.Context, baseURL string, creds Credentials) (*AuthResponse, error) {
	m.mu.Lock()
	m.AuthenticateCalls++
	m.mu.Unlock()

	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, baseURL, creds)
	}

	return &AuthResponse{}, nil
}

// FeatureToggle returns a disabled toggle unless FeatureToggleFunc is set
func (m *MockClient) FeatureToggle(ctx context.Context, target Target, key string, evalCtx map[string]any) (*ToggleResponse, error) {
	m.record(target, key, evalCtx, &m.FeatureToggleCalls)

	if m.FeatureToggleFunc != nil {
		return m.FeatureToggleFunc(ctx, target, key, evalCtx)
	}

	return &ToggleResponse{}, nil
}

// RemoteConfig returns an empty value unless RemoteConfigFunc is set
func (m *MockClient) RemoteConfig(ctx context.Context, target Target, key string, evalCtx map[string]any) (*ConfigResponse, error) {
	m.record(target, key, evalCtx, &m.RemoteConfigCalls)

	if m.RemoteConfigFunc != nil {
		return m.RemoteConfigFunc(ctx, target, key, evalCtx)
	}

	return &ConfigResponse{}, nil
}

func (m *MockClient) record(target Target, key string, evalCtx map[string]any, counter *int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	*counter++
	m.LastTarget = target
	m.LastKey = key
	m.LastContext = maps.Clone(evalCtx)
}

// Reset resets the call counters and recorded arguments
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AuthenticateCalls = 0
	m.FeatureToggleCalls = 0
	m.RemoteConfigCalls = 0
	m.LastTarget = Target{}
	m.LastKey = ""
	m.LastContext = nil
}

// AssertCalled asserts methods were called expected times
func (m *MockClient) AssertCalled(t interface{ Errorf(string, ...interface{}) }, method string, expected int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var actual int
	switch method {
	case "Authenticate":
		actual = m.AuthenticateCalls
	case "FeatureToggle":
		actual = m.FeatureToggleCalls
	case "RemoteConfig":
		actual = m.RemoteConfigCalls
	default:
		t.Errorf("unknown method: %s", method)
		return
	}

	if actual != expected {
		t.Errorf("%s called %d times, expected %d", method, actual, expected)
	}
}
