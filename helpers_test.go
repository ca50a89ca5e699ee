package nexperiment

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// mockResponse is what the mock server answers for one path
type mockResponse struct {
	status int
	body   string
}

// recordedRequest is a request seen by the mock server
type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// MockServer is a mock toggle service for testing
type MockServer struct {
	*httptest.Server
	mu        sync.RWMutex
	responses map[string]mockResponse
	requests  []recordedRequest
}

// NewMockServer creates a mock server that answers the auth call with
// token "tok-abc" and every other path with 404 until configured.
func NewMockServer(t *testing.T) *MockServer {
	t.Helper()

	mock := &MockServer{
		responses: map[string]mockResponse{
			"/v1/client/auth": {status: http.StatusOK, body: `{"token":"tok-abc"}`},
		},
	}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		mock.mu.Lock()
		mock.requests = append(mock.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   body,
		})
		resp, ok := mock.responses[r.URL.Path]
		mock.mu.Unlock()

		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		io.WriteString(w, resp.body)
	}))
	t.Cleanup(mock.Close)

	return mock
}

// Respond sets the answer for path
func (m *MockServer) Respond(path string, status int, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[path] = mockResponse{status: status, body: body}
}

// RespondToggle sets the answer for a feature toggle key
func (m *MockServer) RespondToggle(key string, status int, body string) {
	m.Respond("/v1/client/feature-toggle/"+key, status, body)
}

// RespondConfig sets the answer for a remote config key
func (m *MockServer) RespondConfig(key string, status int, body string) {
	m.Respond("/v1/client/remote-config/"+key, status, body)
}

// LastRequest returns the most recent request
func (m *MockServer) LastRequest(t *testing.T) recordedRequest {
	t.Helper()

	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.requests) == 0 {
		t.Fatal("mock server received no requests")
	}
	return m.requests[len(m.requests)-1]
}

// RequestCount returns how many requests were received
func (m *MockServer) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.requests)
}

// decodeBody decodes a recorded JSON body into a generic map
func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("request body is not a JSON object: %v (%s)", err, body)
	}
	return out
}

// newInitializedClient returns a client authenticated against server
func newInitializedClient(t *testing.T, server *MockServer, opts ...Option) *Client {
	t.Helper()

	client, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := client.Init(t.Context(), server.URL, "key1", "secret1"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return client
}
