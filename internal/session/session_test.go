package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	s := New()

	state := s.Snapshot()
	assert.Empty(t, state.BaseURL)
	assert.Empty(t, state.Token)
	require.NotNil(t, state.Context)
	assert.Empty(t, state.Context)
}

func TestAuthenticated_Overwrites(t *testing.T) {
	s := New()

	s.Authenticated("https://a.example.com", "tok-1")
	s.Authenticated("https://b.example.com", "tok-2")

	state := s.Snapshot()
	assert.Equal(t, "https://b.example.com", state.BaseURL)
	assert.Equal(t, "tok-2", state.Token)
}

func TestSetContext_ReplacesWithoutMerge(t *testing.T) {
	s := New()

	s.SetContext(map[string]any{"a": 1, "b": 2})
	s.SetContext(map[string]any{"c": 3})

	assert.Equal(t, map[string]any{"c": 3}, s.Snapshot().Context)
}

func TestSetContext_Nil(t *testing.T) {
	s := New()
	s.SetContext(map[string]any{"a": 1})

	s.SetContext(nil)

	ctx := s.Snapshot().Context
	require.NotNil(t, ctx)
	assert.Empty(t, ctx)
}

func TestSetContext_CopiesInput(t *testing.T) {
	s := New()
	in := map[string]any{"a": 1}

	s.SetContext(in)
	in["a"] = 2
	in["b"] = 3

	assert.Equal(t, map[string]any{"a": 1}, s.Snapshot().Context)
}

func TestSnapshot_IsolatedFromSession(t *testing.T) {
	s := New()
	s.SetContext(map[string]any{"a": 1})

	snap := s.Snapshot()
	snap.Context["a"] = 99

	assert.Equal(t, 1, s.Snapshot().Context["a"])
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := New()
	s.SetContext(map[string]any{"i": -1})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			s.SetContext(map[string]any{"i": i})
		}(i)
		go func(i int) {
			defer wg.Done()
			s.Authenticated("https://api.example.com", fmt.Sprintf("tok-%d", i))
		}(i)
		go func() {
			defer wg.Done()
			state := s.Snapshot()
			assert.Len(t, state.Context, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, "https://api.example.com", s.Snapshot().BaseURL)
}
