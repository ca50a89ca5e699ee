package nexperiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEvaluationContext_With tests the fluent builder
func TestEvaluationContext_With(t *testing.T) {
	base := NewEvaluationContext().With("userId", "u-1")
	next := base.With("env", "prod")

	assert.Equal(t, EvaluationContext{"userId": "u-1"}, base)
	assert.Equal(t, EvaluationContext{"userId": "u-1", "env": "prod"}, next)
}

// TestEvaluationContext_WithNil tests With on a nil context
func TestEvaluationContext_WithNil(t *testing.T) {
	var ctx EvaluationContext
	assert.Equal(t, EvaluationContext{"a": 1}, ctx.With("a", 1))
}

// TestClient_SetContext_Nil tests that a nil context is stored as empty
func TestClient_SetContext_Nil(t *testing.T) {
	client, err := New()
	assert.NoError(t, err)

	client.SetContext(EvaluationContext{"a": 1})
	client.SetContext(nil)

	assert.Equal(t, EvaluationContext{}, client.Context())
}
