package nexperiment

import "maps"

// EvaluationContext holds the attributes sent with every fetch. The server
// uses them to pick the rule that applies (e.g. user id, environment).
type EvaluationContext map[string]any

// NewEvaluationContext creates an empty context.
func NewEvaluationContext() EvaluationContext {
	return EvaluationContext{}
}

// With returns a copy of the context with key set to value (fluent interface).
func (c EvaluationContext) With(key string, value any) EvaluationContext {
	next := maps.Clone(c)
	if next == nil {
		next = EvaluationContext{}
	}
	next[key] = value
	return next
}

// Toggle is the result of evaluating a boolean feature toggle.
type Toggle struct {
	// ObjectID identifies the evaluated object
	ObjectID string

	// AppliedRuleID identifies the rule that produced Value; empty if no
	// rule matched
	AppliedRuleID string

	Value bool
}

// RemoteConfig is the result of evaluating a typed remote-configuration value.
type RemoteConfig[T any] struct {
	ObjectID      string
	AppliedRuleID string
	Value         T
}
