package transport

import (
	"encoding/json"
	"errors"
)

// =======================
// REQUESTS
// =======================

// Credentials are sent as headers on the auth call
type Credentials struct {
	APIKey    string
	APISecret string
}

// Target identifies the server and bearer token used by evaluation calls
type Target struct {
	BaseURL string
	Token   string
}

// evaluationRequest is the body shared by toggle and remote-config calls
type evaluationRequest struct {
	Context map[string]any `json:"context"`
}

// =======================
// RESPONSES
// =======================

// AuthResponse is the parsed body of POST /v1/client/auth
type AuthResponse struct {
	Token string
}

// ToggleResponse is the parsed body of POST /v1/client/feature-toggle/{key}
type ToggleResponse struct {
	ObjectID      string
	AppliedRuleID string
	Value         bool
}

// ConfigResponse is the parsed body of POST /v1/client/remote-config/{key}.
// Value is still JSON-encoded; the server embeds the document as a string.
type ConfigResponse struct {
	ObjectID      string
	AppliedRuleID string
	Value         string
}

// -----------------------------------------------------------------------------
// Lenient field extraction
// -----------------------------------------------------------------------------

// object is a top-level JSON object whose fields are read with defaults
type object map[string]json.RawMessage

func parseObject(body []byte) (object, error) {
	var obj object
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, &ResponseError{Err: err}
	}
	// "null" decodes without error into a nil map
	if obj == nil {
		return nil, &ResponseError{Err: errors.New("response body is not a JSON object")}
	}
	return obj, nil
}

// str returns the field as a string, or "" if it is missing or not a string
func (o object) str(key string) string {
	raw, ok := o[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// boolean returns the field as a bool, or false if it is missing or not a bool
func (o object) boolean(key string) bool {
	raw, ok := o[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

func authFromObject(o object) AuthResponse {
	return AuthResponse{Token: o.str("token")}
}

func toggleFromObject(o object) ToggleResponse {
	return ToggleResponse{
		ObjectID:      o.str("objectId"),
		AppliedRuleID: o.str("appliedRuleId"),
		Value:         o.boolean("value"),
	}
}

func configFromObject(o object) ConfigResponse {
	return ConfigResponse{
		ObjectID:      o.str("objectId"),
		AppliedRuleID: o.str("appliedRuleId"),
		Value:         o.str("value"),
	}
}
