package transport

import (
	"errors"
	"fmt"
)

// HTTPError represents a non-2xx response
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// ResponseError represents a 2xx response whose body could not be parsed
type ResponseError struct {
	Err error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("malformed response body: %v", e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// IsHTTPError reports whether err carries a non-2xx status
func IsHTTPError(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr)
}

// IsResponseError reports whether err is a malformed success body
func IsResponseError(err error) bool {
	var respErr *ResponseError
	return errors.As(err, &respErr)
}
