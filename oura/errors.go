package oura

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// maxErrorBody caps how much of a response body is echoed in error strings.
const maxErrorBody = 1000

var (
	// ErrUnknownResource is returned when a resource name is not in the endpoint table.
	ErrUnknownResource = errors.New("oura: unknown resource")

	// ErrUnauthorized matches, via errors.Is, any *HTTPStatusError carrying
	// 401 Unauthorized or 403 Forbidden.
	ErrUnauthorized = errors.New("oura: unauthorized")

	errNotAbsolute = errors.New("url must be absolute")
)

// URLError reports a request URL that could not be built, either because the
// base URL is malformed or because a parameter value cannot be encoded.
type URLError struct {
	Param string // Query parameter or URL component at fault
	Value string
	Err   error
}

// Error implements the error interface.
func (e *URLError) Error() string {
	return fmt.Sprintf("oura: cannot build request url: invalid %s %q: %v", e.Param, e.Value, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *URLError) Unwrap() error {
	return e.Err
}

// NetworkError reports a request that was not sent or that produced no
// response, including timeouts and context cancellation.
type NetworkError struct {
	URL string // Request URL with the access token redacted
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("oura: request to %s failed: %v", e.URL, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request failed because a deadline was exceeded.
func (e *NetworkError) Timeout() bool {
	var t interface{ Timeout() bool }
	if errors.As(e.Err, &t) && t.Timeout() {
		return true
	}
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// HTTPStatusError represents a non-2xx response from the Oura API. The body
// is kept verbatim for diagnostics and never decoded against a schema.
type HTTPStatusError struct {
	StatusCode int
	Body       []byte
	URL        string // Request URL with the access token redacted
}

// Error implements the error interface. Long bodies are truncated.
func (e *HTTPStatusError) Error() string {
	body := string(e.Body)
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	return fmt.Sprintf("oura api error: %d %s at %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL, body)
}

// Is lets errors.Is(err, ErrUnauthorized) match authentication failures.
func (e *HTTPStatusError) Is(target error) bool {
	if target != ErrUnauthorized {
		return false
	}
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// DecodeError reports a 2xx response body that does not match the schema of
// the requested resource: invalid JSON, a field of the wrong type, or a
// missing required field.
type DecodeError struct {
	Resource Resource
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("oura: decode %s response: %v", e.Resource, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a required JSON field that was absent or null.
type MissingFieldError struct {
	Path string // JSON path such as "sleep[0].hr_5min[3]"
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	if e.Path == "" {
		return "required object is missing or null"
	}
	return fmt.Sprintf("required field %q is missing or null", e.Path)
}

// redactURL returns u as a string with the access token replaced, so that
// request URLs can be carried in errors safely.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	q := u.Query()
	if !q.Has(tokenParam) {
		return u.String()
	}
	q.Set(tokenParam, "REDACTED")
	redacted := *u
	redacted.RawQuery = q.Encode()
	return redacted.String()
}
