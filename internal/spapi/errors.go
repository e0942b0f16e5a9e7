package spapi

import "fmt"

// AuthError reports a rejected LWA token exchange. It carries the
// identity provider's HTTP status and raw error body.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("token exchange rejected (status %d): %s", e.StatusCode, e.Body)
}

// UpstreamError reports a non-2xx response from the SP-API. The
// executor attaches it to the envelope's Cause so callers can pull the
// status code and raw body with errors.As.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("SP-API error (status %d): %s", e.StatusCode, e.Body)
}

// TransportError reports a network-level failure with no HTTP status.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
