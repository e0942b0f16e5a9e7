// Package spapi provides the authenticated, rate-limited client core for
// the Amazon Selling Partner API: LWA token management, SigV4 request
// signing, per-category throttling, and a typed operation facade, all
// behind interfaces for testability.
package spapi

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// RequestDescriptor describes one outbound SP-API call. It is built per
// call and never mutated by the executor.
type RequestDescriptor struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Headers are merged into the final request after the standard
	// headers, so callers can override Content-Type if needed.
	Headers map[string]string
	// Category names the rate-limit bucket for this call. When empty,
	// the executor falls back to the first path segment.
	Category string
}

// ResponseEnvelope is the normalized outcome of one call. Every failure
// mode (auth, transport, upstream) lands here rather than in a returned
// error, so callers handle all outcomes uniformly.
type ResponseEnvelope struct {
	Success bool `json:"success"`
	// Data holds the response body when it parsed as JSON; nil otherwise.
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
	// StatusCode is zero when no HTTP response was received.
	StatusCode int `json:"status_code,omitempty"`
	// Cause holds the typed error behind a failed call (AuthError,
	// TransportError, UpstreamError), so callers can branch with
	// errors.As instead of parsing Error. Never serialized.
	Cause error `json:"-"`
}

// TokenProvider supplies a valid LWA access token.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// CredentialsResolver supplies AWS signing credentials. Implementations
// never fail: empty credentials mean the request goes out unsigned.
type CredentialsResolver interface {
	Resolve(ctx context.Context) aws.Credentials
}

// Throttler gates outbound calls per rate-limit category.
type Throttler interface {
	Wait(ctx context.Context, category string) error
}

// Client is the typed operation facade over an Executor. Each operation
// builds a RequestDescriptor and delegates to Execute.
type Client struct {
	exec *Executor
}

// NewClient creates the typed SP-API facade.
func NewClient(exec *Executor) *Client {
	return &Client{exec: exec}
}
