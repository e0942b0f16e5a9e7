package spapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sellerdash/sellerdash/internal/metrics"
)

const (
	defaultEndpoint = "https://sellingpartnerapi-na.amazon.com"
	defaultRegion   = "us-east-1"
	defaultTimeout  = 30 * time.Second
)

// Executor performs one authenticated SP-API call per Execute: throttle,
// obtain token, sign, send, normalize. It makes exactly one attempt;
// retry policy belongs to the caller.
type Executor struct {
	endpoint string
	region   string
	client   *http.Client
	tokens   TokenProvider
	signer   CredentialsResolver
	limiter  Throttler
	nowFunc  func() time.Time // for testing (signing time)
}

// ExecutorOption configures the Executor.
type ExecutorOption func(*Executor)

// WithEndpoint overrides the default SP-API endpoint.
func WithEndpoint(u string) ExecutorOption {
	return func(e *Executor) {
		e.endpoint = strings.TrimRight(u, "/")
	}
}

// WithRegion overrides the default signing region.
func WithRegion(r string) ExecutorOption {
	return func(e *Executor) {
		e.region = r
	}
}

// WithExecutorHTTPClient overrides the default HTTP client.
func WithExecutorHTTPClient(hc *http.Client) ExecutorOption {
	return func(e *Executor) {
		e.client = hc
	}
}

// WithTimeout overrides the default 30s HTTP timeout.
func WithTimeout(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.client.Timeout = d
	}
}

// WithExecutorNowFunc overrides the time function for testing.
func WithExecutorNowFunc(f func() time.Time) ExecutorOption {
	return func(e *Executor) {
		e.nowFunc = f
	}
}

// NewExecutor creates an executor composing the token provider, signing
// resolver, and throttler. Any of the three may be nil, in which case
// that step is skipped (useful in tests and signature-less deployments).
func NewExecutor(
	tokens TokenProvider,
	signer CredentialsResolver,
	limiter Throttler,
	opts ...ExecutorOption,
) *Executor {
	e := &Executor{
		endpoint: defaultEndpoint,
		region:   defaultRegion,
		client:   &http.Client{Timeout: defaultTimeout},
		tokens:   tokens,
		signer:   signer,
		limiter:  limiter,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute performs one SP-API call described by desc. Auth, transport,
// and upstream failures are reported inside the envelope; the returned
// error is non-nil only when the context is done or the request could
// not be constructed.
func (e *Executor) Execute(
	ctx context.Context,
	desc RequestDescriptor,
) (*ResponseEnvelope, error) {
	category := desc.Category
	if category == "" {
		category = firstPathSegment(desc.Path)
	}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx, category); err != nil {
			return nil, fmt.Errorf("throttling %q: %w", category, err)
		}
	}

	var bodyBytes []byte
	if desc.Body != nil {
		data, err := json.Marshal(desc.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyBytes = data
	}

	req, err := e.buildRequest(ctx, desc, bodyBytes)
	if err != nil {
		return nil, err
	}

	if e.tokens != nil {
		token, err := e.tokens.Token(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("getting access token: %w", err)
			}
			e.countCall(category, "auth_error")
			return &ResponseEnvelope{Error: err.Error(), Cause: err}, nil
		}
		req.Header.Set("x-amz-access-token", token)
	}

	if e.signer != nil {
		creds := e.signer.Resolve(ctx)
		if creds.HasKeys() {
			if err := signRequest(ctx, req, creds, bodyBytes, e.region, e.nowFunc().UTC()); err != nil {
				e.countCall(category, "sign_error")
				return &ResponseEnvelope{Error: "signing request: " + err.Error(), Cause: err}, nil
			}
		}
	}

	resp, err := e.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("executing request: %w", err)
		}
		e.countCall(category, "transport_error")
		terr := &TransportError{Err: err}
		return &ResponseEnvelope{Error: terr.Error(), Cause: terr}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		e.countCall(category, "transport_error")
		terr := &TransportError{Err: err}
		return &ResponseEnvelope{Error: terr.Error(), Cause: terr}, nil
	}

	e.countCall(category, strconv.Itoa(resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(body)
		if msg == "" {
			msg = resp.Status
		}
		ue := &UpstreamError{StatusCode: resp.StatusCode, Body: msg}
		return &ResponseEnvelope{
			Error:      msg,
			StatusCode: resp.StatusCode,
			Cause:      ue,
		}, nil
	}

	env := &ResponseEnvelope{
		Success:    true,
		StatusCode: resp.StatusCode,
	}
	if json.Valid(body) {
		env.Data = body
	}
	return env, nil
}

func (e *Executor) buildRequest(
	ctx context.Context,
	desc RequestDescriptor,
	body []byte,
) (*http.Request, error) {
	u := e.endpoint + desc.Path
	if len(desc.Query) > 0 {
		// url.Values.Encode sorts keys, so identical descriptors always
		// produce byte-identical query strings.
		u += "?" + desc.Query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range desc.Headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func (e *Executor) countCall(category, status string) {
	metrics.SPAPICallsTotal.WithLabelValues(category, status).Inc()
}

// firstPathSegment derives a fallback rate-limit category from a path
// like "/orders/v0/orders".
func firstPathSegment(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	if trimmed == "" {
		return DefaultCategory
	}
	return trimmed
}
