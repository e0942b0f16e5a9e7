package spapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sellerdash/sellerdash/internal/metrics"
)

const (
	defaultTokenURL = "https://api.amazon.com/auth/o2/token" //nolint:gosec // endpoint, not a credential
	refreshBuffer   = 60 * time.Second
)

// LWATokenProvider implements TokenProvider using the Login with Amazon
// refresh-token grant. It caches a single token and refreshes when the
// token is expired or within 60 seconds of expiry. The mutex also makes
// refreshes single-flight: concurrent callers block on one exchange
// instead of each issuing their own.
type LWATokenProvider struct {
	clientID     string
	clientSecret string
	refreshToken string
	tokenURL     string
	client       *http.Client

	mu      sync.Mutex
	token   string
	expiry  time.Time
	nowFunc func() time.Time // for testing
}

// AuthOption configures the LWATokenProvider.
type AuthOption func(*LWATokenProvider)

// WithTokenURL overrides the default LWA token endpoint.
func WithTokenURL(u string) AuthOption {
	return func(p *LWATokenProvider) {
		p.tokenURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) AuthOption {
	return func(p *LWATokenProvider) {
		p.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) AuthOption {
	return func(p *LWATokenProvider) {
		p.nowFunc = f
	}
}

// NewLWATokenProvider creates a token provider for the given LWA client
// credentials and long-lived refresh token.
func NewLWATokenProvider(
	clientID, clientSecret, refreshToken string,
	opts ...AuthOption,
) *LWATokenProvider {
	p := &LWATokenProvider{
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
		tokenURL:     defaultTokenURL,
		client:       &http.Client{Timeout: 10 * time.Second},
		nowFunc:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// Token returns a valid LWA access token, refreshing if necessary.
func (p *LWATokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.nowFunc().Before(p.expiry.Add(-refreshBuffer)) {
		return p.token, nil
	}

	return p.refreshLocked(ctx)
}

func (p *LWATokenProvider) refreshLocked(ctx context.Context) (string, error) {
	metrics.TokenRefreshesTotal.Inc()

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {p.refreshToken},
		"client_id":     {p.clientID},
		"client_secret": {p.clientSecret},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		metrics.TokenRefreshFailuresTotal.Inc()
		return "", fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.TokenRefreshFailuresTotal.Inc()
		return "", fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.TokenRefreshFailuresTotal.Inc()
		return "", fmt.Errorf(
			"refreshing access token: %w",
			&AuthError{StatusCode: resp.StatusCode, Body: string(body)},
		)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		metrics.TokenRefreshFailuresTotal.Inc()
		return "", fmt.Errorf("parsing token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		metrics.TokenRefreshFailuresTotal.Inc()
		return "", errors.New("token response missing access_token")
	}

	p.token = tokenResp.AccessToken
	p.expiry = p.nowFunc().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	return p.token, nil
}
