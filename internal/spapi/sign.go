package spapi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/sellerdash/sellerdash/internal/metrics"
)

const (
	signingService  = "execute-api"
	sessionDuration = int32(3600)
	sessionBuffer   = 60 * time.Second
	roleSessionName = "sellerdash"
)

// AssumeRoleAPI is the subset of the STS client used to obtain
// short-lived session credentials.
type AssumeRoleAPI interface {
	AssumeRole(
		ctx context.Context,
		params *sts.AssumeRoleInput,
		optFns ...func(*sts.Options),
	) (*sts.AssumeRoleOutput, error)
}

// SigningResolver implements CredentialsResolver. With only a static key
// pair configured it returns those keys directly. With a role ARN it
// exchanges the static keys for session credentials via STS AssumeRole,
// caching the session until 60 seconds before its expiry; any exchange
// failure falls back to the static pair. With nothing configured it
// returns empty credentials, which the executor treats as "do not sign".
type SigningResolver struct {
	accessKeyID     string
	secretAccessKey string
	roleARN         string
	stsClient       AssumeRoleAPI

	mu            sync.Mutex
	session       aws.Credentials
	sessionExpiry time.Time
	nowFunc       func() time.Time // for testing
}

// SigningOption configures the SigningResolver.
type SigningOption func(*SigningResolver)

// WithRoleARN enables the STS AssumeRole exchange for the given role.
func WithRoleARN(arn string) SigningOption {
	return func(r *SigningResolver) {
		r.roleARN = arn
	}
}

// WithSTSClient overrides the STS client used for AssumeRole.
func WithSTSClient(c AssumeRoleAPI) SigningOption {
	return func(r *SigningResolver) {
		r.stsClient = c
	}
}

// WithSigningNowFunc overrides the time function for testing.
func WithSigningNowFunc(f func() time.Time) SigningOption {
	return func(r *SigningResolver) {
		r.nowFunc = f
	}
}

// NewSigningResolver creates a resolver for the given static key pair.
// Both keys may be empty, in which case requests go unsigned.
func NewSigningResolver(
	accessKeyID, secretAccessKey string,
	opts ...SigningOption,
) *SigningResolver {
	r := &SigningResolver{
		accessKeyID:     accessKeyID,
		secretAccessKey: secretAccessKey,
		nowFunc:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns signing credentials. It never fails.
func (r *SigningResolver) Resolve(ctx context.Context) aws.Credentials {
	if r.roleARN == "" || r.stsClient == nil {
		return r.static()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session.HasKeys() && r.nowFunc().Before(r.sessionExpiry.Add(-sessionBuffer)) {
		return r.session
	}

	out, err := r.stsClient.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(r.roleARN),
		RoleSessionName: aws.String(roleSessionName),
		DurationSeconds: aws.Int32(sessionDuration),
	})
	if err != nil || out.Credentials == nil {
		metrics.SigningFallbacksTotal.Inc()
		return r.static()
	}

	r.session = aws.Credentials{
		AccessKeyID:     aws.ToString(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(out.Credentials.SecretAccessKey),
		SessionToken:    aws.ToString(out.Credentials.SessionToken),
	}
	r.sessionExpiry = aws.ToTime(out.Credentials.Expiration)

	return r.session
}

func (r *SigningResolver) static() aws.Credentials {
	return aws.Credentials{
		AccessKeyID:     r.accessKeyID,
		SecretAccessKey: r.secretAccessKey,
	}
}

// signRequest computes a SigV4 signature over the request and attaches
// the resulting headers. The payload hash must cover the exact bytes
// sent as the body.
func signRequest(
	ctx context.Context,
	req *http.Request,
	creds aws.Credentials,
	body []byte,
	region string,
	signingTime time.Time,
) error {
	sum := sha256.Sum256(body)
	payloadHash := hex.EncodeToString(sum[:])

	signer := v4.NewSigner()
	return signer.SignHTTP(
		ctx,
		creds,
		req,
		payloadHash,
		signingService,
		region,
		signingTime,
	)
}
