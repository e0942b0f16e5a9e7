package config

// Credentials holds the secrets for SP-API access. Values normally come
// from environment variables via ${VAR} substitution in the YAML file.
// The AWS key pair and role ARN are optional: without them requests go
// out unsigned, which some deployment targets accept.
type Credentials struct {
	ClientID        string `yaml:"client_id"`
	ClientSecret    string `yaml:"client_secret"`
	RefreshToken    string `yaml:"refresh_token"`
	SellerID        string `yaml:"seller_id"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	RoleARN         string `yaml:"role_arn"`
}

// RequiredCredentialKeys names the secrets that must be present before
// any SP-API call is attempted, in reporting order.
var RequiredCredentialKeys = []string{
	"LWA_CLIENT_ID",
	"LWA_CLIENT_SECRET",
	"REFRESH_TOKEN",
	"SELLER_ID",
}

// ValidationReport is the result of a credential pre-flight check.
type ValidationReport struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing,omitempty"`
}

// Validate checks that every required credential is present. It reports
// missing keys in RequiredCredentialKeys order rather than failing, so
// callers can present actionable diagnostics.
func (c *Credentials) Validate() ValidationReport {
	values := map[string]string{
		"LWA_CLIENT_ID":     c.ClientID,
		"LWA_CLIENT_SECRET": c.ClientSecret,
		"REFRESH_TOKEN":     c.RefreshToken,
		"SELLER_ID":         c.SellerID,
	}

	report := ValidationReport{Valid: true}
	for _, key := range RequiredCredentialKeys {
		if values[key] == "" {
			report.Valid = false
			report.Missing = append(report.Missing, key)
		}
	}
	return report
}

// HasSigningKeys reports whether a static AWS key pair is configured.
func (c *Credentials) HasSigningKeys() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}
