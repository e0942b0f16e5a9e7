package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sellerdash/sellerdash/internal/config"
)

func TestCredentials_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		creds       config.Credentials
		wantValid   bool
		wantMissing []string
	}{
		{
			name: "all required present",
			creds: config.Credentials{
				ClientID:     "id",
				ClientSecret: "secret",
				RefreshToken: "refresh",
				SellerID:     "seller",
			},
			wantValid: true,
		},
		{
			name:      "everything missing",
			creds:     config.Credentials{},
			wantValid: false,
			wantMissing: []string{
				"LWA_CLIENT_ID",
				"LWA_CLIENT_SECRET",
				"REFRESH_TOKEN",
				"SELLER_ID",
			},
		},
		{
			// Missing keys must come back in declaration order regardless
			// of which ones are absent.
			name: "partial missing keeps order",
			creds: config.Credentials{
				ClientID:     "id",
				ClientSecret: "secret",
			},
			wantValid:   false,
			wantMissing: []string{"REFRESH_TOKEN", "SELLER_ID"},
		},
		{
			name: "signing keys are not required",
			creds: config.Credentials{
				ClientID:     "id",
				ClientSecret: "secret",
				RefreshToken: "refresh",
				SellerID:     "seller",
			},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := tt.creds.Validate()
			assert.Equal(t, tt.wantValid, report.Valid)
			assert.Equal(t, tt.wantMissing, report.Missing)
		})
	}
}

func TestCredentials_HasSigningKeys(t *testing.T) {
	t.Parallel()

	c := config.Credentials{}
	assert.False(t, c.HasSigningKeys())

	c.AccessKeyID = "AKIA-key"
	assert.False(t, c.HasSigningKeys())

	c.SecretAccessKey = "secret"
	assert.True(t, c.HasSigningKeys())
}
