package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "Valid Development",
			cfg:  Config{Port: "8080", JWTSecret: "dev-secret", Env: "development"},
		},
		{
			name:    "Missing Port",
			cfg:     Config{JWTSecret: "dev-secret"},
			wantErr: "PORT is required",
		},
		{
			name:    "Missing JWT Secret",
			cfg:     Config{Port: "8080"},
			wantErr: "JWT_SECRET is required",
		},
		{
			name:    "Production Default Secret Rejected",
			cfg:     Config{Port: "8080", JWTSecret: "your-secret-key-change-in-production", Env: "production"},
			wantErr: "JWT_SECRET must be changed",
		},
		{
			name:    "Production Short Secret Rejected",
			cfg:     Config{Port: "8080", JWTSecret: "short", Env: "production"},
			wantErr: "at least 32 characters",
		},
		{
			name:    "Production Weak DB Password Rejected",
			cfg:     Config{Port: "8080", JWTSecret: "0123456789abcdef0123456789abcdef", DBPassword: "password", Env: "production"},
			wantErr: "DB_PASSWORD",
		},
		{
			name: "Valid Production",
			cfg: Config{
				Port:       "8080",
				JWTSecret:  "0123456789abcdef0123456789abcdef",
				DBPassword: "s3nha-f0rte-para-producao",
				DBSSLMode:  "require",
				Env:        "production",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
