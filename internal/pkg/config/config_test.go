//go:build unit

package config_test

import (
	"testing"

	"transfer-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "test config is valid", mutate: func(*config.Config) {}},
		{
			name:    "empty webhook secret",
			mutate:  func(c *config.Config) { c.Stripe.WebhookSecret = "" },
			wantErr: "STRIPE_WEBHOOK_SECRET",
		},
		{
			name:    "blank webhook secret",
			mutate:  func(c *config.Config) { c.Stripe.WebhookSecret = "   " },
			wantErr: "STRIPE_WEBHOOK_SECRET",
		},
		{
			name:    "empty secret key",
			mutate:  func(c *config.Config) { c.Stripe.SecretKey = "" },
			wantErr: "STRIPE_SECRET_KEY",
		},
		{
			name:    "zero send attempts",
			mutate:  func(c *config.Config) { c.Worker.SendAttempts = 0 },
			wantErr: "WORKER_SEND_ATTEMPTS",
		},
		{
			name:    "zero max attempts",
			mutate:  func(c *config.Config) { c.Worker.MaxAttempts = 0 },
			wantErr: "WORKER_MAX_ATTEMPTS",
		},
		{
			name:    "zero batch size",
			mutate:  func(c *config.Config) { c.Worker.BatchSize = 0 },
			wantErr: "WORKER_BATCH_SIZE",
		},
		{
			name:    "non-positive body cap",
			mutate:  func(c *config.Config) { c.Stripe.MaxBodyBytes = 0 },
			wantErr: "STRIPE_WEBHOOK_MAX_BODY_BYTES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "bookings")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")
	t.Setenv("PUBLIC_BASE_URL", "http://localhost:3000")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults apply", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, uint(3), cfg.Worker.SendAttempts)
		assert.Equal(t, "opportunistic", cfg.Mail.SMTPTLSPolicy)
		assert.Equal(t, "localhost:587", cfg.Mail.SMTPAddr())
	})

	t.Run("set but empty webhook secret is rejected", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("STRIPE_WEBHOOK_SECRET", "")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "STRIPE_WEBHOOK_SECRET")
	})

	t.Run("zero send attempts is rejected", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("WORKER_SEND_ATTEMPTS", "0")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WORKER_SEND_ATTEMPTS")
	})
}
