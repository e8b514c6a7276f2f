package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5050, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:5050", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.Equal(t, "Alertdash", cfg.Mail.SenderName)
	assert.Equal(t, "clients.txt", cfg.Recipients.File)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ALERTDASH_MAIL_SENDER_ADDRESS", "ops@example.com")
	t.Setenv("ALERTDASH_MAIL_SENDER_PASSWORD", "app-password")
	t.Setenv("ALERTDASH_RECIPIENTS_FILE", "/var/lib/alertdash/clients.txt")
	t.Setenv("ALERTDASH_SERVER_PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ops@example.com", cfg.Mail.SenderAddress)
	assert.Equal(t, "app-password", cfg.Mail.SenderPassword)
	assert.Equal(t, "/var/lib/alertdash/clients.txt", cfg.Recipients.File)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	var cfg Config
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mail.sender_address")
	assert.Contains(t, err.Error(), "mail.sender_password")

	cfg.Mail.SenderAddress = "ops@example.com"
	err = cfg.Validate()
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "mail.sender_address")
	assert.Contains(t, err.Error(), "mail.sender_password")

	cfg.Mail.SenderPassword = "app-password"
	assert.NoError(t, cfg.Validate())
}

func TestEnsureSecretKey(t *testing.T) {
	var cfg Config

	generated, err := cfg.EnsureSecretKey()
	require.NoError(t, err)
	assert.True(t, generated)
	assert.Len(t, cfg.Security.SecretKey, 64)

	// A configured key is left alone
	key := cfg.Security.SecretKey
	generated, err = cfg.EnsureSecretKey()
	require.NoError(t, err)
	assert.False(t, generated)
	assert.Equal(t, key, cfg.Security.SecretKey)
}
