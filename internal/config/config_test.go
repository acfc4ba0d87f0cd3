package config_test

import (
	"testing"

	"github.com/slipcheck/platform/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, 30, cfg.Tenancy.CompanyTrialDays)
	assert.Equal(t, 14, cfg.Tenancy.UserTrialDays)
	assert.Equal(t, 7, cfg.Tenancy.InvitationTTLDays)
	assert.Equal(t, 25, cfg.Tenancy.MaxEmployees)
	assert.Equal(t, 50, cfg.Tenancy.MaxSites)
	assert.Equal(t, 587, cfg.SMTP["smtp"].Port)
}

func TestLoadSMTPRelay(t *testing.T) {
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USERNAME", "mailer")
	t.Setenv("SMTP_PASSWORD", "hunter2")
	t.Setenv("SMTP_FROM", "noreply@example.com")

	cfg := config.Load()

	relay, ok := cfg.SMTP["smtp"]
	require.True(t, ok)
	assert.Equal(t, "mail.example.com", relay.Host)
	assert.Equal(t, 2525, relay.Port)
	assert.Equal(t, "mailer", relay.Username)
	assert.Equal(t, "hunter2", relay.Password)
	assert.Equal(t, "noreply@example.com", relay.From)
}
