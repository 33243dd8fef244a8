package mail_test

import (
	"bloom/config"
	"bloom/infras/mail"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Mail.From = "studio@bloom.test"
	cfg.Mail.FromName = "Bloom Studio"

	return cfg
}

func TestBuildMessage(t *testing.T) {
	msg, err := mail.BuildMessage(newConfig(), mail.Mail{
		To:      "ana@example.com",
		Subject: "Konfirmasi Booking",
		Body:    "Halo Ana",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "ana@example.com")
	assert.Contains(t, raw, "studio@bloom.test")
	assert.Contains(t, raw, "Konfirmasi Booking")
	assert.Contains(t, raw, "Halo Ana")
}

func TestBuildMessageInvalidAddress(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() *config.Config
		to   string
	}{
		{name: "recipient", cfg: newConfig, to: "not an address"},
		{
			name: "sender",
			cfg: func() *config.Config {
				cfg := newConfig()
				cfg.Mail.From = "@@"

				return cfg
			},
			to: "ana@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mail.BuildMessage(tt.cfg(), mail.Mail{To: tt.to, Subject: "s", Body: "b"})
			assert.Error(t, err)
		})
	}
}
