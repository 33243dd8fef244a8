package twilio_test

import (
	"bloom/config"
	"bloom/infras/otel/mocks"
	"bloom/infras/twilio"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestE164(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0812-3456-789", want: "+628123456789"},
		{in: "+62 812 3456 789", want: "+628123456789"},
		{in: "628123456789", want: "+628123456789"},
		{in: "(021) 555.1234", want: "+62215551234"},
		{in: "12345", want: "12345"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, twilio.E164(tt.in))
		})
	}
}

func TestRoute(t *testing.T) {
	cfg := &config.Config{}
	cfg.SMS.From = "+15550001"

	from, to := twilio.Route(cfg, "08123")
	assert.Equal(t, "+15550001", from)
	assert.Equal(t, "+628123", to)

	cfg.SMS.WhatsAppFrom = "+15550002"

	from, to = twilio.Route(cfg, "08123")
	assert.Equal(t, "whatsapp:+15550002", from)
	assert.Equal(t, "whatsapp:+628123", to)

	from, to = twilio.Route(cfg, "12345")
	assert.Equal(t, "+15550001", from)
	assert.Equal(t, "12345", to)
}

func TestSendWithoutRecipient(t *testing.T) {
	sender := twilio.New(&config.Config{}, mocks.NewOtel())

	_, err := sender.Send(context.Background(), " - ", "hello")
	assert.ErrorIs(t, err, twilio.ErrNoRecipient)
}
