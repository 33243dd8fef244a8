package twilio

//go:generate go run go.uber.org/mock/mockgen -source=./twilio.go -destination=./mocks/twilio_mock.go -package=mocks

import (
	"bloom/config"
	"bloom/infras/otel"
	"bloom/shared/constant"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const (
	whatsAppPrefix  = "whatsapp:"
	e164Prefix      = "+"
	localPrefix     = "0"
	defaultDialCode = "62"
)

var ErrNoRecipient = errors.New("sms recipient is empty")

type Sender interface {
	Send(ctx context.Context, to, body string) (sid string, err error)
}

type senderImpl struct {
	client *twilio.RestClient
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Sender {
	return &senderImpl{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.SMS.AccountSID,
			Password: config.SMS.AuthToken,
		}),
		config: config,
		otel:   otel,
	}
}

// E164 turns a local Indonesian number into +62 form. Other input is only stripped of separators.
func E164(phone string) string {
	phone = strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '(' || r == ')' || r == '.' {
			return -1
		}

		return r
	}, phone)

	switch {
	case phone == "":
		return ""
	case strings.HasPrefix(phone, e164Prefix):
		return phone
	case strings.HasPrefix(phone, localPrefix):
		return e164Prefix + defaultDialCode + strings.TrimPrefix(phone, localPrefix)
	case strings.HasPrefix(phone, defaultDialCode):
		return e164Prefix + phone
	default:
		return phone
	}
}

// Route picks the sender and recipient. WhatsApp is used when a WhatsApp sender is configured
// and the number is in E.164 form.
func Route(config *config.Config, phone string) (from, to string) {
	to = E164(phone)

	if config.SMS.WhatsAppFrom != "" && strings.HasPrefix(to, e164Prefix) {
		return whatsAppPrefix + config.SMS.WhatsAppFrom, whatsAppPrefix + to
	}

	return config.SMS.From, to
}

func (s *senderImpl) Send(ctx context.Context, phone, body string) (sid string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".twilio.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to := Route(s.config, phone)
	if to == "" {
		return constant.Empty, ErrNoRecipient
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to send message via twilio")

		return constant.Empty, fmt.Errorf("failed to send message via twilio: %w", err)
	}

	if resp.Sid != nil {
		sid = *resp.Sid
	}

	log.Info().Str("to", to).Str("sid", sid).Msg("message sent via twilio")

	return sid, nil
}
