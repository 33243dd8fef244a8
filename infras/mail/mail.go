package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"bloom/config"
	"bloom/infras/otel"
	"bloom/shared/constant"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	goMail "github.com/wneessen/go-mail"
)

const dialTimeout = 15 * time.Second

// Mail is a plain text message to a single recipient.
type Mail struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type mailerImpl struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	log.Info().Str("host", config.Mail.Host).Int("port", config.Mail.Port).Msg("Mailer initialized")

	return &mailerImpl{
		config: config,
		otel:   otel,
	}
}

// BuildMessage renders mail with the configured sender.
func BuildMessage(config *config.Config, mail Mail) (*goMail.Msg, error) {
	msg := goMail.NewMsg()

	if err := msg.FromFormat(config.Mail.FromName, config.Mail.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	if err := msg.To(mail.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(mail.Subject)
	msg.SetBodyString(goMail.TypeTextPlain, mail.Body)

	return msg, nil
}

func (m *mailerImpl) client() (*goMail.Client, error) {
	options := []goMail.Option{
		goMail.WithPort(m.config.Mail.Port),
		goMail.WithTimeout(dialTimeout),
		goMail.WithTLSPortPolicy(goMail.TLSOpportunistic),
	}

	if m.config.Mail.Username != "" {
		options = append(options,
			goMail.WithSMTPAuth(goMail.SMTPAuthPlain),
			goMail.WithUsername(m.config.Mail.Username),
			goMail.WithPassword(m.config.Mail.Password),
		)
	}

	client, err := goMail.NewClient(m.config.Mail.Host, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return client, nil
}

func (m *mailerImpl) Send(ctx context.Context, mail Mail) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mail.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	msg, err := BuildMessage(m.config, mail)
	if err != nil {
		return err
	}

	client, err := m.client()
	if err != nil {
		return err
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Error().Err(err).Str("to", mail.To).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("to", mail.To).Msg("mail sent")

	return nil
}
