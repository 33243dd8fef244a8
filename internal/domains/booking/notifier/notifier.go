package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=../mocks/notifier_mock.go -package=mocks

import (
	"bloom/config"
	"bloom/infras/kafka"
	"bloom/infras/mail"
	"bloom/infras/otel"
	"bloom/infras/twilio"
	"bloom/shared/constant"
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// Confirmation carries what a customer needs to hear about a stored booking.
type Confirmation struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Code    string `json:"code"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Package string `json:"package"`
}

type Notifier interface {
	Notify(ctx context.Context, confirmation Confirmation) error
}

// New returns the notifier the API process uses after a booking is stored.
func New(cfg *config.Config, mailer mail.Mailer, sms twilio.Sender, client kafka.Client, ot otel.Otel) Notifier {
	if cfg.Booking.Notifier.Driver == constant.NotifierDriverKafka {
		log.Info().Str("topic", cfg.Booking.Notifier.Topic).Msg("Booking confirmations are queued")

		return NewPublisher(client, cfg.Booking.Notifier.Topic, ot)
	}

	return NewDelivery(cfg, mailer, sms)
}

// NewDelivery returns the notifier that actually reaches the customer.
func NewDelivery(cfg *config.Config, mailer mail.Mailer, sms twilio.Sender) Notifier {
	var channels Multi

	if cfg.Mail.Enable && mailer != nil {
		channels = append(channels, NewEmail(mailer))
	}

	if cfg.SMS.Enable && sms != nil {
		channels = append(channels, NewSMS(sms))
	}

	if len(channels) == 0 {
		log.Warn().Msg("No confirmation channel enabled")
	}

	return channels
}

// Multi sends through every channel and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, confirmation Confirmation) error {
	var errs []error

	for _, n := range m {
		if err := n.Notify(ctx, confirmation); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
