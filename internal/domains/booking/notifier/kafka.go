package notifier

import (
	"bloom/infras/kafka"
	"bloom/infras/otel"
	"bloom/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type publisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

// NewPublisher queues confirmations on topic for the worker to deliver.
func NewPublisher(client kafka.Client, topic string, ot otel.Otel) Notifier {
	return &publisher{
		client: client,
		topic:  topic,
		otel:   ot,
	}
}

func (p *publisher) Notify(ctx context.Context, c Confirmation) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishConfirmation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.code", c.Code)

	if err = p.client.SendMessages(ctx, p.topic, kafka.Message{Key: c.Code, Value: c}); err != nil {
		return fmt.Errorf("failed to queue confirmation: %w", err)
	}

	return nil
}

// Consumer drains the confirmation topic into a delivering notifier.
type Consumer struct {
	client   kafka.Client
	delivery Notifier
	topic    string
	group    string
}

func NewConsumer(client kafka.Client, delivery Notifier, topic, group string) *Consumer {
	return &Consumer{
		client:   client,
		delivery: delivery,
		topic:    topic,
		group:    group,
	}
}

// Run blocks until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("Confirmation consumer started")

	return c.client.Consume(ctx, c.group, c.topic, c.Handle) // nolint:wrapcheck
}

// Handle delivers one queued confirmation. Delivery is best-effort, so the
// offset is committed even when a channel fails.
func (c *Consumer) Handle(ctx context.Context, msg kafkaGo.Message) error {
	confirmation, err := kafka.Decode[Confirmation](msg)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("dropping malformed confirmation")

		return nil
	}

	if err = c.delivery.Notify(ctx, confirmation); err != nil {
		log.Error().Err(err).Str("code", confirmation.Code).Msg("failed to deliver confirmation")
	}

	return nil
}
