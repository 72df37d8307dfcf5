package notifyport

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"gitlab.com/exreview.net/internal/core/ports/primary"
	"gitlab.com/exreview.net/internal/core/ports/secondary"
	"gitlab.com/exreview.net/internal/domain"
)

var (
	_ secondary.NotificationPort = &NotifyProducer{}
	_ secondary.MailPort         = &NotifyProducer{}
)

// NotifyProducer publishes review events and mail triggers onto Kafka
// topics. An external notification service consumes them and handles the
// actual aggregation and email delivery.
type NotifyProducer struct {
	writer      *kafka.Writer
	eventsTopic string
	mailTopic   string
	logger      primary.Logger
}

type Config struct {
	Brokers     []string
	EventsTopic string
	MailTopic   string
}

// NewNotifyProducer creates a new Kafka notify producer
func NewNotifyProducer(cfg Config, logger primary.Logger) *NotifyProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}

	return &NotifyProducer{
		writer:      writer,
		eventsTopic: cfg.EventsTopic,
		mailTopic:   cfg.MailTopic,
		logger:      logger,
	}
}

// Everyone publishes a review event addressed to everyone on the thread
func (p *NotifyProducer) Everyone(ctx context.Context, event *domain.ReviewEvent) error {
	event.Audience = domain.AudienceEveryone
	return p.send(ctx, p.eventsTopic, event.SubmissionID.String(), event)
}

// Source publishes a review event addressed to the instigator chain
func (p *NotifyProducer) Source(ctx context.Context, event *domain.ReviewEvent) error {
	event.Audience = domain.AudienceSource
	return p.send(ctx, p.eventsTopic, event.SubmissionID.String(), event)
}

// ShipNitpickMessage triggers the direct nitpick email to the owner
func (p *NotifyProducer) ShipNitpickMessage(ctx context.Context, msg *domain.MailMessage) error {
	return p.send(ctx, p.mailTopic, msg.SubmissionID.String(), msg)
}

// ShipApprovalMessage triggers the direct approval email
func (p *NotifyProducer) ShipApprovalMessage(ctx context.Context, msg *domain.MailMessage) error {
	return p.send(ctx, p.mailTopic, msg.SubmissionID.String(), msg)
}

func (p *NotifyProducer) send(ctx context.Context, topic, key string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: msgBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (p *NotifyProducer) Close() error {
	return p.writer.Close()
}
