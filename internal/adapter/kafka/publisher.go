package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/polkiloo/cleanup/internal/domain/model"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Event is the payload written to the notifications topic.
type Event struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Publisher fans notifications out to a Kafka topic. Without brokers it is a no-op.
type Publisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

// NewPublisher builds an asynchronous writer for topic on brokers.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	p := &Publisher{topic: topic, logger: logger}
	if len(brokers) == 0 {
		return p
	}
	p.writer = &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		Async:        true,
		Completion: func(messages []kafkago.Message, err error) {
			if err != nil {
				logger.Warn("kafka delivery failed", slog.String("topic", topic), slog.Int("messages", len(messages)), slog.String("error", err.Error()))
			}
		},
	}
	return p
}

// Enabled reports whether messages are actually sent.
func (p *Publisher) Enabled() bool { return p.writer != nil }

func (p *Publisher) Publish(ctx context.Context, n model.Notification) error {
	if p.writer == nil {
		return nil
	}
	payload, err := json.Marshal(Event{ID: n.ID, Message: n.Message, At: n.At})
	if err != nil {
		return fmt.Errorf("encode notification event: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafkago.Message{Key: []byte(n.ID), Value: payload, Time: n.At}); err != nil {
		return fmt.Errorf("write notification event: %w", err)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
