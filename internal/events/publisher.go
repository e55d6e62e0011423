// Package events publishes booking status changes to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/wb-go/wbf/kafka"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const DefaultTopic = "booking.status"

type messageProducer interface {
	SendWithRetry(ctx context.Context, strategy retry.Strategy, key, value []byte) error
	Close() error
}

type KafkaPublisher struct {
	producer messageProducer
	strategy retry.Strategy
	logger   logger.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger logger.Logger) *KafkaPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return newKafkaPublisher(kafka.NewProducer(brokers, topic), logger)
}

func newKafkaPublisher(producer messageProducer, logger logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    200 * time.Millisecond,
			Backoff:  2,
		},
		logger: logger,
	}
}

// PublishStatusChanged sends event keyed by booking id so every change of one
// booking lands in the same partition.
func (p *KafkaPublisher) PublishStatusChanged(ctx context.Context, event domain.BookingStatusChanged) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode status event: %w", err)
	}

	if err = p.producer.SendWithRetry(ctx, p.strategy, []byte(event.BookingID), value); err != nil {
		return fmt.Errorf("publish status event: %w", err)
	}

	p.logger.Debug("booking status event published",
		logger.String("booking_id", event.BookingID),
		logger.String("from", string(event.From)),
		logger.String("to", string(event.To)),
	)

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// Noop drops every event. Used when no brokers are configured.
type Noop struct{}

func (Noop) PublishStatusChanged(context.Context, domain.BookingStatusChanged) error { return nil }

func (Noop) Close() error { return nil }
