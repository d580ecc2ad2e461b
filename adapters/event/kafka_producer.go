package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/folioforge/folioforge/internal/config"
)

const TopicPortfolioEvents = "portfolio.events"

type PortfolioEventType string

const (
	PortfolioEventCreated     PortfolioEventType = "portfolio.created"
	PortfolioEventUpdated     PortfolioEventType = "portfolio.updated"
	PortfolioEventDeleted     PortfolioEventType = "portfolio.deleted"
	PortfolioEventPublished   PortfolioEventType = "portfolio.published"
	PortfolioEventUnpublished PortfolioEventType = "portfolio.unpublished"
)

// PortfolioEventPayload is what the worker consumes to keep the public copy
// and the render cache in line with the private store.
type PortfolioEventPayload struct {
	EventType   PortfolioEventType `json:"event_type"`
	PortfolioID uuid.UUID          `json:"portfolio_id"`
	OwnerID     uuid.UUID          `json:"owner_id"`
	IsPublic    bool               `json:"is_public"`
}

type KafkaProducerClient struct {
	PortfolioEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{PortfolioEventsWriter: writer}, nil
}

func (c *KafkaProducerClient) PublishPortfolioEvent(ctx context.Context, payload PortfolioEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal portfolio event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.PortfolioID.String()),
		Value: value,
	}
	if err := c.PortfolioEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write portfolio event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.PortfolioEventsWriter != nil {
		c.PortfolioEventsWriter.Close()
	}
}
