package publisher

import (
	"VCS_Status_Microservice/internal/status-service/model"
	"VCS_Status_Microservice/pkg/infra"
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type VerdictPublisher interface {
	Publish(ctx context.Context, event model.VerdictEvent) error
	Close() error
}

type verdictPublisher struct {
	kafka infra.KafkaWriter
}

// Publish writes the event keyed by target so all events of one target land on the same partition.
func (v *verdictPublisher) Publish(ctx context.Context, event model.VerdictEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("VerdictPublisher.Publish: %w", err)
	}
	err = v.kafka.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Target),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("VerdictPublisher.Publish: %w", err)
	}
	return nil
}

func (v *verdictPublisher) Close() error {
	return v.kafka.Close()
}

func NewVerdictPublisher(kafka infra.KafkaWriter) VerdictPublisher {
	return &verdictPublisher{
		kafka: kafka,
	}
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, model.VerdictEvent) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}

// NewNoopPublisher is used when no kafka brokers are configured.
func NewNoopPublisher() VerdictPublisher {
	return noopPublisher{}
}
