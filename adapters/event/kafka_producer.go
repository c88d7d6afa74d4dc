package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stackhunt/stackhunt/internal/config"
	"github.com/stackhunt/stackhunt/pkg/logger"
	"go.uber.org/zap"
)

const (
	TopicSelectionEvents = "technology.selection.events"

	EventTypeSelectionsReplaced = "selections.replaced"
)

// SelectionEventPayload announces that a user replaced their technology
// selection set. The future discovery engine consumes these to know when to
// re-match issues.
type SelectionEventPayload struct {
	EventType     string      `json:"event_type"`
	UserID        uuid.UUID   `json:"user_id"`
	TechnologyIDs []uuid.UUID `json:"technology_ids"`
	OccurredAt    time.Time   `json:"occurred_at"`
}

type KafkaProducerClient struct {
	SelectionEventsWriter *kafka.Writer
	logger                logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	selectionWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicSelectionEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka Producer successfully.")

	return &KafkaProducerClient{
		SelectionEventsWriter: selectionWriter,
		logger:                log,
	}, nil
}

// PublishSelectionsReplaced is best-effort: the HTTP result of a selection
// submit depends only on the database transaction, never on the broker.
func (c *KafkaProducerClient) PublishSelectionsReplaced(ctx context.Context, userID uuid.UUID, technologyIDs []uuid.UUID) error {
	payload := SelectionEventPayload{
		EventType:     EventTypeSelectionsReplaced,
		UserID:        userID,
		TechnologyIDs: technologyIDs,
		OccurredAt:    time.Now().UTC(),
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal selection event: %w", err)
	}

	err = c.SelectionEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(userID.String()),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("cannot publish selection event: %w", err)
	}

	c.logger.Info("Published selection event", zap.String("user_id", userID.String()))
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.SelectionEventsWriter != nil {
		c.SelectionEventsWriter.Close()
	}
	c.logger.Info("Closed Kafka Producer")
}
