package change_events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
)

type changeMessage struct {
	Entity     string    `json:"entity"`
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// toProducerMessage ключ entity:id держит события одной записи в одной партиции.
func toProducerMessage(topic string, event entities.ChangeEvent) (*sarama.ProducerMessage, error) {
	value, err := json.Marshal(changeMessage{
		Entity:     event.Entity,
		ID:         event.ID,
		Action:     event.Action.String(),
		Payload:    event.Payload,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal change event: %w", err)
	}

	return &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(event.Entity + ":" + event.ID),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("entity"), Value: []byte(event.Entity)},
			{Key: []byte("action"), Value: []byte(event.Action.String())},
		},
	}, nil
}
