package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"store/internal/entities"
)

// KafkaPublisher сериализует уведомление и отправляет его в топик.
// Ключ - идентификатор заказа, чтобы события одного заказа
// попадали в одну партицию.
type KafkaPublisher struct {
	producer producer
	topic    string
}

func NewKafkaPublisher(p producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: p,
		topic:    topic,
	}
}

func (p *KafkaPublisher) Publish(_ context.Context, notification entities.Notification) error {
	payload, err := json.Marshal(FromDomain(notification))
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = p.producer.Send(p.topic, notification.OrderID, payload)
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}

	return nil
}
