package notifier

import "store/internal/entities"

// Message - формат события уведомления в топике Kafka.
type Message struct {
	OrderID   string `json:"order_id"`
	Reference string `json:"reference"`
	Recipient string `json:"recipient"`
	FullName  string `json:"full_name"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

func FromDomain(notification entities.Notification) Message {
	return Message{
		OrderID:   notification.OrderID,
		Reference: notification.Reference,
		Recipient: notification.Recipient,
		FullName:  notification.FullName,
		Subject:   notification.Subject,
		Body:      notification.Body,
	}
}

func (m Message) ToDomain() entities.Notification {
	return entities.Notification{
		OrderID:   m.OrderID,
		Reference: m.Reference,
		Recipient: m.Recipient,
		FullName:  m.FullName,
		Subject:   m.Subject,
		Body:      m.Body,
	}
}
