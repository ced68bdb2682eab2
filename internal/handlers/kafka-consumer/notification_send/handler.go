package notification_send

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"store/internal/notifier"
	"store/pkg/logger"
)

type Handler struct {
	sender                   Sender
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, sender Sender, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		sender:                   sender,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("notification.send: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("notification.send: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var msg notifier.Message
	err := json.Unmarshal(message.Value, &msg)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("notification.send handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", msg.OrderID),
		logger.NewField("recipient", msg.Recipient),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("notification.send processing")

	err = h.sender.Send(ctx, msg.ToDomain())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.send handler context cancelled, message will be reprocessed")
			return true
		}

		// Уведомление best-effort: неотправленное письмо не должно
		// останавливать разбор топика
		msgLog.With(
			logger.NewField("error", err),
		).Warn("notification.send handler failed to deliver notification")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("notification.send: delivered")

	sess.MarkMessage(message, "")
	return false
}
