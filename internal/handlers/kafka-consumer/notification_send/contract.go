package notification_send

import (
	"context"

	"store/internal/entities"
	"store/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Sender interface {
	Send(ctx context.Context, notification entities.Notification) error
}
