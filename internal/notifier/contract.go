//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifier_test
package notifier

import (
	"context"

	"store/internal/entities"
	"store/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, notification entities.Notification) error
}

type producer interface {
	Send(topic string, key string, value []byte) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
