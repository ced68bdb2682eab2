package notifier

import (
	"context"
	"sync"
	"time"

	"store/internal/entities"
	"store/pkg/logger"
)

const publishTimeout = 10 * time.Second

// Dispatcher - ограниченная очередь уведомлений с отдельным воркером.
// Enqueue никогда не блокирует вызывающего: переполненная очередь не должна
// тормозить обработку вебхуков, лишние уведомления отбрасываются с логом.
type Dispatcher struct {
	log       handlerLogger
	publisher Publisher
	queue     chan entities.Notification
	done      chan struct{}

	mu     sync.Mutex
	closed bool
}

func New(log handlerLogger, publisher Publisher, capacity int) *Dispatcher {
	dispatcherLog := log.With(
		logger.NewField("component", "notifier"),
	)

	d := &Dispatcher{
		log:       dispatcherLog,
		publisher: publisher,
		queue:     make(chan entities.Notification, capacity),
		done:      make(chan struct{}),
	}

	go d.run()

	return d
}

// Enqueue принимает уведомление в очередь без ожидания.
// После Close уведомления отбрасываются, отправка в закрытый канал исключена.
func (d *Dispatcher) Enqueue(notification entities.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		NotificationsDroppedTotal.Inc()
		d.log.Warn("dispatcher closed, dropping notification",
			logger.NewField("order", notification.OrderID),
			logger.NewField("reference", notification.Reference),
		)
		return
	}

	select {
	case d.queue <- notification:
		NotificationsEnqueuedTotal.Inc()
	default:
		NotificationsDroppedTotal.Inc()
		d.log.Warn("notification queue full, dropping",
			logger.NewField("order", notification.OrderID),
			logger.NewField("reference", notification.Reference),
		)
	}
}

// Close останавливает прием и дожидается отправки уже принятых уведомлений.
// Повторный вызов безопасен.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for notification := range d.queue {
		// Собственный контекст: отмена исходного запроса не должна
		// отменять уже принятое уведомление.
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := d.publisher.Publish(ctx, notification)
		cancel()

		if err != nil {
			NotificationsPublishFailedTotal.Inc()
			d.log.Error("publish notification",
				logger.NewField("order", notification.OrderID),
				logger.NewField("error", err),
			)
			continue
		}

		d.log.Info("notification published",
			logger.NewField("order", notification.OrderID),
		)
	}
}
