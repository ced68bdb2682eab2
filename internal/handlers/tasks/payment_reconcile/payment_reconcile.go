package payment_reconcile

import (
	"context"
	"time"

	"store/pkg/logger"
)

type Service interface {
	ReconcilePending(ctx context.Context, olderThan time.Duration, limit int) (int64, error)
}

// PaymentReconcile периодически сверяет зависшие платежи со шлюзом:
// вебхук может не дойти, и тогда заказ навсегда останется pending.
type PaymentReconcile struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	olderThan time.Duration
	limit     int
}

func NewPaymentReconcile(log logger.Logger, service Service, interval, olderThan time.Duration, limit int) *PaymentReconcile {
	return &PaymentReconcile{
		log:       log,
		service:   service,
		interval:  interval,
		olderThan: olderThan,
		limit:     limit,
	}
}

func (p *PaymentReconcile) TTL() time.Duration {
	return p.interval
}

func (p *PaymentReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	reconciled, err := p.service.ReconcilePending(ctxWithTimeout, p.olderThan, p.limit)

	if reconciled > 0 {
		p.log.With(
			logger.NewField("reconciled_orders", reconciled),
		).Info("payment reconcile")
	}

	return err
}

func (p *PaymentReconcile) Info() string {
	return "payment reconcile"
}
