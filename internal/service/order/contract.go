//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"store/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderCreateEntity entities.OrderCreate, reference string) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetByReference(ctx context.Context, reference string) (*entities.Order, error)

	// MarkPaid и MarkFailed - условные переходы pending -> paid/failed.
	// Если заказ уже не pending, возвращают ErrNotPending.
	MarkPaid(ctx context.Context, reference string) (*entities.Order, error)
	MarkFailed(ctx context.Context, reference string) (*entities.Order, error)

	GetPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]entities.Order, error)
}

type Catalog interface {
	GetByID(ctx context.Context, id int64) (*entities.Product, error)
}

type Gateway interface {
	Initialize(ctx context.Context, email string, amount decimal.Decimal, reference, currency string) (*entities.PaymentInit, error)
	Verify(ctx context.Context, reference string) (*entities.Transaction, error)
}

type Notifier interface {
	Enqueue(notification entities.Notification)
}

type ReferenceGenerator interface {
	Generate() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
