package order

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"store/internal/entities"
)

type Order struct {
	repository Repository
	catalog    Catalog
	gateway    Gateway
	notifier   Notifier
	references ReferenceGenerator
	txManager  TxManager

	webhookSecret []byte
	currency      string
}

func New(
	repository Repository,
	catalog Catalog,
	gateway Gateway,
	notifier Notifier,
	references ReferenceGenerator,
	txManager TxManager,
	webhookSecret string,
	currency string,
) *Order {
	return &Order{
		repository:    repository,
		catalog:       catalog,
		gateway:       gateway,
		notifier:      notifier,
		references:    references,
		txManager:     txManager,
		webhookSecret: []byte(webhookSecret),
		currency:      currency,
	}
}

func (s *Order) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if orderCreate.FullName == nil ||
		orderCreate.Email == nil ||
		orderCreate.PhoneNumber == nil ||
		orderCreate.Address == nil ||
		orderCreate.ProductID == nil ||
		orderCreate.Quantity == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidFullName(*orderCreate.FullName) {
		return nil, ErrInvalidFullName
	}
	if !isValidEmail(*orderCreate.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPhone(*orderCreate.PhoneNumber) {
		return nil, ErrInvalidPhone
	}
	if !isValidAddress(*orderCreate.Address) {
		return nil, ErrInvalidAddress
	}
	if !isValidProductID(*orderCreate.ProductID) {
		return nil, ErrInvalidProductID
	}
	if !isValidQuantity(*orderCreate.Quantity) {
		return nil, ErrInvalidQuantity
	}

	reference := s.references.Generate()

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		product, err := s.catalog.GetByID(ctx, *orderCreate.ProductID)
		if err != nil {
			return fmt.Errorf("check product: %w", err)
		}
		if !product.IsActive {
			return ErrProductInactive
		}

		created, err = s.repository.Create(ctx, orderCreate, reference)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Order) InitiatePayment(ctx context.Context, orderID string) (*entities.PaymentInit, error) {
	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if orderEntity.PaymentStatus == entities.PaymentPaid {
		return nil, ErrAlreadyPaid
	}
	if orderEntity.Reference == "" {
		return nil, ErrNoReference
	}

	// Цена берется из каталога на момент оплаты, не фиксируется при создании
	// заказа. Изменение цены до оплаты меняет списываемую сумму.
	product, err := s.catalog.GetByID(ctx, orderEntity.ProductID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	total := product.Price.Mul(decimal.NewFromInt32(orderEntity.Quantity))

	paymentInit, err := s.gateway.Initialize(ctx, orderEntity.Email, total, orderEntity.Reference, s.currency)
	if err != nil {
		return nil, fmt.Errorf("initialize payment: %w", err)
	}

	return paymentInit, nil
}

// paymentEvent — событие вебхука шлюза. Тело парсится только после
// проверки подписи.
type paymentEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
	} `json:"data"`
}

const chargeSuccessEvent = "charge.success"

// HandlePaymentEvent обрабатывает вебхук шлюза.
// Возвращает (nil, nil) для валидных, но неизвестных типов событий.
func (s *Order) HandlePaymentEvent(ctx context.Context, body []byte, signature string) (*entities.Order, error) {
	if !s.verifySignature(body, signature) {
		return nil, ErrInvalidSignature
	}

	var event paymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}

	if event.Event != chargeSuccessEvent {
		return nil, nil
	}

	return s.confirmPayment(ctx, event.Data.Reference)
}

func (s *Order) confirmPayment(ctx context.Context, reference string) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("get order by reference: %w", err)
	}

	// Повторная доставка уже обработанного события - no-op.
	if orderEntity.PaymentStatus == entities.PaymentPaid {
		return orderEntity, nil
	}

	// Статусу из события не доверяем, транзакция перепроверяется у шлюза.
	transaction, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	if transaction.Status != entities.TransactionSuccess {
		return nil, fmt.Errorf("%w: transaction status %s", ErrVerificationFailed, transaction.Status)
	}

	updated, err := s.repository.MarkPaid(ctx, reference)
	if err != nil {
		// Конкурирующая доставка успела первой - переход уже состоялся.
		if errors.Is(err, ErrNotPending) {
			return s.repository.GetByReference(ctx, reference)
		}
		return nil, fmt.Errorf("mark order paid: %w", err)
	}

	// Уведомление - best effort, ошибки доставки не откатывают переход.
	s.notifier.Enqueue(paymentConfirmedNotification(updated))

	return updated, nil
}

// ReconcilePending перепроверяет у шлюза заказы, зависшие в ожидании оплаты
// (вебхук мог не дойти). Возвращает число заказов, переведенных в конечный
// статус.
func (s *Order) ReconcilePending(ctx context.Context, olderThan time.Duration, limit int) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	pending, err := s.repository.GetPendingCreatedBefore(ctx, cutoff, limit)
	if err != nil {
		return 0, fmt.Errorf("get pending orders: %w", err)
	}

	var reconciled int64
	for _, orderEntity := range pending {
		if ctx.Err() != nil {
			return reconciled, ctx.Err()
		}
		if orderEntity.Reference == "" {
			continue
		}

		transaction, err := s.gateway.Verify(ctx, orderEntity.Reference)
		if err != nil {
			// Транзакции нет у шлюза - покупатель не дошел до оплаты,
			// заказ остается pending.
			continue
		}

		switch transaction.Status {
		case entities.TransactionSuccess:
			updated, err := s.repository.MarkPaid(ctx, orderEntity.Reference)
			if err != nil {
				continue
			}
			s.notifier.Enqueue(paymentConfirmedNotification(updated))
			reconciled++
		case entities.TransactionFailed, entities.TransactionAbandoned:
			if _, err := s.repository.MarkFailed(ctx, orderEntity.Reference); err != nil {
				continue
			}
			reconciled++
		}
	}

	return reconciled, nil
}

func (s *Order) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}

func (s *Order) verifySignature(body []byte, signature string) bool {
	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha512.New, s.webhookSecret)
	mac.Write(body)

	return hmac.Equal(mac.Sum(nil), provided)
}

func paymentConfirmedNotification(orderEntity *entities.Order) entities.Notification {
	return entities.Notification{
		OrderID:   orderEntity.ID,
		Reference: orderEntity.Reference,
		Recipient: orderEntity.Email,
		FullName:  orderEntity.FullName,
		Subject:   fmt.Sprintf("Order %s confirmed", orderEntity.ID),
		Body: fmt.Sprintf(
			"Hello %s, payment for your order %s has been confirmed. The order is now being processed.",
			orderEntity.FullName, orderEntity.ID,
		),
	}
}
