package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentInit — результат инициализации платежа на стороне шлюза.
type PaymentInit struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
}

// Transaction — состояние транзакции по данным шлюза (ответ verify).
type Transaction struct {
	Reference string
	Status    TransactionStatusType
	Amount    decimal.Decimal
	Currency  string
	PaidAt    time.Time
	Channel   string
}

type TransactionStatusType string

const (
	TransactionSuccess   TransactionStatusType = "success"
	TransactionFailed    TransactionStatusType = "failed"
	TransactionAbandoned TransactionStatusType = "abandoned"
)

func (t TransactionStatusType) String() string {
	return string(t)
}

// Notification — письмо покупателю после подтверждения оплаты.
type Notification struct {
	OrderID   string
	Reference string
	Recipient string
	FullName  string
	Subject   string
	Body      string
}
