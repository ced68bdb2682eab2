package entities

import (
	"time"
)

type Order struct {
	ID            string
	FullName      string
	Email         string
	PhoneNumber   string
	Address       string
	ProductID     int64
	Quantity      int32
	PaymentStatus PaymentStatusType
	OrderStatus   OrderStatusType
	Reference     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PaymentStatusType string

const (
	PaymentPending PaymentStatusType = "pending"
	PaymentPaid    PaymentStatusType = "paid"
	PaymentFailed  PaymentStatusType = "failed"
)

func (t PaymentStatusType) String() string {
	return string(t)
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderCompleted  OrderStatusType = "completed"
)

func (t OrderStatusType) String() string {
	return string(t)
}

type OrderCreate struct {
	FullName    *string
	Email       *string
	PhoneNumber *string
	Address     *string
	ProductID   *int64
	Quantity    *int32
}
