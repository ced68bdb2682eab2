package order

import "time"

type OrderDB struct {
	ID            string
	FullName      string
	Email         string
	PhoneNumber   string
	Address       string
	ProductID     int64
	Quantity      int32
	PaymentStatus string
	OrderStatus   string
	Reference     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
