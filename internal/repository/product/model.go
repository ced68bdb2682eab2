package product

import "time"

type ProductDB struct {
	ID        int64
	Name      string
	Price     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
