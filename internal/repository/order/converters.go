package order

import (
	"store/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:            o.ID,
		FullName:      o.FullName,
		Email:         o.Email,
		PhoneNumber:   o.PhoneNumber,
		Address:       o.Address,
		ProductID:     o.ProductID,
		Quantity:      o.Quantity,
		PaymentStatus: entities.PaymentStatusType(o.PaymentStatus),
		OrderStatus:   entities.OrderStatusType(o.OrderStatus),
		Reference:     o.Reference,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
