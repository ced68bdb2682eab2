package product

import (
	"fmt"

	"github.com/shopspring/decimal"
	"store/internal/entities"
)

func ToDomain(p *ProductDB) (*entities.Product, error) {
	if p == nil {
		return nil, nil
	}

	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return nil, fmt.Errorf("parse product price %q: %w", p.Price, err)
	}

	return &entities.Product{
		ID:        p.ID,
		Name:      p.Name,
		Price:     price,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}
