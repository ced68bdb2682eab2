package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"store/internal/entities"
	"store/internal/service/order"
)

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Product, error) {
	query := `SELECT id, name, price::text, is_active, created_at, updated_at
		FROM products
		WHERE id = $1`

	var productModel ProductDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&productModel.ID,
			&productModel.Name,
			&productModel.Price,
			&productModel.IsActive,
			&productModel.CreatedAt,
			&productModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrProductNotFound
		}
		return nil, fmt.Errorf("unexpected product repository getbyid error: %w", err)
	}

	return ToDomain(&productModel)
}
