package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"store/internal/entities"
	"store/internal/repository"
	"store/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, full_name, email, phone_number, address, product_id, quantity,
		payment_status, order_status, reference, created_at, updated_at`

type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
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

func (r *Repository) Create(ctx context.Context, orderCreateEntity entities.OrderCreate, reference string) (*entities.Order, error) {
	query := `INSERT INTO orders (full_name, email, phone_number, address, product_id, quantity, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderCreateEntity.FullName,
		orderCreateEntity.Email,
		orderCreateEntity.PhoneNumber,
		orderCreateEntity.Address,
		orderCreateEntity.ProductID,
		orderCreateEntity.Quantity,
		reference,
	).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrDuplicateReference
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByReference(ctx context.Context, reference string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE reference = $1`

	return r.getOne(ctx, query, reference)
}

// MarkPaid выполняет условный переход pending -> paid. Условие по
// payment_status гарантирует, что при конкурентных дубликатах вебхука
// переход состоится ровно один раз.
func (r *Repository) MarkPaid(ctx context.Context, reference string) (*entities.Order, error) {
	return r.transition(ctx, reference, entities.PaymentPaid, map[string]interface{}{
		"order_status": entities.OrderProcessing.String(),
	})
}

func (r *Repository) MarkFailed(ctx context.Context, reference string) (*entities.Order, error) {
	return r.transition(ctx, reference, entities.PaymentFailed, nil)
}

func (r *Repository) GetPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]entities.Order, error) {
	builder := qb.
		Select("id", "full_name", "email", "phone_number", "address", "product_id", "quantity",
			"payment_status", "order_status", "reference", "created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"payment_status": entities.PaymentPending.String()}).
		Where(sq.Lt{"created_at": cutoff}).
		OrderBy("created_at").
		Limit(uint64(limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getpending error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getpending error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		if err := rows.Scan(scanTargets(&orderModel)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository getpending error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository getpending error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Order, error) {
	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) transition(ctx context.Context, reference string, paymentStatus entities.PaymentStatusType, extra map[string]interface{}) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("payment_status", paymentStatus.String()).
		Set("updated_at", sq.Expr("NOW()"))

	for column, value := range extra {
		builder = builder.Set(column, value)
	}

	builder = builder.
		Where(sq.Eq{
			"reference":      reference,
			"payment_status": entities.PaymentPending.String(),
		}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository transition error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotPending
		}
		return nil, fmt.Errorf("unexpected order repository transition error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func scanTargets(orderModel *OrderDB) []interface{} {
	return []interface{}{
		&orderModel.ID,
		&orderModel.FullName,
		&orderModel.Email,
		&orderModel.PhoneNumber,
		&orderModel.Address,
		&orderModel.ProductID,
		&orderModel.Quantity,
		&orderModel.PaymentStatus,
		&orderModel.OrderStatus,
		&orderModel.Reference,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	}
}
