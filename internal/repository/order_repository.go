package repository

import (
	"context"
	"fmt"
	"trendx-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderRepo struct {
	db DBTX
}

func NewOrderRepository(db DBTX) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	insert := `INSERT INTO orders (
	id,
	customer_name,
	items,
	total_price,
	status,
	payment_method,
	created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	id := uuid.NewString()

	_, err := r.db.Exec(ctx, insert,
		id,
		o.CustomerName,
		o.Items,
		o.TotalPrice,
		o.Status,
		o.PaymentMethod,
		o.CreatedAt,
	)
	if err != nil {
		return storeErr("create order", err)
	}
	o.ID = id

	return nil
}

func (r *orderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	sql := `
	SELECT
		id,
		customer_name,
		items,
		total_price::text,
		status,
		payment_method,
		created_at
	FROM orders
	ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, storeErr("get all orders", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var total string

		if err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.Items,
			&total,
			&o.Status,
			&o.PaymentMethod,
			&o.CreatedAt,
		); err != nil {
			return nil, storeErr("scan orders", err)
		}

		if o.TotalPrice, err = decimal.NewFromString(total); err != nil {
			return nil, storeErr("scan orders", fmt.Errorf("total of order %s: %w", o.ID, err))
		}
		if o.Items == nil {
			o.Items = []string{}
		}
		o.CreatedAt = o.CreatedAt.UTC()

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate orders", err)
	}

	return orders, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	if err := checkUUID(id); err != nil {
		return storeErr("update order status", err)
	}

	sql := `UPDATE orders SET status = $1 WHERE id = $2`

	result, err := r.db.Exec(ctx, sql, status, id)
	if err != nil {
		return storeErr("update order status", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, storeErr("count orders", err)
	}
	return n, nil
}

func (r *orderRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM orders`); err != nil {
		return storeErr("clear orders", err)
	}
	return nil
}
