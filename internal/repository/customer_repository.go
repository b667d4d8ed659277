package repository

import (
	"context"
	"trendx-service/internal/models"

	"github.com/google/uuid"
)

type customerRepo struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *models.Customer) error {
	sql := `
		INSERT INTO customers (
			id,
			name,
			phone,
			email,
			address,
			created_at
	) VALUES ($1, $2, $3, $4, $5, $6)
	`

	id := uuid.NewString()

	_, err := r.db.Exec(ctx, sql,
		id,
		c.Name,
		c.Phone,
		c.Email,
		c.Address,
		c.CreatedAt,
	)
	if err != nil {
		return storeErr("create customer", err)
	}
	c.ID = id

	return nil
}

func (r *customerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	sql := `
	SELECT
		id,
		name,
		phone,
		email,
		address,
		created_at
	FROM customers
	ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, storeErr("get all customers", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Phone,
			&c.Email,
			&c.Address,
			&c.CreatedAt,
		); err != nil {
			return nil, storeErr("scan customers", err)
		}
		c.CreatedAt = c.CreatedAt.UTC()
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate customers", err)
	}

	return customers, nil
}

func (r *customerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, storeErr("count customers", err)
	}
	return n, nil
}

func (r *customerRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM customers`); err != nil {
		return storeErr("clear customers", err)
	}
	return nil
}
