package repository

import (
	"context"
	"fmt"
	"trendx-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// DBTX is satisfied by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func NewPostgresRepositories(db DBTX) Repositories {
	return Repositories{
		Products:  NewProductRepository(db),
		Customers: NewCustomerRepository(db),
		Orders:    NewOrderRepository(db),
	}
}

type productRepo struct {
	db DBTX
}

func NewProductRepository(db DBTX) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	sql := `
		INSERT INTO products (
			id,
			name,
			category,
			price,
			quantity,
			description,
			size,
			color,
			created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	id := uuid.NewString()

	_, err := r.db.Exec(ctx, sql,
		id,
		p.Name,
		p.Category,
		p.Price,
		p.Quantity,
		p.Description,
		p.Size,
		p.Color,
		p.CreatedAt,
	)
	if err != nil {
		return storeErr("create product", err)
	}
	p.ID = id

	return nil
}

func (r *productRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	sql := `
    SELECT
        id,
        name,
		category,
		price::text,
		quantity,
		description,
		size,
		color,
		created_at
    FROM products
    ORDER BY created_at
`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, storeErr("get all products", err)
	}

	defer rows.Close()

	products := []models.Product{}

	for rows.Next() {
		var p models.Product
		var price string

		err := rows.Scan(&p.ID,
			&p.Name,
			&p.Category,
			&price,
			&p.Quantity,
			&p.Description,
			&p.Size,
			&p.Color,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, storeErr("scan products", err)
		}

		if p.Price, err = decimal.NewFromString(price); err != nil {
			return nil, storeErr("scan products", fmt.Errorf("price of product %s: %w", p.ID, err))
		}
		p.CreatedAt = p.CreatedAt.UTC()

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate products", err)
	}

	return products, nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	if err := checkUUID(id); err != nil {
		return storeErr("delete product", err)
	}

	sql := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return storeErr("delete product", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, storeErr("count products", err)
	}
	return n, nil
}

func (r *productRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM products`); err != nil {
		return storeErr("clear products", err)
	}
	return nil
}

func checkUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w %q", ErrInvalidID, id)
	}
	return nil
}
