package repository

import (
	"context"
	"trendx-service/internal/models"
)

// ProductRepository is the products collection of the record store.
// Create assigns p.ID; the caller owns every other field, created_at included.
type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	GetAll(ctx context.Context) ([]models.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c *models.Customer) error
	GetAll(ctx context.Context) ([]models.Customer, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

// OrderRepository.GetAll returns orders newest first.
type OrderRepository interface {
	Create(ctx context.Context, o *models.Order) error
	GetAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type Repositories struct {
	Products  ProductRepository
	Customers CustomerRepository
	Orders    OrderRepository
}
