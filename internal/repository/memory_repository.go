package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"trendx-service/internal/models"

	"github.com/google/uuid"
)

// NewMemoryRepositories returns an in-process store. Records live for the
// lifetime of the process; each collection serializes its own writes.
func NewMemoryRepositories() Repositories {
	return Repositories{
		Products:  &memoryProductRepo{},
		Customers: &memoryCustomerRepo{},
		Orders:    &memoryOrderRepo{},
	}
}

type memoryProductRepo struct {
	mu    sync.RWMutex
	items []models.Product
}

func (r *memoryProductRepo) Create(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	r.items = append(r.items, *p)
	return nil
}

func (r *memoryProductRepo) GetAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Product{}, r.items...), nil
}

func (r *memoryProductRepo) Delete(_ context.Context, id string) error {
	if err := checkUUID(id); err != nil {
		return storeErr("delete product", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.items, func(p models.Product) bool { return p.ID == id })
	if i < 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	r.items = slices.Delete(r.items, i, i+1)
	return nil
}

func (r *memoryProductRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.items)), nil
}

func (r *memoryProductRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	return nil
}

type memoryCustomerRepo struct {
	mu    sync.RWMutex
	items []models.Customer
}

func (r *memoryCustomerRepo) Create(_ context.Context, c *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = uuid.NewString()
	r.items = append(r.items, *c)
	return nil
}

func (r *memoryCustomerRepo) GetAll(_ context.Context) ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Customer{}, r.items...), nil
}

func (r *memoryCustomerRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.items)), nil
}

func (r *memoryCustomerRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	return nil
}

type memoryOrderRepo struct {
	mu    sync.RWMutex
	items []models.Order
}

func (r *memoryOrderRepo) Create(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = uuid.NewString()
	stored := *o
	stored.Items = slices.Clone(o.Items)
	r.items = append(r.items, stored)
	return nil
}

func (r *memoryOrderRepo) GetAll(_ context.Context) ([]models.Order, error) {
	r.mu.RLock()
	orders := make([]models.Order, len(r.items))
	for i, o := range r.items {
		o.Items = slices.Clone(o.Items)
		orders[i] = o
	}
	r.mu.RUnlock()

	slices.SortStableFunc(orders, func(a, b models.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return orders, nil
}

func (r *memoryOrderRepo) UpdateStatus(_ context.Context, id string, status string) error {
	if err := checkUUID(id); err != nil {
		return storeErr("update order status", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.items, func(o models.Order) bool { return o.ID == id })
	if i < 0 {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	r.items[i].Status = status
	return nil
}

func (r *memoryOrderRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.items)), nil
}

func (r *memoryOrderRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	return nil
}
