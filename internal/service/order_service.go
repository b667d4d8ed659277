package service

import (
	"context"
	"log/slog"
	"time"
	"trendx-service/internal/models"
	"trendx-service/internal/repository"
	"trendx-service/internal/validation"
)

type OrderService struct {
	repo   repository.OrderRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewOrderService(repo repository.OrderRepository, logger *slog.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		logger: componentLogger(logger, "orders"),
		now:    defaultClock,
	}
}

// List returns every order, newest first.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.repo.GetAll(ctx)
}

func (s *OrderService) Create(ctx context.Context, in validation.OrderInput) (*models.Order, error) {
	o, err := validation.ValidateOrder(in)
	if err != nil {
		return nil, err
	}
	o.CreatedAt = s.now()

	if err := s.repo.Create(ctx, &o); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order created",
		"order_id", o.ID,
		"items", len(o.Items),
		"total_price", o.TotalPrice.StringFixed(2),
	)
	return &o, nil
}

// UpdateStatus sets the order's status; an empty status becomes Pending.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) error {
	status = validation.NormalizeStatus(status)

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "order status updated", "order_id", id, "status", status)
	return nil
}
