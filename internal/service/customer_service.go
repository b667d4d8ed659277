package service

import (
	"context"
	"log/slog"
	"time"
	"trendx-service/internal/models"
	"trendx-service/internal/repository"
	"trendx-service/internal/validation"
)

type CustomerService struct {
	repo   repository.CustomerRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewCustomerService(repo repository.CustomerRepository, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		repo:   repo,
		logger: componentLogger(logger, "customers"),
		now:    defaultClock,
	}
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.repo.GetAll(ctx)
}

func (s *CustomerService) Create(ctx context.Context, in validation.CustomerInput) (*models.Customer, error) {
	c, err := validation.ValidateCustomer(in)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = s.now()

	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "customer created", "customer_id", c.ID)
	return &c, nil
}
