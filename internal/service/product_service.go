package service

import (
	"context"
	"log/slog"
	"time"
	"trendx-service/internal/models"
	"trendx-service/internal/repository"
	"trendx-service/internal/validation"
)

type ProductService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewProductService(repo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: componentLogger(logger, "products"),
		now:    defaultClock,
	}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *ProductService) Create(ctx context.Context, in validation.ProductInput) (*models.Product, error) {
	p, err := validation.ValidateProduct(in)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = s.now()

	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "product created", "product_id", p.ID, "category", p.Category)
	return &p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "product deleted", "product_id", id)
	return nil
}
