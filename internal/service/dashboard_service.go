package service

import (
	"context"
	"trendx-service/internal/models"
	"trendx-service/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardService computes the dashboard snapshot by scanning the store on
// every call. Nothing is cached between calls, and the scans are not isolated
// from concurrent writes.
type DashboardService struct {
	repos repository.Repositories
}

func NewDashboardService(repos repository.Repositories) *DashboardService {
	return &DashboardService{repos: repos}
}

func (s *DashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	var err error

	if stats.TotalProducts, err = s.repos.Products.Count(ctx); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.TotalCustomers, err = s.repos.Customers.Count(ctx); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.TotalOrders, err = s.repos.Orders.Count(ctx); err != nil {
		return models.DashboardStats{}, err
	}

	orders, err := s.repos.Orders.GetAll(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	stats.TotalRevenue = TotalRevenue(orders)

	products, err := s.repos.Products.GetAll(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	stats.InventoryValue = InventoryValue(products)

	return stats, nil
}

// TotalRevenue sums total_price over orders, rounding once at the end.
func TotalRevenue(orders []models.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(o.TotalPrice)
	}
	return RoundTotal(sum)
}

// InventoryValue sums quantity × price over products, rounding once at the end.
func InventoryValue(products []models.Product) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range products {
		sum = sum.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return RoundTotal(sum)
}

func RoundTotal(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
