package seed

import (
	"context"
	"regexp"
	"testing"
	"time"
	"trendx-service/internal/repository"
	"trendx-service/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(7, now)
	b := NewGenerator(7, now)

	assert.Equal(t, a.Products(10), b.Products(10))
	assert.Equal(t, a.Customers(10), b.Customers(10))
}

func TestGenerator_ProductRanges(t *testing.T) {
	g := NewGenerator(1, now)
	lo := decimal.NewFromInt(15)
	hi := decimal.NewFromInt(150)

	for _, p := range g.Products(200) {
		assert.Contains(t, categories, p.Category)
		assert.Contains(t, sizes, p.Size)
		assert.Contains(t, colors, p.Color)
		assert.True(t, p.Price.GreaterThanOrEqual(lo) && p.Price.LessThanOrEqual(hi), "price %s", p.Price)
		assert.True(t, p.Price.Equal(p.Price.Round(2)), "price %s has more than 2 decimals", p.Price)
		assert.GreaterOrEqual(t, p.Quantity, 5)
		assert.LessOrEqual(t, p.Quantity, 50)
		assert.False(t, p.CreatedAt.After(now))
		assert.False(t, p.CreatedAt.Before(now.AddDate(0, 0, -90)))
	}
}

func TestGenerator_CustomerFormat(t *testing.T) {
	phone := regexp.MustCompile(`^\+1-555-\d{3}-\d{4}$`)

	for _, c := range NewGenerator(2, now).Customers(50) {
		assert.Regexp(t, phone, c.Phone)
		assert.Contains(t, c.Email, "@email.com")
		assert.Contains(t, c.Address, " Main St, ")
		assert.False(t, c.CreatedAt.Before(now.AddDate(0, 0, -180)))
	}
}

func TestGenerator_OrderTotalsMatchItems(t *testing.T) {
	g := NewGenerator(3, now)
	products := g.Products(20)
	customers := g.Customers(5)
	item := regexp.MustCompile(`^.+ \(Qty: [1-3], \$(\d+\.\d{2})\)$`)

	for _, o := range g.Orders(100, products, customers) {
		require.NotEmpty(t, o.Items)
		require.LessOrEqual(t, len(o.Items), 5)
		assert.Contains(t, statuses, o.Status)
		assert.Contains(t, paymentMethods, o.PaymentMethod)

		sum := decimal.Zero
		for _, line := range o.Items {
			m := item.FindStringSubmatch(line)
			require.NotNil(t, m, line)
			sum = sum.Add(decimal.RequireFromString(m[1]))
		}
		assert.True(t, sum.Equal(o.TotalPrice), "items sum %s, total %s", sum, o.TotalPrice)
	}
}

func TestRun_ReplacesExistingData(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemoryRepositories()
	counts := Counts{Products: 6, Customers: 4, Orders: 5}

	require.NoError(t, Run(ctx, repos, NewGenerator(4, now), counts, nil))
	require.NoError(t, Run(ctx, repos, NewGenerator(5, now), counts, nil))

	stats, err := service.NewDashboardService(repos).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.TotalProducts)
	assert.Equal(t, int64(4), stats.TotalCustomers)
	assert.Equal(t, int64(5), stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsPositive())
	assert.True(t, stats.InventoryValue.IsPositive())
}

func TestRun_OrdersNeedProductsAndCustomers(t *testing.T) {
	err := Run(context.Background(), repository.NewMemoryRepositories(), NewGenerator(1, now), Counts{Orders: 1}, nil)
	assert.Error(t, err)
}

func TestDefaultCounts(t *testing.T) {
	assert.Equal(t, Counts{Products: 55, Customers: 58, Orders: 52}, DefaultCounts)
}
