// Package seed fills an empty shop with random sample products, customers
// and orders.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
	"trendx-service/internal/models"
	"trendx-service/internal/repository"

	"github.com/shopspring/decimal"
)

var (
	categories     = []string{"T-Shirts", "Jeans", "Dresses", "Jackets", "Hoodies", "Accessories"}
	sizes          = []string{"XS", "S", "M", "L", "XL", "XXL"}
	colors         = []string{"Black", "White", "Blue", "Red", "Green", "Yellow", "Purple", "Pink", "Gray", "Navy"}
	paymentMethods = []string{models.PaymentCash, models.PaymentCard, models.PaymentOnline, models.PaymentCheck}
	statuses       = []string{models.StatusPending, models.StatusProcessing, models.StatusCompleted, models.StatusShipped}

	firstNames = []string{
		"John", "Emma", "Michael", "Sarah", "James", "Jessica", "David", "Laura", "Robert", "Maria",
		"William", "Lisa", "Richard", "Karen", "Joseph", "Nancy", "Thomas", "Betty", "Charles", "Sandra",
		"Christopher", "Ashley", "Daniel", "Katherine", "Matthew", "Brenda", "Mark", "Donna", "Donald", "Carol",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	}
	cities = []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
		"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	}

	productNames = map[string][]string{
		"T-Shirts": {"Classic Cotton Tee", "Premium Blend T-Shirt", "Graphic Print Tee", "V-Neck T-Shirt", "Pocket T-Shirt",
			"Striped T-Shirt", "Oversized Tee", "Fitted T-Shirt", "Long Sleeve Tee", "Athletic T-Shirt"},
		"Jeans": {"Classic Blue Jeans", "Slim Fit Denim", "Skinny Jeans", "Bootcut Jeans", "Straight Leg Jeans",
			"Distressed Jeans", "Black Jeans", "White Denim", "Ripped Jeans", "Flare Jeans"},
		"Dresses": {"Summer Dress", "Cocktail Dress", "Evening Gown", "Casual Day Dress", "Party Dress",
			"Maxi Dress", "Mini Dress", "Midi Dress", "Bodycon Dress", "Sundress"},
		"Jackets": {"Leather Jacket", "Denim Jacket", "Bomber Jacket", "Sports Jacket", "Winter Coat",
			"Blazer", "Rain Jacket", "Wool Jacket", "Suede Jacket", "Puffer Jacket"},
		"Hoodies": {"Classic Hoodie", "Zip Hoodie", "Pullover Hoodie", "Oversized Hoodie", "Sports Hoodie",
			"Fleece Hoodie", "Lightweight Hoodie", "Graphic Hoodie", "Solid Hoodie", "Tech Hoodie"},
		"Accessories": {"Baseball Cap", "Beanie", "Scarf", "Belt", "Sunglasses", "Watch", "Backpack", "Socks", "Gloves", "Hat"},
	}
)

type Counts struct {
	Products  int
	Customers int
	Orders    int
}

var DefaultCounts = Counts{Products: 55, Customers: 58, Orders: 52}

type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator returns a generator whose output is fully determined by seed
// and now.
func NewGenerator(seed uint64, now time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: now.UTC().Truncate(time.Millisecond),
	}
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.IntN(len(values))]
}

// between returns a uniform int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) daysAgo(maxDays int) time.Time {
	return g.now.AddDate(0, 0, -g.between(0, maxDays))
}

func (g *Generator) Products(n int) []models.Product {
	products := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		category := g.pick(categories)
		price := decimal.NewFromFloat(15 + g.rng.Float64()*135).Round(2)

		products = append(products, models.Product{
			Name:        fmt.Sprintf("%s #%d", g.pick(productNames[category]), i+1),
			Category:    category,
			Price:       price,
			Quantity:    g.between(5, 50),
			Description: fmt.Sprintf("High-quality %s item perfect for everyday wear.", strings.ToLower(category)),
			Size:        g.pick(sizes),
			Color:       g.pick(colors),
			CreatedAt:   g.daysAgo(90),
		})
	}
	return products
}

func (g *Generator) Customers(n int) []models.Customer {
	customers := make([]models.Customer, 0, n)
	for i := 0; i < n; i++ {
		first := g.pick(firstNames)
		last := g.pick(lastNames)

		customers = append(customers, models.Customer{
			Name:      first + " " + last,
			Phone:     fmt.Sprintf("+1-555-%d-%d", g.between(100, 999), g.between(1000, 9999)),
			Email:     fmt.Sprintf("%s.%s%d@email.com", strings.ToLower(first), strings.ToLower(last), i),
			Address:   fmt.Sprintf("%d Main St, %s", g.between(1, 999), g.pick(cities)),
			CreatedAt: g.daysAgo(180),
		})
	}
	return customers
}

// Orders draws line items from products and buyers from customers. Both must
// be non-empty when n > 0.
func (g *Generator) Orders(n int, products []models.Product, customers []models.Customer) []models.Order {
	orders := make([]models.Order, 0, n)
	for i := 0; i < n; i++ {
		lines := g.between(1, 5)
		items := make([]string, 0, lines)
		total := decimal.Zero

		for j := 0; j < lines; j++ {
			p := products[g.rng.IntN(len(products))]
			qty := g.between(1, 3)
			lineTotal := p.Price.Mul(decimal.NewFromInt(int64(qty)))

			items = append(items, fmt.Sprintf("%s (Qty: %d, $%s)", p.Name, qty, lineTotal.StringFixed(2)))
			total = total.Add(lineTotal)
		}

		orders = append(orders, models.Order{
			CustomerName:  customers[g.rng.IntN(len(customers))].Name,
			Items:         items,
			TotalPrice:    total.Round(2),
			Status:        g.pick(statuses),
			PaymentMethod: g.pick(paymentMethods),
			CreatedAt:     g.daysAgo(60),
		})
	}
	return orders
}

// Run clears every collection and inserts freshly generated records.
func Run(ctx context.Context, repos repository.Repositories, g *Generator, counts Counts, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if counts.Orders > 0 && (counts.Products == 0 || counts.Customers == 0) {
		return fmt.Errorf("orders need at least one product and one customer")
	}

	if err := repos.Products.DeleteAll(ctx); err != nil {
		return err
	}
	if err := repos.Customers.DeleteAll(ctx); err != nil {
		return err
	}
	if err := repos.Orders.DeleteAll(ctx); err != nil {
		return err
	}
	logger.Info("cleared existing data")

	products := g.Products(counts.Products)
	for i := range products {
		if err := repos.Products.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	logger.Info("added products", "count", len(products))

	customers := g.Customers(counts.Customers)
	for i := range customers {
		if err := repos.Customers.Create(ctx, &customers[i]); err != nil {
			return err
		}
	}
	logger.Info("added customers", "count", len(customers))

	orders := g.Orders(counts.Orders, products, customers)
	for i := range orders {
		if err := repos.Orders.Create(ctx, &orders[i]); err != nil {
			return err
		}
	}
	logger.Info("added orders", "count", len(orders))

	return nil
}
