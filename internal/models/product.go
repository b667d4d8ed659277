package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"
	StatusShipped    = "Shipped"

	PaymentCash   = "Cash"
	PaymentCard   = "Card"
	PaymentOnline = "Online"
	PaymentCheck  = "Check"
)

type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Customer struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// Order.CustomerName is a free-text copy, not a reference to a Customer.
type Order struct {
	ID            string          `json:"_id"`
	CustomerName  string          `json:"customer_name"`
	Items         []string        `json:"items"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

type DashboardStats struct {
	TotalProducts  int64           `json:"total_products"`
	TotalCustomers int64           `json:"total_customers"`
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}
