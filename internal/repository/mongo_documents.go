package repository

import (
	"fmt"
	"time"
	"trendx-service/internal/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ProductsCollection  = "products"
	CustomersCollection = "customers"
	OrdersCollection    = "orders"
)

func NewMongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Products:  NewMongoProductRepository(db),
		Customers: NewMongoCustomerRepository(db),
		Orders:    NewMongoOrderRepository(db),
	}
}

// Money is stored as a BSON double so documents stay readable by the
// existing front end and seed data.

type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	Price       float64            `bson:"price"`
	Quantity    int64              `bson:"quantity"`
	Description string             `bson:"description"`
	Size        string             `bson:"size"`
	Color       string             `bson:"color"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func newProductDocument(p *models.Product) productDocument {
	return productDocument{
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price.InexactFloat64(),
		Quantity:    int64(p.Quantity),
		Description: p.Description,
		Size:        p.Size,
		Color:       p.Color,
		CreatedAt:   p.CreatedAt,
	}
}

func (d productDocument) model() models.Product {
	return models.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Category:    d.Category,
		Price:       decimal.NewFromFloat(d.Price),
		Quantity:    int(d.Quantity),
		Description: d.Description,
		Size:        d.Size,
		Color:       d.Color,
		CreatedAt:   d.CreatedAt,
	}
}

type customerDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone"`
	Email     string             `bson:"email"`
	Address   string             `bson:"address"`
	CreatedAt time.Time          `bson:"created_at"`
}

func newCustomerDocument(c *models.Customer) customerDocument {
	return customerDocument{
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func (d customerDocument) model() models.Customer {
	return models.Customer{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		Address:   d.Address,
		CreatedAt: d.CreatedAt,
	}
}

type orderDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CustomerName  string             `bson:"customer_name"`
	Items         []string           `bson:"items"`
	TotalPrice    float64            `bson:"total_price"`
	Status        string             `bson:"status"`
	PaymentMethod string             `bson:"payment_method"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func newOrderDocument(o *models.Order) orderDocument {
	return orderDocument{
		CustomerName:  o.CustomerName,
		Items:         o.Items,
		TotalPrice:    o.TotalPrice.InexactFloat64(),
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
	}
}

func (d orderDocument) model() models.Order {
	items := d.Items
	if items == nil {
		items = []string{}
	}
	return models.Order{
		ID:            d.ID.Hex(),
		CustomerName:  d.CustomerName,
		Items:         items,
		TotalPrice:    decimal.NewFromFloat(d.TotalPrice),
		Status:        d.Status,
		PaymentMethod: d.PaymentMethod,
		CreatedAt:     d.CreatedAt,
	}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q", ErrInvalidID, id)
	}
	return oid, nil
}

func insertedHex(res *mongo.InsertOneResult) (string, error) {
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
