package repository

import (
	"context"
	"trendx-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

func NewMongoCustomerRepository(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepo{coll: db.Collection(CustomersCollection)}
}

func (r *mongoCustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	res, err := r.coll.InsertOne(ctx, newCustomerDocument(c))
	if err != nil {
		return storeErr("create customer", err)
	}

	id, err := insertedHex(res)
	if err != nil {
		return storeErr("create customer", err)
	}
	c.ID = id

	return nil
}

func (r *mongoCustomerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, storeErr("get all customers", err)
	}

	var docs []customerDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("decode customers", err)
	}

	customers := make([]models.Customer, 0, len(docs))
	for _, d := range docs {
		customers = append(customers, d.model())
	}

	return customers, nil
}

func (r *mongoCustomerRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, storeErr("count customers", err)
	}
	return n, nil
}

func (r *mongoCustomerRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return storeErr("clear customers", err)
	}
	return nil
}
